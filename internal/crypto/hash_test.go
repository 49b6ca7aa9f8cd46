package crypto

import "testing"

func TestHashPasswordAndVerify(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if hash == "correct horse battery staple" {
		t.Fatal("HashPassword() returned the plaintext password")
	}

	match, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if !match {
		t.Error("VerifyPassword() = false for correct password")
	}
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	match, err := VerifyPassword("pw124", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() unexpected error: %v", err)
	}
	if match {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	second, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	_, err := VerifyPassword("pw123", "not-a-bcrypt-hash")
	if err == nil {
		t.Error("VerifyPassword() expected error for malformed hash")
	}
}
