package model

import "time"

// User represents a registered account in the database.
// PasswordHash is never serialized into API responses.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// SignupRequest represents an account creation request.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned from signup and login.
type AuthResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
}

// UserResponse represents user data safe for API responses.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// MeResponse wraps the authenticated user for GET /api/me.
type MeResponse struct {
	User UserResponse `json:"user"`
}
