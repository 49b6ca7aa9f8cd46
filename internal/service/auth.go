package service

import (
	"context"
	"errors"
	"time"

	"github.com/tastebase/tastebase-go/internal/crypto"
	"github.com/tastebase/tastebase-go/internal/model"
	"github.com/tastebase/tastebase-go/internal/repository"
)

var (
	ErrUsernameRequired   = errors.New("username and password are required")
	ErrPasswordRequired   = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// UserStore is the persistence surface AuthService needs.
// *repository.UserRepository satisfies it.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles signup, login and session validation.
type AuthService struct {
	store         UserStore
	sessionSecret string
	sessionExpiry time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		store:         store,
		sessionSecret: secret,
		sessionExpiry: expiry,
	}
}

// Signup creates a new user account with a bcrypt-hashed password.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.AuthResponse, error) {
	if req.Username == "" {
		return model.AuthResponse{}, ErrUsernameRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return model.AuthResponse{}, ErrUsernameTaken
		}
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
	}, nil
}

// Login verifies credentials and issues a signed session token. Unknown
// usernames and wrong passwords are reported as distinct errors so the
// HTTP layer can map them to 404 and 401 respectively.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, string, error) {
	if req.Username == "" || req.Password == "" {
		return model.AuthResponse{}, "", ErrUsernameRequired
	}

	user, err := s.store.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, "", ErrUserNotFound
		}
		return model.AuthResponse{}, "", err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return model.AuthResponse{}, "", err
	}
	if !match {
		return model.AuthResponse{}, "", ErrInvalidCredentials
	}

	token, err := crypto.GenerateSessionToken(user.ID, user.Username, s.sessionSecret, s.sessionExpiry)
	if err != nil {
		return model.AuthResponse{}, "", err
	}

	return model.AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
	}, token, nil
}

// CurrentUser validates a session token and re-fetches the user row, so a
// deleted account invalidates its outstanding sessions.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (model.UserResponse, error) {
	if token == "" {
		return model.UserResponse{}, ErrInvalidSession
	}

	claims, err := crypto.ValidateSessionToken(token, s.sessionSecret)
	if err != nil {
		return model.UserResponse{}, ErrInvalidSession
	}

	user, err := s.store.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return model.UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}
