// Package app holds the application services and business logic.
package app

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"codingevents/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// sessionTTL bounds how long a binding stays valid without a fresh login.
const sessionTTL = 24 * time.Hour

// AuthService orchestrates registration, login, logout, and current-identity
// resolution on top of the user and session repositories.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Register validates a registration attempt and creates the account.
// Checks run in order and the first failure wins; all failures are
// ValidationErrors carrying a field and a machine-readable code.
func (s *AuthService) Register(ctx context.Context, form RegisterForm) (*domain.User, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	existing, err := s.users.GetByUsername(ctx, form.Username)
	if err != nil {
		return nil, fmt.Errorf("register: lookup username: %w", err)
	}
	if existing != nil {
		return nil, fieldErr("username", CodeUsernameExists, "A user with that username already exists")
	}

	if form.Password != form.VerifyPassword {
		return nil, fieldErr("password", CodePasswordsMismatch, "Passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user, err := s.users.Create(ctx, form.Username, string(hash))
	if err != nil {
		// The pre-check above is a check-then-act race; the unique constraint
		// at the storage layer is authoritative and maps to the same failure.
		if errors.Is(err, domain.ErrUsernameTaken) {
			return nil, fieldErr("username", CodeUsernameExists, "A user with that username already exists")
		}
		return nil, fmt.Errorf("register: create user: %w", err)
	}
	return user, nil
}

// Login validates a login attempt and returns the authenticated user.
func (s *AuthService) Login(ctx context.Context, form LoginForm) (*domain.User, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	user, err := s.users.GetByUsername(ctx, form.Username)
	if err != nil {
		return nil, fmt.Errorf("login: lookup username: %w", err)
	}
	if user == nil {
		return nil, fieldErr("username", CodeUserInvalid, "The given username does not exist")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)) != nil {
		return nil, fieldErr("password", CodePasswordInvalid, "Invalid password")
	}
	return user, nil
}

// CreateSession binds the given user id to a fresh session token.
func (s *AuthService) CreateSession(ctx context.Context, userID int64) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Create(ctx, userID, token, time.Now().Add(sessionTTL)); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

// Logout destroys the session binding. Idempotent: deleting a token with no
// active binding is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// CurrentUser resolves the user bound to the given session token. A missing
// session, an expired session, or a user deleted since the binding was
// created all yield (nil, nil); only collaborator faults yield an error.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	return user, nil
}

// ProvisionSSOUser finds or creates an account for an identity asserted by
// the SSO provider. SSO accounts carry an empty password hash and can only
// log in through the provider.
func (s *AuthService) ProvisionSSOUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("sso lookup: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = s.users.Create(ctx, username, "")
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			// Lost a provisioning race; the account exists now.
			return s.users.GetByUsername(ctx, username)
		}
		return nil, fmt.Errorf("sso provision: %w", err)
	}
	return user, nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}
