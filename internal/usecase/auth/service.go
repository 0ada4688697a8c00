package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vmcoelho/bancaflow-backend/internal/domain"
)

// ErrInvalidCredentials indicates a failed login attempt.
// Same error for unknown email and wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Session represents an authenticated session keyed by its bearer token
type Session struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
}

// AuthService handles registration, login, and bearer-token sessions.
// Sessions are held in memory; restarting the server logs everyone out.
type AuthService struct {
	UserRepo domain.UserRepository

	mu       sync.RWMutex
	sessions map[string]Session
}

// NewAuthService creates a new AuthService instance
func NewAuthService(userRepo domain.UserRepository) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		sessions: make(map[string]Session),
	}
}

// Register creates a new user and opens a session for it
// Logic:
//  1. Validate name/email/password presence; passwords need 6+ characters
//  2. Reject an email that is already taken (ValidationError)
//  3. Hash the password with bcrypt and save the user
//  4. Issue a bearer token
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(password) < 6 {
		return nil, "", domain.NewValidationError("password", "must be at least 6 characters")
	}

	if _, err := s.UserRepo.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.NewValidationError("email", "already registered")
	} else if !domain.IsNotFoundError(err) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token := s.openSession(user.ID)
	return user, token, nil
}

// Login verifies credentials and opens a session
// Returns ErrInvalidCredentials on unknown email or wrong password
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.UserRepo.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := s.openSession(user.ID)
	return user, token, nil
}

// Logout revokes a session token. Revoking an unknown token is a no-op.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// Authenticate resolves a bearer token to its user id
func (s *AuthService) Authenticate(token string) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return uuid.Nil, false
	}
	return session.UserID, true
}

func (s *AuthService) openSession(userID uuid.UUID) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	return token
}
