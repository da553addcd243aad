package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/emergency-care/internal/auth"
	"github.com/spec-kit/emergency-care/internal/config"
	"github.com/spec-kit/emergency-care/internal/domain"
	"github.com/spec-kit/emergency-care/internal/repository"
	apperrors "github.com/spec-kit/emergency-care/pkg/util"
)

// AuthService coordinates signup, login and profile flows.
type AuthService struct {
	users      repository.UserRepository
	sessions   auth.Sessions
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository, sessions auth.Sessions) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// NormalizeEmail canonicalizes an address for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a new account. The plaintext password is never stored.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return nil, apperrors.NewValidationError("All fields are required.", nil)
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates and establishes a session. A missing account and a
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	session, err := s.sessions.Create(ctx, user.ID, user.FullName)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	token, exp, err := s.tokenMgr.GenerateToken(session.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Logout revokes the session record; the signed token dies with it.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Profile returns the account backing the principal.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile applies name and/or password changes. Empty fields are
// no-ops and never overwrite stored values. A name change is propagated to
// the active session's display copy immediately.
func (s *AuthService) UpdateProfile(ctx context.Context, principal *auth.Principal, name, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	password = strings.TrimSpace(password)

	user, err := s.users.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	changed := false
	if name != "" {
		user.FullName = name
		changed = true
	}
	if password != "" {
		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		changed = true
	}

	if !changed {
		return user, nil
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if name != "" {
		if err := s.sessions.UpdateDisplayName(ctx, principal.SessionID, name); err != nil && err != auth.ErrSessionNotFound {
			return nil, err
		}
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
