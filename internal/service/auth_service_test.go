package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/emergency-care/internal/auth"
	"github.com/spec-kit/emergency-care/internal/config"
	apperrors "github.com/spec-kit/emergency-care/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			SessionSecret:     "test-secret",
			SessionTTLMinutes: 60,
			BcryptCost:        bcrypt.MinCost,
		},
	}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return domainErr.Code
}

func TestSignupRejectsMissingFields(t *testing.T) {
	svc := NewAuthService(testConfig(), newFakeUserRepo(), newFakeSessions())

	cases := []struct{ name, email, password string }{
		{"", "a@example.com", "pw"},
		{"Ann", "", "pw"},
		{"Ann", "a@example.com", ""},
	}
	for _, c := range cases {
		if _, err := svc.Signup(context.Background(), c.name, c.email, c.password); err == nil {
			t.Fatalf("Signup(%q,%q,%q) succeeded, want validation error", c.name, c.email, c.password)
		} else if code := errorCode(t, err); code != "VALIDATION_FAILED" {
			t.Fatalf("code=%s, want VALIDATION_FAILED", code)
		}
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), users, newFakeSessions())

	if _, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "secret"); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	// Same address with different case and padding still collides.
	_, err := svc.Signup(context.Background(), "Another Ann", "  ANN@Example.com ", "other")
	if err == nil {
		t.Fatal("duplicate signup succeeded")
	}
	if code := errorCode(t, err); code != "DUPLICATE_EMAIL" {
		t.Fatalf("code=%s, want DUPLICATE_EMAIL", code)
	}
	if len(users.users) != 1 {
		t.Fatalf("duplicate signup created an account: %d users", len(users.users))
	}
}

func TestSignupNeverStoresPlaintext(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(testConfig(), users, newFakeSessions())

	user, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if user.PasswordHash == "secret" || user.PasswordHash == "" {
		t.Fatalf("password not hashed: %q", user.PasswordHash)
	}
	if err := auth.ComparePassword(user.PasswordHash, "secret"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessions()
	svc := NewAuthService(testConfig(), users, sessions)

	if _, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "secret"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, _, _, err := svc.Login(context.Background(), "ann@example.com", "wrong")
	if err == nil {
		t.Fatal("login with wrong password succeeded")
	}
	if code := errorCode(t, err); code != "INVALID_CREDENTIALS" {
		t.Fatalf("code=%s, want INVALID_CREDENTIALS", code)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("failed login established a session")
	}
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc := NewAuthService(testConfig(), newFakeUserRepo(), newFakeSessions())

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	if err == nil {
		t.Fatal("login for unknown email succeeded")
	}
	if code := errorCode(t, err); code != "INVALID_CREDENTIALS" {
		t.Fatalf("code=%s, want INVALID_CREDENTIALS", code)
	}
}

func TestLoginEstablishesSessionAndToken(t *testing.T) {
	sessions := newFakeSessions()
	svc := NewAuthService(testConfig(), newFakeUserRepo(), sessions)

	user, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, token, _, err := svc.Login(context.Background(), "Ann@Example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	session, ok := sessions.sessions[claims.SessionID]
	if !ok {
		t.Fatal("token names a session that was not created")
	}
	if session.UserID != user.ID || session.DisplayName != "Ann" {
		t.Fatalf("session=%+v, want user %s named Ann", session, user.ID)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := newFakeSessions()
	svc := NewAuthService(testConfig(), newFakeUserRepo(), sessions)

	if _, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "secret"); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	_, token, _, err := svc.Login(context.Background(), "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, _ := svc.TokenManager().ParseToken(token)

	if err := svc.Logout(context.Background(), claims.SessionID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := sessions.Get(context.Background(), claims.SessionID); err != auth.ErrSessionNotFound {
		t.Fatalf("session still resolvable after logout: %v", err)
	}
}

func TestUpdateProfileNameOnlyKeepsPassword(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessions()
	svc := NewAuthService(testConfig(), users, sessions)

	user, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	session, _ := sessions.Create(context.Background(), user.ID, user.FullName)
	principal := &auth.Principal{SessionID: session.ID, UserID: user.ID, DisplayName: user.FullName}

	before := users.users[user.ID].PasswordHash

	updated, err := svc.UpdateProfile(context.Background(), principal, "Annabel", "")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FullName != "Annabel" {
		t.Fatalf("name=%q, want Annabel", updated.FullName)
	}
	if users.users[user.ID].PasswordHash != before {
		t.Fatal("name-only update changed the password hash")
	}
	if got, _ := sessions.Get(context.Background(), session.ID); got.DisplayName != "Annabel" {
		t.Fatalf("session display name=%q, want Annabel", got.DisplayName)
	}
}

func TestUpdateProfilePasswordOnlyKeepsName(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessions()
	svc := NewAuthService(testConfig(), users, sessions)

	user, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	session, _ := sessions.Create(context.Background(), user.ID, user.FullName)
	principal := &auth.Principal{SessionID: session.ID, UserID: user.ID, DisplayName: user.FullName}

	if _, err := svc.UpdateProfile(context.Background(), principal, "", "newsecret"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	stored := users.users[user.ID]
	if stored.FullName != "Ann" {
		t.Fatalf("password-only update changed the name to %q", stored.FullName)
	}
	if err := auth.ComparePassword(stored.PasswordHash, "newsecret"); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}
}

func TestUpdateProfileEmptyIsNoop(t *testing.T) {
	users := newFakeUserRepo()
	sessions := newFakeSessions()
	svc := NewAuthService(testConfig(), users, sessions)

	user, err := svc.Signup(context.Background(), "Ann", "ann@example.com", "secret")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	session, _ := sessions.Create(context.Background(), user.ID, user.FullName)
	principal := &auth.Principal{SessionID: session.ID, UserID: user.ID, DisplayName: user.FullName}

	before := users.users[user.ID]
	if _, err := svc.UpdateProfile(context.Background(), principal, "  ", ""); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	after := users.users[user.ID]
	if after.FullName != before.FullName || after.PasswordHash != before.PasswordHash {
		t.Fatal("empty update mutated the account")
	}
}
