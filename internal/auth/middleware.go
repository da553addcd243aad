package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/emergency-care/pkg/util"
)

const principalKey = "auth_principal"

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session_token"

// Principal represents the authenticated caller.
type Principal struct {
	SessionID   string
	UserID      string
	DisplayName string
}

// AuthMiddleware validates session tokens and loads principals.
type AuthMiddleware struct {
	tokens   *TokenManager
	sessions Sessions
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, sessions Sessions) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// Handle enforces authentication for protected routes. Browser navigation is
// redirected to the login page; API callers get the JSON error envelope.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	token := tokenFromRequest(c)
	if token == "" {
		return m.reject(c, "missing session token")
	}

	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return m.reject(c, "invalid session token")
	}

	session, err := m.sessions.Get(c.Context(), claims.SessionID)
	if err != nil {
		if err == ErrSessionNotFound {
			return m.reject(c, "session expired")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, &Principal{
		SessionID:   session.ID,
		UserID:      session.UserID,
		DisplayName: session.DisplayName,
	})
	return c.Next()
}

// Authenticated reports whether the request carries a live session, without
// rejecting it. Used by the root redirect.
func (m *AuthMiddleware) Authenticated(c *fiber.Ctx) bool {
	token := tokenFromRequest(c)
	if token == "" {
		return false
	}
	claims, err := m.tokens.ParseToken(token)
	if err != nil {
		return false
	}
	_, err = m.sessions.Get(c.Context(), claims.SessionID)
	return err == nil
}

func (m *AuthMiddleware) reject(c *fiber.Ctx, message string) error {
	if wantsHTML(c) {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return apperrors.NewUnauthorized(message)
}

func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(SessionCookie); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

func wantsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get("Accept"), "text/html")
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
