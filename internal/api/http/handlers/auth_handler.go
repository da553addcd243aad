package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/emergency-care/internal/api/dto"
	"github.com/spec-kit/emergency-care/internal/auth"
	"github.com/spec-kit/emergency-care/internal/service"
)

// AuthHandler exposes the signup, login and logout flows plus the root redirect.
type AuthHandler struct {
	auth *service.AuthService
	gate *auth.AuthMiddleware
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, gate *auth.AuthMiddleware) *AuthHandler {
	return &AuthHandler{auth: authService, gate: gate}
}

// Root handles GET /: authenticated browsers land on the dashboard, everyone
// else on the login page.
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	if h.gate.Authenticated(c) {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":   "signup",
		"fields": []string{"name", "email", "password"},
	})
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.auth.Signup(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{
				ID:        user.ID,
				Name:      user.FullName,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
			},
		},
		"message": "Signup successful. Please login.",
	})
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page":   "login",
		"fields": []string{"email", "password"},
	})
}

// Login handles POST /login. The session token is returned in the body and
// also set as an HTTP-only cookie for browser flows.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, token, exp)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{
				ID:        user.ID,
				Name:      user.FullName,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles GET /logout: best-effort session revocation, then redirect.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(auth.SessionCookie); token != "" {
		if claims, err := h.auth.TokenManager().ParseToken(token); err == nil {
			_ = h.auth.Logout(c.Context(), claims.SessionID)
		}
	}
	h.clearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusFound)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string, exp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
