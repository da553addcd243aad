package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/emergency-care/internal/api/dto"
	"github.com/spec-kit/emergency-care/internal/auth"
	"github.com/spec-kit/emergency-care/internal/service"
	apperrors "github.com/spec-kit/emergency-care/pkg/util"
)

// ProfileHandler lets users view and update their own account.
type ProfileHandler struct {
	auth *service.AuthService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{auth: authService}
}

// Show handles GET /profile.
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	user, err := h.auth.Profile(c.Context(), principal.UserID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{
				ID:        user.ID,
				Name:      user.FullName,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
			},
		},
	})
}

// Update handles POST /profile. Empty fields leave stored values untouched.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.auth.UpdateProfile(c.Context(), principal, req.Name, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": dto.UserResponse{
				ID:        user.ID,
				Name:      user.FullName,
				Email:     user.Email,
				CreatedAt: user.CreatedAt,
			},
		},
		"message": "Profile updated successfully.",
	})
}
