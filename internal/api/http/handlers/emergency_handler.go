package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/emergency-care/internal/api/dto"
	"github.com/spec-kit/emergency-care/internal/auth"
	"github.com/spec-kit/emergency-care/internal/service"
	apperrors "github.com/spec-kit/emergency-care/pkg/util"
)

// EmergencyHandler logs simulated emergency requests.
type EmergencyHandler struct {
	emergency *service.EmergencyService
}

// NewEmergencyHandler constructs handler.
func NewEmergencyHandler(emergencyService *service.EmergencyService) *EmergencyHandler {
	return &EmergencyHandler{emergency: emergencyService}
}

// Create handles POST /emergency.
func (h *EmergencyHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	var req dto.EmergencyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	message, err := h.emergency.LogAction(c.Context(), principal.UserID, req.Type)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": message,
	})
}
