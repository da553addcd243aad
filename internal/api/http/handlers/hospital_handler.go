package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/emergency-care/internal/api/dto"
	"github.com/spec-kit/emergency-care/internal/service"
)

// HospitalHandler serves the read-only hospital directory.
type HospitalHandler struct {
	hospitals *service.HospitalService
}

// NewHospitalHandler constructs handler.
func NewHospitalHandler(hospitalService *service.HospitalService) *HospitalHandler {
	return &HospitalHandler{hospitals: hospitalService}
}

// List handles GET /hospitals with optional status/ambulance filters.
func (h *HospitalHandler) List(c *fiber.Ctx) error {
	opts := service.ListOptions{
		OpenOnly:      c.Query("status") == "open",
		AmbulanceOnly: c.Query("ambulance") == "yes",
	}

	listings, err := h.hospitals.List(c.Context(), opts)
	if err != nil {
		return err
	}

	result := make([]dto.HospitalResponse, 0, len(listings))
	for _, listing := range listings {
		result = append(result, dto.HospitalResponse{
			ID:                 listing.ID,
			Name:               listing.Name,
			Address:            listing.Address,
			Status:             string(listing.Status),
			AmbulanceAvailable: listing.AmbulanceAvailable,
			ContactNumber:      listing.ContactNumber,
		})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"hospitals": result}})
}
