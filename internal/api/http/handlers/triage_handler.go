package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/emergency-care/internal/api/dto"
	"github.com/spec-kit/emergency-care/internal/auth"
	"github.com/spec-kit/emergency-care/internal/domain"
	"github.com/spec-kit/emergency-care/internal/service"
	"github.com/spec-kit/emergency-care/internal/triage"
	apperrors "github.com/spec-kit/emergency-care/pkg/util"
)

// TriageHandler exposes the symptom checker and the per-user activity views.
type TriageHandler struct {
	triage *service.TriageService
}

// NewTriageHandler constructs handler.
func NewTriageHandler(triageService *service.TriageService) *TriageHandler {
	return &TriageHandler{triage: triageService}
}

// CheckerPage handles GET /symptom-checker: the checker form metadata.
func (h *TriageHandler) CheckerPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"page": "symptom-checker",
		"durations": []triage.Duration{
			triage.DurationUnderOne,
			triage.DurationOneToThree,
			triage.DurationOverThree,
		},
		"severities": []triage.Severity{
			triage.SeverityMild,
			triage.SeverityModerate,
			triage.SeveritySevere,
		},
	})
}

// CheckSymptoms handles POST /api/check-symptoms.
func (h *TriageHandler) CheckSymptoms(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	var req dto.CheckSymptomsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	assessment, err := h.triage.CheckSymptoms(c.Context(), principal.UserID, req.Symptoms, req.Duration, req.Severity)
	if err != nil {
		return err
	}

	return c.JSON(dto.CheckSymptomsResponse{
		RiskLevel: string(assessment.Level),
		Message:   assessment.Message,
	})
}

// Dashboard handles GET /dashboard.
func (h *TriageHandler) Dashboard(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	summary, err := h.triage.Dashboard(c.Context(), principal.UserID)
	if err != nil {
		return err
	}

	data := fiber.Map{
		"user_name":    principal.DisplayName,
		"total_checks": summary.TotalChecks,
	}
	if summary.LastSymptom != nil {
		data["last_symptom"] = symptomResponse(*summary.LastSymptom)
	}
	if summary.LastAction != nil {
		data["last_action"] = actionResponse(*summary.LastAction)
	}

	return c.JSON(fiber.Map{"data": data})
}

// History handles GET /history.
func (h *TriageHandler) History(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	history, err := h.triage.History(c.Context(), principal.UserID)
	if err != nil {
		return err
	}

	symptoms := make([]dto.SymptomHistoryResponse, 0, len(history.Symptoms))
	for _, entry := range history.Symptoms {
		symptoms = append(symptoms, symptomResponse(entry))
	}
	actions := make([]dto.EmergencyActionResponse, 0, len(history.Actions))
	for _, entry := range history.Actions {
		actions = append(actions, actionResponse(entry))
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"symptoms": symptoms,
			"actions":  actions,
		},
	})
}

func symptomResponse(entry domain.SymptomHistoryEntry) dto.SymptomHistoryResponse {
	return dto.SymptomHistoryResponse{
		SymptomsText: entry.SymptomsText,
		RiskLevel:    entry.RiskLevel,
		Timestamp:    entry.Timestamp,
	}
}

func actionResponse(entry domain.EmergencyActionEntry) dto.EmergencyActionResponse {
	return dto.EmergencyActionResponse{
		ActionType: entry.ActionType,
		Timestamp:  entry.Timestamp,
	}
}
