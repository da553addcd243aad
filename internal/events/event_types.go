package events

import (
	"time"

	"github.com/spec-kit/emergency-care/internal/triage"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSymptomChecked     EventType = "symptom_checked"
	EventEmergencyRequested EventType = "emergency_requested"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SymptomCheckedPayload payload.
type SymptomCheckedPayload struct {
	RiskLevel triage.RiskLevel `json:"risk_level"`
	Score     int              `json:"score"`
}

// EmergencyRequestedPayload payload.
type EmergencyRequestedPayload struct {
	ActionType string `json:"action_type"`
}
