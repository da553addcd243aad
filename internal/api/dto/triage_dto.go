package dto

import "time"

// CheckSymptomsRequest payload for the symptom checker.
type CheckSymptomsRequest struct {
	Symptoms string `json:"symptoms" form:"symptoms"`
	Duration string `json:"duration" form:"duration"`
	Severity string `json:"severity" form:"severity"`
}

// CheckSymptomsResponse mirrors the original checker contract.
type CheckSymptomsResponse struct {
	RiskLevel string `json:"risk_level"`
	Message   string `json:"message"`
}

// SymptomHistoryResponse is one history entry.
type SymptomHistoryResponse struct {
	SymptomsText string    `json:"symptoms_text"`
	RiskLevel    string    `json:"risk_level"`
	Timestamp    time.Time `json:"timestamp"`
}

// EmergencyRequest payload for simulated emergency actions.
type EmergencyRequest struct {
	Type string `json:"type" form:"type"`
}

// EmergencyActionResponse is one logged action.
type EmergencyActionResponse struct {
	ActionType string    `json:"action_type"`
	Timestamp  time.Time `json:"timestamp"`
}
