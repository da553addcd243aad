package domain

import "time"

// SymptomHistoryEntry records a single symptom check. Entries are append-only
// and never mutated after insert.
type SymptomHistoryEntry struct {
	ID           string
	UserID       string
	SymptomsText string
	RiskLevel    string
	Timestamp    time.Time
}
