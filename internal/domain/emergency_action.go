package domain

import "time"

// EmergencyActionEntry records a simulated emergency request. Entries are
// append-only; no real dispatch ever happens.
type EmergencyActionEntry struct {
	ID         string
	UserID     string
	ActionType string
	Timestamp  time.Time
}
