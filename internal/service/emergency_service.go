package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/spec-kit/emergency-care/internal/domain"
	"github.com/spec-kit/emergency-care/internal/events"
	"github.com/spec-kit/emergency-care/internal/repository"
)

// EmergencyService records simulated emergency requests. The action type is a
// free-form label from the caller; nothing is dispatched for real.
type EmergencyService struct {
	actions    repository.EmergencyActionRepository
	dispatcher events.Dispatcher
}

// NewEmergencyService builds the service.
func NewEmergencyService(actions repository.EmergencyActionRepository, dispatcher events.Dispatcher) *EmergencyService {
	return &EmergencyService{actions: actions, dispatcher: dispatcher}
}

// LogAction appends an emergency action entry and returns the acknowledgement
// message echoed to the caller.
func (s *EmergencyService) LogAction(ctx context.Context, userID, actionType string) (string, error) {
	if actionType == "" {
		actionType = "unknown"
	}

	entry := &domain.EmergencyActionEntry{
		UserID:     userID,
		ActionType: actionType,
	}
	if err := s.actions.Create(ctx, entry); err != nil {
		return "", err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        entry.ID,
			Type:      events.EventEmergencyRequested,
			UserID:    userID,
			Timestamp: entry.Timestamp,
			Payload:   events.EmergencyRequestedPayload{ActionType: actionType},
		})
	}

	return fmt.Sprintf("%s request simulated.", capitalize(actionType)), nil
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
