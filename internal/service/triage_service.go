package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/emergency-care/internal/domain"
	"github.com/spec-kit/emergency-care/internal/events"
	"github.com/spec-kit/emergency-care/internal/repository"
	"github.com/spec-kit/emergency-care/internal/triage"
)

// TriageService runs symptom checks and serves the per-user activity views.
type TriageService struct {
	history    repository.SymptomHistoryRepository
	actions    repository.EmergencyActionRepository
	dispatcher events.Dispatcher
}

// NewTriageService builds the service.
func NewTriageService(history repository.SymptomHistoryRepository, actions repository.EmergencyActionRepository, dispatcher events.Dispatcher) *TriageService {
	return &TriageService{history: history, actions: actions, dispatcher: dispatcher}
}

// CheckSymptoms classifies the report and appends an immutable history entry
// for the requesting user. The classifier itself stays pure; the side effect
// lives here.
func (s *TriageService) CheckSymptoms(ctx context.Context, userID, symptoms, duration, severity string) (triage.Assessment, error) {
	assessment := triage.Assess(triage.Report{
		Symptoms: symptoms,
		Duration: triage.ParseDuration(duration),
		Severity: triage.ParseSeverity(severity),
	})

	entry := &domain.SymptomHistoryEntry{
		UserID:       userID,
		SymptomsText: symptoms,
		RiskLevel:    string(assessment.Level),
	}
	if err := s.history.Create(ctx, entry); err != nil {
		return triage.Assessment{}, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        entry.ID,
			Type:      events.EventSymptomChecked,
			UserID:    userID,
			Timestamp: entry.Timestamp,
			Payload: events.SymptomCheckedPayload{
				RiskLevel: assessment.Level,
				Score:     assessment.Score,
			},
		})
	}

	return assessment, nil
}

// DashboardSummary is the per-user overview shown after login.
type DashboardSummary struct {
	LastSymptom *domain.SymptomHistoryEntry
	LastAction  *domain.EmergencyActionEntry
	TotalChecks int64
}

// Dashboard returns the user's most recent activity and check count. A user
// with no activity yet gets an empty summary, not an error.
func (s *TriageService) Dashboard(ctx context.Context, userID string) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	lastSymptom, err := s.history.LatestByUser(ctx, userID)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}
	summary.LastSymptom = lastSymptom

	lastAction, err := s.actions.LatestByUser(ctx, userID)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}
	summary.LastAction = lastAction

	count, err := s.history.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary.TotalChecks = count

	return summary, nil
}

// UserHistory bundles both activity logs, each most-recent-first.
type UserHistory struct {
	Symptoms []domain.SymptomHistoryEntry
	Actions  []domain.EmergencyActionEntry
}

// History returns the user's full chronological activity.
func (s *TriageService) History(ctx context.Context, userID string) (*UserHistory, error) {
	symptoms, err := s.history.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	actions, err := s.actions.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserHistory{Symptoms: symptoms, Actions: actions}, nil
}
