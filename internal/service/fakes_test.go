package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/emergency-care/internal/auth"
	"github.com/spec-kit/emergency-care/internal/domain"
	"github.com/spec-kit/emergency-care/internal/events"
	"github.com/spec-kit/emergency-care/internal/repository"
)

type fakeUserRepo struct {
	nextID int
	users  map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := user
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeSessions struct {
	nextID   int
	sessions map[string]auth.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]auth.Session)}
}

func (s *fakeSessions) Create(_ context.Context, userID, displayName string) (*auth.Session, error) {
	s.nextID++
	session := auth.Session{
		ID:          fmt.Sprintf("session-%d", s.nextID),
		UserID:      userID,
		DisplayName: displayName,
	}
	s.sessions[session.ID] = session
	return &session, nil
}

func (s *fakeSessions) Get(_ context.Context, id string) (*auth.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, auth.ErrSessionNotFound
	}
	copied := session
	return &copied, nil
}

func (s *fakeSessions) UpdateDisplayName(_ context.Context, id, displayName string) error {
	session, ok := s.sessions[id]
	if !ok {
		return auth.ErrSessionNotFound
	}
	session.DisplayName = displayName
	s.sessions[id] = session
	return nil
}

func (s *fakeSessions) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

type fakeHistoryRepo struct {
	nextID  int
	entries []domain.SymptomHistoryEntry
}

func (r *fakeHistoryRepo) Create(_ context.Context, entry *domain.SymptomHistoryEntry) error {
	r.nextID++
	entry.ID = fmt.Sprintf("symptom-%d", r.nextID)
	entry.Timestamp = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeHistoryRepo) LatestByUser(_ context.Context, userID string) (*domain.SymptomHistoryEntry, error) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			copied := r.entries[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeHistoryRepo) ListByUser(_ context.Context, userID string) ([]domain.SymptomHistoryEntry, error) {
	var result []domain.SymptomHistoryEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			result = append(result, r.entries[i])
		}
	}
	return result, nil
}

func (r *fakeHistoryRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, entry := range r.entries {
		if entry.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeActionRepo struct {
	nextID  int
	entries []domain.EmergencyActionEntry
}

func (r *fakeActionRepo) Create(_ context.Context, entry *domain.EmergencyActionEntry) error {
	r.nextID++
	entry.ID = fmt.Sprintf("action-%d", r.nextID)
	entry.Timestamp = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *fakeActionRepo) LatestByUser(_ context.Context, userID string) (*domain.EmergencyActionEntry, error) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			copied := r.entries[i]
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeActionRepo) ListByUser(_ context.Context, userID string) ([]domain.EmergencyActionEntry, error) {
	var result []domain.EmergencyActionEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].UserID == userID {
			result = append(result, r.entries[i])
		}
	}
	return result, nil
}

type fakeHospitalRepo struct {
	rows    []domain.Hospital
	seedErr error
}

func (r *fakeHospitalRepo) List(_ context.Context, filter repository.HospitalFilter) ([]domain.Hospital, error) {
	allowed := make(map[domain.HospitalStatus]struct{}, len(filter.Statuses))
	for _, status := range filter.Statuses {
		allowed[status] = struct{}{}
	}

	var result []domain.Hospital
	for _, row := range r.rows {
		if len(allowed) > 0 {
			if _, ok := allowed[row.Status]; !ok {
				continue
			}
		}
		if filter.AmbulanceOnly && !row.AmbulanceAvailable {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

func (r *fakeHospitalRepo) SeedIfEmpty(_ context.Context, listings []domain.Hospital) error {
	if r.seedErr != nil {
		return r.seedErr
	}
	if len(r.rows) > 0 {
		return nil
	}
	for i, listing := range listings {
		listing.ID = fmt.Sprintf("hospital-%d", i+1)
		r.rows = append(r.rows, listing)
	}
	return nil
}

type fakeDispatcher struct {
	published []events.Event
}

func (d *fakeDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *fakeDispatcher) Subscribe(events.EventType, events.EventHandler) {}
