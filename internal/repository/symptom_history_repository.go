package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/emergency-care/internal/domain"
)

// SymptomHistoryRepository encapsulates the append-only symptom check log.
type SymptomHistoryRepository interface {
	Create(ctx context.Context, entry *domain.SymptomHistoryEntry) error
	LatestByUser(ctx context.Context, userID string) (*domain.SymptomHistoryEntry, error)
	ListByUser(ctx context.Context, userID string) ([]domain.SymptomHistoryEntry, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type symptomHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewSymptomHistoryRepository instantiates repository.
func NewSymptomHistoryRepository(pool *pgxpool.Pool) SymptomHistoryRepository {
	return &symptomHistoryRepository{pool: pool}
}

func (r *symptomHistoryRepository) Create(ctx context.Context, entry *domain.SymptomHistoryEntry) error {
	const query = `
        INSERT INTO symptom_history (user_id, symptoms_text, risk_level)
        VALUES ($1, $2, $3)
        RETURNING id, timestamp`

	return r.pool.QueryRow(ctx, query,
		entry.UserID,
		entry.SymptomsText,
		entry.RiskLevel,
	).Scan(&entry.ID, &entry.Timestamp)
}

func (r *symptomHistoryRepository) LatestByUser(ctx context.Context, userID string) (*domain.SymptomHistoryEntry, error) {
	const query = `
        SELECT id, user_id, symptoms_text, risk_level, timestamp
        FROM symptom_history WHERE user_id=$1
        ORDER BY timestamp DESC LIMIT 1`

	var entry domain.SymptomHistoryEntry
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.SymptomsText,
		&entry.RiskLevel,
		&entry.Timestamp,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *symptomHistoryRepository) ListByUser(ctx context.Context, userID string) ([]domain.SymptomHistoryEntry, error) {
	const query = `
        SELECT id, user_id, symptoms_text, risk_level, timestamp
        FROM symptom_history WHERE user_id=$1
        ORDER BY timestamp DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSymptomEntries(rows)
}

func (r *symptomHistoryRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM symptom_history WHERE user_id=$1`, userID,
	).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanSymptomEntries(rows pgx.Rows) ([]domain.SymptomHistoryEntry, error) {
	var result []domain.SymptomHistoryEntry
	for rows.Next() {
		var entry domain.SymptomHistoryEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.SymptomsText,
			&entry.RiskLevel,
			&entry.Timestamp,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
