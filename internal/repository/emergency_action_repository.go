package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/emergency-care/internal/domain"
)

// EmergencyActionRepository encapsulates the append-only emergency action log.
type EmergencyActionRepository interface {
	Create(ctx context.Context, entry *domain.EmergencyActionEntry) error
	LatestByUser(ctx context.Context, userID string) (*domain.EmergencyActionEntry, error)
	ListByUser(ctx context.Context, userID string) ([]domain.EmergencyActionEntry, error)
}

type emergencyActionRepository struct {
	pool *pgxpool.Pool
}

// NewEmergencyActionRepository instantiates repository.
func NewEmergencyActionRepository(pool *pgxpool.Pool) EmergencyActionRepository {
	return &emergencyActionRepository{pool: pool}
}

func (r *emergencyActionRepository) Create(ctx context.Context, entry *domain.EmergencyActionEntry) error {
	const query = `
        INSERT INTO emergency_actions (user_id, action_type)
        VALUES ($1, $2)
        RETURNING id, timestamp`

	return r.pool.QueryRow(ctx, query,
		entry.UserID,
		entry.ActionType,
	).Scan(&entry.ID, &entry.Timestamp)
}

func (r *emergencyActionRepository) LatestByUser(ctx context.Context, userID string) (*domain.EmergencyActionEntry, error) {
	const query = `
        SELECT id, user_id, action_type, timestamp
        FROM emergency_actions WHERE user_id=$1
        ORDER BY timestamp DESC LIMIT 1`

	var entry domain.EmergencyActionEntry
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.ActionType,
		&entry.Timestamp,
	); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *emergencyActionRepository) ListByUser(ctx context.Context, userID string) ([]domain.EmergencyActionEntry, error) {
	const query = `
        SELECT id, user_id, action_type, timestamp
        FROM emergency_actions WHERE user_id=$1
        ORDER BY timestamp DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmergencyEntries(rows)
}

func scanEmergencyEntries(rows pgx.Rows) ([]domain.EmergencyActionEntry, error) {
	var result []domain.EmergencyActionEntry
	for rows.Next() {
		var entry domain.EmergencyActionEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.ActionType,
			&entry.Timestamp,
		); err != nil {
			return nil, err
		}
		result = append(result, entry)
	}
	return result, rows.Err()
}
