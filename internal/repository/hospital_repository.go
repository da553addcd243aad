package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/emergency-care/internal/domain"
)

// HospitalFilter captures directory search parameters. Absent filters impose
// no constraint; present filters combine with AND.
type HospitalFilter struct {
	Statuses      []domain.HospitalStatus
	AmbulanceOnly bool
}

// HospitalRepository encapsulates directory persistence.
type HospitalRepository interface {
	List(ctx context.Context, filter HospitalFilter) ([]domain.Hospital, error)
	SeedIfEmpty(ctx context.Context, listings []domain.Hospital) error
}

type hospitalRepository struct {
	pool *pgxpool.Pool
}

// NewHospitalRepository instantiates repository.
func NewHospitalRepository(pool *pgxpool.Pool) HospitalRepository {
	return &hospitalRepository{pool: pool}
}

func (r *hospitalRepository) List(ctx context.Context, filter HospitalFilter) ([]domain.Hospital, error) {
	base := `SELECT id, name, address, status, ambulance_available, contact_number FROM hospitals`
	clauses := []string{"1=1"}
	args := []any{}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}
	if filter.AmbulanceOnly {
		clauses = append(clauses, "ambulance_available = TRUE")
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY name`, base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHospitals(rows)
}

// SeedIfEmpty inserts the sample listings only when the table holds no rows.
// The guard lives in the INSERT itself so concurrent callers cannot double-seed.
func (r *hospitalRepository) SeedIfEmpty(ctx context.Context, listings []domain.Hospital) error {
	if len(listings) == 0 {
		return nil
	}

	values := make([]string, len(listings))
	args := make([]any, 0, len(listings)*5)
	for i, h := range listings {
		args = append(args, h.Name, h.Address, h.Status, h.AmbulanceAvailable, h.ContactNumber)
		values[i] = fmt.Sprintf("($%d,$%d,$%d,$%d::boolean,$%d)",
			len(args)-4, len(args)-3, len(args)-2, len(args)-1, len(args))
	}

	query := fmt.Sprintf(`
        INSERT INTO hospitals (name, address, status, ambulance_available, contact_number)
        SELECT v.name, v.address, v.status, v.ambulance_available, v.contact_number
        FROM (VALUES %s) AS v(name, address, status, ambulance_available, contact_number)
        WHERE NOT EXISTS (SELECT 1 FROM hospitals)`, strings.Join(values, ","))

	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

func scanHospitals(rows pgx.Rows) ([]domain.Hospital, error) {
	var result []domain.Hospital
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(
			&h.ID,
			&h.Name,
			&h.Address,
			&h.Status,
			&h.AmbulanceAvailable,
			&h.ContactNumber,
		); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}
