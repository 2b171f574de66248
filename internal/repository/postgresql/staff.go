package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lengolf/backoffice-go/internal/domain/staff"
	"github.com/lengolf/backoffice-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepository{db: db}
}

func (r *staffRepository) ListActive(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, active, created_at, updated_at
		FROM staff
		WHERE active = TRUE
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	defer rows.Close()

	var result []staff.Staff
	for rows.Next() {
		var s staff.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff rows: %w", err)
	}

	return result, nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, active, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff %s: %w", id, err)
	}

	return s, nil
}
