package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/lengolf/backoffice-go/internal/domain/staff"
	"github.com/lengolf/backoffice-go/internal/pkg/database"
)

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) staff.CompensationRepository {
	return &compensationRepository{db: db}
}

func (r *compensationRepository) ListEffectiveAt(ctx context.Context, at time.Time) ([]staff.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, compensation_type, base_salary, hourly_rate,
			   overtime_rate, holiday_rate, service_charge_eligible,
			   effective_from, effective_to, created_at, updated_at
		FROM staff_compensation
		WHERE effective_from <= $1
		  AND (effective_to IS NULL OR effective_to >= $1)
		ORDER BY staff_id, effective_from
	`

	rows, err := q.Query(ctx, query, at)
	if err != nil {
		return nil, fmt.Errorf("failed to list effective compensation: %w", err)
	}
	defer rows.Close()

	var result []staff.Compensation
	for rows.Next() {
		var c staff.Compensation
		if err := rows.Scan(
			&c.ID, &c.StaffID, &c.Type, &c.BaseSalary, &c.HourlyRate,
			&c.OvertimeRate, &c.HolidayRate, &c.ServiceChargeEligible,
			&c.EffectiveFrom, &c.EffectiveTo, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan compensation: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read compensation rows: %w", err)
	}

	return result, nil
}
