package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/lengolf/backoffice-go/internal/domain/holiday"
	"github.com/lengolf/backoffice-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}

func (r *holidayRepository) ListActiveRange(ctx context.Context, from, to time.Time) ([]holiday.PublicHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, active
		FROM public_holidays
		WHERE active = TRUE AND date >= $1 AND date < $2
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list public holidays: %w", err)
	}
	defer rows.Close()

	var result []holiday.PublicHoliday
	for rows.Next() {
		var h holiday.PublicHoliday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Active); err != nil {
			return nil, fmt.Errorf("failed to scan public holiday: %w", err)
		}
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read public holiday rows: %w", err)
	}

	return result, nil
}
