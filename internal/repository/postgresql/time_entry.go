package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"

	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
	"github.com/lengolf/backoffice-go/internal/pkg/database"
)

// timeEntryStore reads the external time-clock ledger. The ledger lives
// in a hosted database we do not own, so reads go through a circuit
// breaker: when the ledger is struggling, payroll requests fail fast
// instead of piling up connection attempts.
type timeEntryStore struct {
	db *database.DB
	cb *gobreaker.CircuitBreaker
}

func NewTimeEntryStore(db *database.DB) timeclock.Store {
	settings := gobreaker.Settings{
		Name:        "time-clock-ledger",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
	}
	return &timeEntryStore{db: db, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (s *timeEntryStore) ListRange(ctx context.Context, from, to time.Time) ([]timeclock.TimeEntry, error) {
	return s.query(ctx, `
		SELECT id, staff_id, timestamp, action
		FROM time_entries
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp ASC
	`, from, to)
}

func (s *timeEntryStore) ListRangeByStaff(ctx context.Context, staffID string, from, to time.Time) ([]timeclock.TimeEntry, error) {
	return s.query(ctx, `
		SELECT id, staff_id, timestamp, action
		FROM time_entries
		WHERE staff_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp ASC
	`, staffID, from, to)
}

func (s *timeEntryStore) query(ctx context.Context, query string, args ...interface{}) ([]timeclock.TimeEntry, error) {
	result, err := s.cb.Execute(func() (interface{}, error) {
		q := GetQuerier(ctx, s.db)

		rows, err := q.Query(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query time entries: %w", err)
		}
		defer rows.Close()

		var entries []timeclock.TimeEntry
		for rows.Next() {
			var e timeclock.TimeEntry
			if err := rows.Scan(&e.ID, &e.StaffID, &e.Timestamp, &e.Action); err != nil {
				return nil, fmt.Errorf("failed to scan time entry: %w", err)
			}
			entries = append(entries, e)
		}
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to read time entries: %w", err)
		}
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]timeclock.TimeEntry), nil
}
