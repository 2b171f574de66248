package timeclock

import (
	"context"
	"time"
)

// Store reads raw punches from the time-clock ledger. The ledger is an
// external collaborator; this service never writes to it.
type Store interface {
	// ListRange returns all entries with from <= timestamp < to, ordered
	// by timestamp ascending.
	ListRange(ctx context.Context, from, to time.Time) ([]TimeEntry, error)

	// ListRangeByStaff is ListRange narrowed to one staff member.
	ListRangeByStaff(ctx context.Context, staffID string, from, to time.Time) ([]TimeEntry, error)
}
