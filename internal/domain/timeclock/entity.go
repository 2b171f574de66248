package timeclock

import (
	"time"
)

// PunchAction is the direction of a single clock event.
type PunchAction string

const (
	ActionClockIn  PunchAction = "clock_in"
	ActionClockOut PunchAction = "clock_out"
)

// TimeEntry is one raw punch from the time-clock ledger. Entries are
// immutable once recorded; this service only reads them.
type TimeEntry struct {
	ID        string
	StaffID   string
	Timestamp time.Time
	Action    PunchAction
}

// WorkSession is a matched clock-in/clock-out pair. Sessions are derived
// during aggregation and never persisted.
type WorkSession struct {
	ClockIn  time.Time
	ClockOut time.Time
}

// Hours returns the session duration in hours.
func (s WorkSession) Hours() float64 {
	return s.ClockOut.Sub(s.ClockIn).Hours()
}

// DailyHours is the paired-session total for one staff member on one
// venue-local calendar date. Date is midnight in the venue timezone.
type DailyHours struct {
	StaffID            string
	Date               time.Time
	TotalHours         float64
	Sessions           []WorkSession
	HasMissingClockOut bool
}
