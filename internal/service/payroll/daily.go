package payroll

import (
	"log/slog"
	"sort"
	"time"

	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
)

// pairingState tags the punch-matching state machine for one
// (staff, date) group.
type pairingState int

const (
	awaitingClockIn pairingState = iota
	clockInPending
)

// DailyAggregator pairs raw punches into work sessions and totals them
// per staff member per venue-local calendar date. It is a pure function
// over its input: malformed punch sequences degrade to the
// HasMissingClockOut flag, never an error.
type DailyAggregator struct {
	loc *time.Location
}

func NewDailyAggregator(loc *time.Location) *DailyAggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &DailyAggregator{loc: loc}
}

type dayKey struct {
	staffID string
	date    string // "2006-01-02" in venue time
}

// Aggregate consumes entries ordered by timestamp and returns one
// DailyHours per (staff, date) that had at least one punch, sorted by
// staff id then date so repeated runs yield identical output.
//
// Pairing rules per group, scanning in timestamp order:
//   - clock_in opens the pending slot, abandoning any punch already in
//     it (a second clock_in wins over the first);
//   - clock_out with an open slot closes it into a session;
//   - clock_out with no open slot is dropped;
//   - a slot still open at the end of the day sets HasMissingClockOut.
//
// Sessions with non-positive duration are discarded and contribute no
// hours.
func (a *DailyAggregator) Aggregate(entries []timeclock.TimeEntry) []timeclock.DailyHours {
	type group struct {
		day     *timeclock.DailyHours
		state   pairingState
		pending time.Time
	}

	groups := make(map[dayKey]*group)
	order := make([]dayKey, 0)

	for _, e := range entries {
		local := e.Timestamp.In(a.loc)
		key := dayKey{staffID: e.StaffID, date: local.Format("2006-01-02")}

		g, ok := groups[key]
		if !ok {
			midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.loc)
			g = &group{
				day:   &timeclock.DailyHours{StaffID: e.StaffID, Date: midnight},
				state: awaitingClockIn,
			}
			groups[key] = g
			order = append(order, key)
		}

		switch e.Action {
		case timeclock.ActionClockIn:
			if g.state == clockInPending {
				slog.Debug("duplicate clock-in, abandoning earlier punch",
					"staff_id", e.StaffID, "date", key.date, "abandoned_at", g.pending)
			}
			g.pending = e.Timestamp
			g.state = clockInPending
		case timeclock.ActionClockOut:
			if g.state != clockInPending {
				slog.Debug("clock-out without open clock-in, dropped",
					"staff_id", e.StaffID, "date", key.date, "at", e.Timestamp)
				continue
			}
			session := timeclock.WorkSession{ClockIn: g.pending, ClockOut: e.Timestamp}
			g.state = awaitingClockIn
			if session.Hours() <= 0 {
				continue
			}
			g.day.Sessions = append(g.day.Sessions, session)
			g.day.TotalHours += session.Hours()
		}
	}

	results := make([]timeclock.DailyHours, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.state == clockInPending {
			g.day.HasMissingClockOut = true
		}
		results = append(results, *g.day)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].StaffID != results[j].StaffID {
			return results[i].StaffID < results[j].StaffID
		}
		return results[i].Date.Before(results[j].Date)
	})
	return results
}
