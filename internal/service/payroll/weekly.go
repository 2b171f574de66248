package payroll

import (
	"sort"
	"time"

	"github.com/lengolf/backoffice-go/internal/domain/payroll"
	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
)

// WeeklyOvertimeThreshold is the number of non-holiday hours per week
// beyond which overtime accrues.
const WeeklyOvertimeThreshold = 48.0

// WeeklyAggregator groups daily totals into Sunday-start weeks.
// Holiday-day hours count toward the reported weekly total but are
// carved out of the overtime base: holiday work is paid at the holiday
// rate and must not also trigger overtime.
type WeeklyAggregator struct{}

func NewWeeklyAggregator() *WeeklyAggregator {
	return &WeeklyAggregator{}
}

// weekStart returns the most recent Sunday on or before d.
func weekStart(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Aggregate returns one WeeklyHours per (staff, week-start) present in
// days. holidays is keyed by "2006-01-02" date strings.
func (a *WeeklyAggregator) Aggregate(days []timeclock.DailyHours, holidays map[string]bool) []payroll.WeeklyHours {
	type weekKey struct {
		staffID string
		start   string
	}
	type weekAgg struct {
		staffID    string
		start      time.Time
		total      float64
		nonHoliday float64
	}

	weeks := make(map[weekKey]*weekAgg)
	for _, d := range days {
		start := weekStart(d.Date)
		key := weekKey{staffID: d.StaffID, start: start.Format("2006-01-02")}

		w, ok := weeks[key]
		if !ok {
			w = &weekAgg{staffID: d.StaffID, start: start}
			weeks[key] = w
		}
		w.total += d.TotalHours
		if !holidays[d.Date.Format("2006-01-02")] {
			w.nonHoliday += d.TotalHours
		}
	}

	results := make([]payroll.WeeklyHours, 0, len(weeks))
	for _, w := range weeks {
		overtime := w.nonHoliday - WeeklyOvertimeThreshold
		if overtime < 0 {
			overtime = 0
		}
		results = append(results, payroll.WeeklyHours{
			StaffID:       w.staffID,
			WeekStart:     w.start,
			TotalHours:    w.total,
			OvertimeHours: overtime,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].StaffID != results[j].StaffID {
			return results[i].StaffID < results[j].StaffID
		}
		return results[i].WeekStart.Before(results[j].WeekStart)
	})
	return results
}
