package payroll

import (
	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
)

// HolidayAggregator totals the hours each staff member worked on public
// holiday dates.
type HolidayAggregator struct{}

func NewHolidayAggregator() *HolidayAggregator {
	return &HolidayAggregator{}
}

// Aggregate returns staff id → hours worked on holiday dates. A month
// with no holidays yields an empty map without touching days.
func (a *HolidayAggregator) Aggregate(days []timeclock.DailyHours, holidays map[string]bool) map[string]float64 {
	result := make(map[string]float64)
	if len(holidays) == 0 {
		return result
	}

	for _, d := range days {
		if holidays[d.Date.Format("2006-01-02")] {
			result[d.StaffID] += d.TotalHours
		}
	}
	return result
}
