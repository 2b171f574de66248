package payroll

import (
	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
)

// MinWorkingDayHours is the presence threshold a day must meet to count
// as a working day for the flat daily allowance.
const MinWorkingDayHours = 6.0

// WorkingDaysCounter counts allowance-qualifying days per staff member.
type WorkingDaysCounter struct{}

func NewWorkingDaysCounter() *WorkingDaysCounter {
	return &WorkingDaysCounter{}
}

// Count returns staff id → number of days with at least
// MinWorkingDayHours paired hours.
func (c *WorkingDaysCounter) Count(days []timeclock.DailyHours) map[string]int {
	result := make(map[string]int)
	for _, d := range days {
		if d.TotalHours >= MinWorkingDayHours {
			result[d.StaffID]++
		}
	}
	return result
}
