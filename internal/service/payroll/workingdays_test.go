package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
)

func TestWorkingDaysCounterThreshold(t *testing.T) {
	counter := NewWorkingDaysCounter()

	counts := counter.Count([]timeclock.DailyHours{
		day("s1", "2024-06-03", 8),
		day("s1", "2024-06-04", 6), // exactly at the threshold counts
		day("s1", "2024-06-05", 5.99),
		day("s2", "2024-06-03", 2),
	})

	assert.Equal(t, 2, counts["s1"])
	assert.NotContains(t, counts, "s2")
}

func TestWorkingDaysCounterEmpty(t *testing.T) {
	counter := NewWorkingDaysCounter()

	assert.Empty(t, counter.Count(nil))
}
