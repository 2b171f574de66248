package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
)

func day(staffID, date string, hours float64) timeclock.DailyHours {
	d, err := time.ParseInLocation("2006-01-02", date, bangkok)
	if err != nil {
		panic(err)
	}
	return timeclock.DailyHours{StaffID: staffID, Date: d, TotalHours: hours}
}

func TestWeeklyAggregatorNoOvertimeUnderThreshold(t *testing.T) {
	agg := NewWeeklyAggregator()

	// 2024-06-02 is a Sunday.
	weeks := agg.Aggregate([]timeclock.DailyHours{
		day("s1", "2024-06-02", 8),
		day("s1", "2024-06-03", 8),
		day("s1", "2024-06-04", 8),
		day("s1", "2024-06-05", 8),
		day("s1", "2024-06-06", 8),
	}, nil)

	require.Len(t, weeks, 1)
	assert.InDelta(t, 40.0, weeks[0].TotalHours, 1e-9)
	assert.Zero(t, weeks[0].OvertimeHours)
}

func TestWeeklyAggregatorOvertimePastThreshold(t *testing.T) {
	agg := NewWeeklyAggregator()

	weeks := agg.Aggregate([]timeclock.DailyHours{
		day("s1", "2024-06-02", 10),
		day("s1", "2024-06-03", 10),
		day("s1", "2024-06-04", 10),
		day("s1", "2024-06-05", 10),
		day("s1", "2024-06-06", 10),
	}, nil)

	require.Len(t, weeks, 1)
	assert.InDelta(t, 50.0, weeks[0].TotalHours, 1e-9)
	assert.InDelta(t, 2.0, weeks[0].OvertimeHours, 1e-9)
}

func TestWeeklyAggregatorHolidayHoursCarvedOutOfOvertime(t *testing.T) {
	agg := NewWeeklyAggregator()
	holidays := map[string]bool{"2024-06-03": true}

	// 50 hours total, 10 of them on a holiday: the overtime base is 40,
	// under the threshold, so no overtime accrues. The holiday hours still
	// show in the weekly total.
	weeks := agg.Aggregate([]timeclock.DailyHours{
		day("s1", "2024-06-02", 10),
		day("s1", "2024-06-03", 10),
		day("s1", "2024-06-04", 10),
		day("s1", "2024-06-05", 10),
		day("s1", "2024-06-06", 10),
	}, holidays)

	require.Len(t, weeks, 1)
	assert.InDelta(t, 50.0, weeks[0].TotalHours, 1e-9)
	assert.Zero(t, weeks[0].OvertimeHours)
}

func TestWeeklyAggregatorHolidayCarveOutPartial(t *testing.T) {
	agg := NewWeeklyAggregator()
	holidays := map[string]bool{"2024-06-03": true}

	// 58 hours with 8 on a holiday: 50 non-holiday hours leave 2 hours of
	// overtime.
	weeks := agg.Aggregate([]timeclock.DailyHours{
		day("s1", "2024-06-02", 10),
		day("s1", "2024-06-03", 8),
		day("s1", "2024-06-04", 10),
		day("s1", "2024-06-05", 10),
		day("s1", "2024-06-06", 10),
		day("s1", "2024-06-07", 10),
	}, holidays)

	require.Len(t, weeks, 1)
	assert.InDelta(t, 58.0, weeks[0].TotalHours, 1e-9)
	assert.InDelta(t, 2.0, weeks[0].OvertimeHours, 1e-9)
}

func TestWeeklyAggregatorSundayStartsTheWeek(t *testing.T) {
	agg := NewWeeklyAggregator()

	// Saturday June 1st closes one week; Sunday June 2nd opens the next.
	weeks := agg.Aggregate([]timeclock.DailyHours{
		day("s1", "2024-06-01", 8),
		day("s1", "2024-06-02", 8),
	}, nil)

	require.Len(t, weeks, 2)
	assert.Equal(t, "2024-05-26", weeks[0].WeekStart.Format("2006-01-02"))
	assert.Equal(t, "2024-06-02", weeks[1].WeekStart.Format("2006-01-02"))
}

func TestWeeklyAggregatorSeparatesStaff(t *testing.T) {
	agg := NewWeeklyAggregator()

	weeks := agg.Aggregate([]timeclock.DailyHours{
		day("s1", "2024-06-03", 8),
		day("s2", "2024-06-03", 9),
	}, nil)

	require.Len(t, weeks, 2)
	assert.Equal(t, "s1", weeks[0].StaffID)
	assert.InDelta(t, 8.0, weeks[0].TotalHours, 1e-9)
	assert.Equal(t, "s2", weeks[1].StaffID)
	assert.InDelta(t, 9.0, weeks[1].TotalHours, 1e-9)
}
