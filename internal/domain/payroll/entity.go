package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lengolf/backoffice-go/internal/domain/staff"
)

// Period identifies one payroll month.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a "YYYY-MM" identifier.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q, want YYYY-MM: %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodOf returns the period containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start returns the first instant of the month in loc.
func (p Period) Start(loc *time.Location) time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
}

// End returns the first instant of the following month in loc.
func (p Period) End(loc *time.Location) time.Time {
	return p.Start(loc).AddDate(0, 1, 0)
}

// LastDay returns midnight of the month's last day in loc. Compensation
// effectiveness is checked against this date.
func (p Period) LastDay(loc *time.Location) time.Time {
	return p.End(loc).AddDate(0, 0, -1)
}

// WeeklyHours aggregates one staff member's hours for one Sunday-start
// week. OvertimeHours counts only non-holiday hours past the weekly
// threshold; holiday hours still show up in TotalHours.
type WeeklyHours struct {
	StaffID       string
	WeekStart     time.Time
	TotalHours    float64
	OvertimeHours float64
}

// CalculationResult is one staff member's pay figure for one month.
// Constructed fresh on every engine invocation and never mutated after.
type CalculationResult struct {
	StaffID          string
	StaffName        string
	CompensationType staff.CompensationType
	WorkingDays      int
	TotalHours       float64
	OvertimeHours    float64
	HolidayHours     float64
	BasePay          decimal.Decimal
	DailyAllowance   decimal.Decimal
	OvertimePay      decimal.Decimal
	HolidayPay       decimal.Decimal
	ServiceCharge    decimal.Decimal
	TotalPayout      decimal.Decimal
}

// PoolSettings are the month's shared amounts: the flat per-day allowance
// for salaried staff and the pooled service charge split among eligible
// staff. Absent rows mean zero, not an error.
type PoolSettings struct {
	DailyAllowance    decimal.Decimal
	ServiceChargePool decimal.Decimal
}
