package staff

import (
	"time"

	"github.com/shopspring/decimal"
)

// Staff is one roster member.
type Staff struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompensationType selects which branch of the pay formula applies.
type CompensationType string

const (
	CompensationSalary CompensationType = "salary"
	CompensationHourly CompensationType = "hourly"
)

// Compensation is a staff member's pay contract, effective for a date
// range. Exactly one record must be effective for an active staff member
// in any payroll month; the payroll engine enforces this.
type Compensation struct {
	ID                    string
	StaffID               string
	Type                  CompensationType
	BaseSalary            decimal.Decimal // used only when Type == salary
	HourlyRate            decimal.Decimal // used only when Type == hourly
	OvertimeRate          decimal.Decimal // per overtime hour
	HolidayRate           decimal.Decimal // per hour worked on a public holiday
	ServiceChargeEligible bool
	EffectiveFrom         time.Time
	EffectiveTo           *time.Time // nil = open-ended
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
