package holiday

import "time"

// PublicHoliday is external reference data: a date flagged as a public
// holiday. Hours worked on these dates are paid at the holiday rate and
// excluded from the weekly overtime base.
type PublicHoliday struct {
	ID     string
	Date   time.Time
	Name   string
	Active bool
}
