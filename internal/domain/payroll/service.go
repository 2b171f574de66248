package payroll

import "context"

// Service is the single entry point external callers have into the
// payroll core: compute the month's pay figures for every active staff
// member. Result order is not significant.
type Service interface {
	Calculate(ctx context.Context, period Period) ([]CalculationResult, error)
}
