package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/lengolf/backoffice-go/internal/pkg/validator"
)

type CalculationResultResponse struct {
	StaffID          string          `json:"staff_id"`
	StaffName        string          `json:"staff_name"`
	CompensationType string          `json:"compensation_type"`
	WorkingDays      int             `json:"working_days"`
	TotalHours       float64         `json:"total_hours"`
	OvertimeHours    float64         `json:"overtime_hours"`
	HolidayHours     float64         `json:"holiday_hours"`
	BasePay          decimal.Decimal `json:"base_pay"`
	DailyAllowance   decimal.Decimal `json:"daily_allowance"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	HolidayPay       decimal.Decimal `json:"holiday_pay"`
	ServiceCharge    decimal.Decimal `json:"service_charge"`
	TotalPayout      decimal.Decimal `json:"total_payout"`
}

func ToCalculationResponse(r CalculationResult) CalculationResultResponse {
	return CalculationResultResponse{
		StaffID:          r.StaffID,
		StaffName:        r.StaffName,
		CompensationType: string(r.CompensationType),
		WorkingDays:      r.WorkingDays,
		TotalHours:       r.TotalHours,
		OvertimeHours:    r.OvertimeHours,
		HolidayHours:     r.HolidayHours,
		BasePay:          r.BasePay,
		DailyAllowance:   r.DailyAllowance,
		OvertimePay:      r.OvertimePay,
		HolidayPay:       r.HolidayPay,
		ServiceCharge:    r.ServiceCharge,
		TotalPayout:      r.TotalPayout,
	}
}

type UpdatePoolSettingsRequest struct {
	DailyAllowance    *decimal.Decimal `json:"daily_allowance,omitempty"`
	ServiceChargePool *decimal.Decimal `json:"service_charge_pool,omitempty"`
	Month             string           `json:"month,omitempty"` // required when setting the pool
}

func (r *UpdatePoolSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DailyAllowance != nil && r.DailyAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "daily_allowance", Message: "must be non-negative"})
	}
	if r.ServiceChargePool != nil {
		if r.ServiceChargePool.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "service_charge_pool", Message: "must be non-negative"})
		}
		if !validator.IsValidMonth(r.Month) {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "must be YYYY-MM when setting service_charge_pool"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PoolSettingsResponse struct {
	DailyAllowance    decimal.Decimal `json:"daily_allowance"`
	ServiceChargePool decimal.Decimal `json:"service_charge_pool"`
	Month             string          `json:"month"`
}
