package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lengolf/backoffice-go/internal/domain/setting"
)

// Setting keys. The service-charge pool is per month, so its key carries
// the period suffix.
const (
	KeyDailyAllowance      = "daily_allowance"
	keyServiceChargePrefix = "service_charge_pool."
	KeyDefaultWHTRate      = "default_wht_rate"
	KeyBankName            = "bank_name"
	KeyBankAccountNumber   = "bank_account_number"
	KeyCompanyName         = "company_name"
	KeyCompanyAddress      = "company_address"
)

// DefaultWHTRate matches the seed value of the settings table.
var DefaultWHTRate = decimal.RequireFromString("3.00")

// Service provides typed access to the key/value settings store.
// Pool amounts (allowance, service charge) default to zero when unset:
// a month without a collected service charge is a valid state, unlike a
// staff member without a pay contract.
type Service struct {
	repo setting.Repository
}

func NewSettingsService(repo setting.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) getDecimal(ctx context.Context, key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	raw, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return fallback, nil
		}
		return decimal.Zero, err
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("setting %s holds non-numeric value %q: %w", key, raw, err)
	}
	return value, nil
}

// DailyAllowance returns the flat per-working-day allowance amount.
func (s *Service) DailyAllowance(ctx context.Context) (decimal.Decimal, error) {
	return s.getDecimal(ctx, KeyDailyAllowance, decimal.Zero)
}

func (s *Service) SetDailyAllowance(ctx context.Context, amount decimal.Decimal) error {
	return s.repo.Set(ctx, KeyDailyAllowance, amount.String())
}

// ServiceChargePool returns the pooled service charge collected for the
// month (period is "YYYY-MM"). Zero when nothing was recorded.
func (s *Service) ServiceChargePool(ctx context.Context, period string) (decimal.Decimal, error) {
	return s.getDecimal(ctx, keyServiceChargePrefix+period, decimal.Zero)
}

func (s *Service) SetServiceChargePool(ctx context.Context, period string, amount decimal.Decimal) error {
	return s.repo.Set(ctx, keyServiceChargePrefix+period, amount.String())
}

// WithholdingTaxRate returns the default WHT percentage applied to
// supplier invoices when the request does not override it.
func (s *Service) WithholdingTaxRate(ctx context.Context) (decimal.Decimal, error) {
	return s.getDecimal(ctx, KeyDefaultWHTRate, DefaultWHTRate)
}

// InvoiceDefaults is the static settings block stamped on every
// invoice: the issuing company, its bank details and the default
// withholding-tax rate.
type InvoiceDefaults struct {
	CompanyName       string
	CompanyAddress    string
	BankName          string
	BankAccountNumber string
	WHTRate           decimal.Decimal
}

// InvoiceDefaults loads the settings table in one round trip and picks
// out the invoice block. Missing keys come back empty; a missing WHT
// rate falls back to the default.
func (s *Service) InvoiceDefaults(ctx context.Context) (InvoiceDefaults, error) {
	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return InvoiceDefaults{}, err
	}

	rate := DefaultWHTRate
	if raw, ok := values[KeyDefaultWHTRate]; ok {
		rate, err = decimal.NewFromString(raw)
		if err != nil {
			return InvoiceDefaults{}, fmt.Errorf("setting %s holds non-numeric value %q: %w", KeyDefaultWHTRate, raw, err)
		}
	}

	return InvoiceDefaults{
		CompanyName:       values[KeyCompanyName],
		CompanyAddress:    values[KeyCompanyAddress],
		BankName:          values[KeyBankName],
		BankAccountNumber: values[KeyBankAccountNumber],
		WHTRate:           rate,
	}, nil
}
