package settings

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lengolf/backoffice-go/internal/domain/setting"
)

type fakeRepo struct {
	values map[string]string
}

func (f *fakeRepo) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", setting.ErrSettingNotFound
	}
	return v, nil
}

func (f *fakeRepo) Set(ctx context.Context, key, value string) error {
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

func (f *fakeRepo) GetAll(ctx context.Context) (map[string]string, error) {
	return f.values, nil
}

func TestServiceChargePoolDefaultsToZero(t *testing.T) {
	svc := NewSettingsService(&fakeRepo{})

	pool, err := svc.ServiceChargePool(context.Background(), "2024-06")
	require.NoError(t, err)
	assert.True(t, pool.IsZero())
}

func TestServiceChargePoolIsPerMonth(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewSettingsService(repo)

	require.NoError(t, svc.SetServiceChargePool(context.Background(), "2024-06", decimal.NewFromInt(3000)))

	june, err := svc.ServiceChargePool(context.Background(), "2024-06")
	require.NoError(t, err)
	assert.True(t, june.Equal(decimal.NewFromInt(3000)))

	july, err := svc.ServiceChargePool(context.Background(), "2024-07")
	require.NoError(t, err)
	assert.True(t, july.IsZero())
}

func TestWithholdingTaxRateFallsBackToDefault(t *testing.T) {
	svc := NewSettingsService(&fakeRepo{})

	rate, err := svc.WithholdingTaxRate(context.Background())
	require.NoError(t, err)
	assert.True(t, rate.Equal(DefaultWHTRate))
}

func TestInvoiceDefaultsReadsWholeTable(t *testing.T) {
	svc := NewSettingsService(&fakeRepo{values: map[string]string{
		KeyCompanyName:       "LENGOLF Co., Ltd.",
		KeyCompanyAddress:    "540 Mercury Ville, Bangkok",
		KeyBankName:          "Kasikorn Bank",
		KeyBankAccountNumber: "123-4-56789-0",
		KeyDefaultWHTRate:    "5.00",
	}})

	defaults, err := svc.InvoiceDefaults(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "LENGOLF Co., Ltd.", defaults.CompanyName)
	assert.Equal(t, "540 Mercury Ville, Bangkok", defaults.CompanyAddress)
	assert.Equal(t, "Kasikorn Bank", defaults.BankName)
	assert.Equal(t, "123-4-56789-0", defaults.BankAccountNumber)
	assert.True(t, defaults.WHTRate.Equal(decimal.RequireFromString("5.00")))
}

func TestInvoiceDefaultsMissingKeysFallBack(t *testing.T) {
	svc := NewSettingsService(&fakeRepo{})

	defaults, err := svc.InvoiceDefaults(context.Background())
	require.NoError(t, err)
	assert.Empty(t, defaults.CompanyName)
	assert.Empty(t, defaults.BankName)
	assert.True(t, defaults.WHTRate.Equal(DefaultWHTRate))
}

func TestNonNumericSettingIsAnError(t *testing.T) {
	svc := NewSettingsService(&fakeRepo{values: map[string]string{KeyDailyAllowance: "not-a-number"}})

	_, err := svc.DailyAllowance(context.Background())
	assert.Error(t, err)
}
