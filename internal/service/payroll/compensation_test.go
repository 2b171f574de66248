package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lengolf/backoffice-go/internal/domain/staff"
)

func TestCompensationResolverLatestEffectiveFromWins(t *testing.T) {
	older := hourlyContract("s1", 100)
	newer := hourlyContract("s1", 120)
	newer.EffectiveFrom = time.Date(2024, 5, 1, 0, 0, 0, 0, bangkok)

	resolver := NewCompensationResolver(&fakeCompensationRepo{records: []staff.Compensation{older, newer}})

	comps, err := resolver.Resolve(context.Background(), time.Date(2024, 6, 30, 0, 0, 0, 0, bangkok))
	require.NoError(t, err)
	require.Contains(t, comps, "s1")
	assert.True(t, comps["s1"].HourlyRate.Equal(decimal.NewFromInt(120)))
}

func TestCompensationResolverExpiredRecordExcluded(t *testing.T) {
	expired := hourlyContract("s1", 100)
	endOfMay := time.Date(2024, 5, 31, 0, 0, 0, 0, bangkok)
	expired.EffectiveTo = &endOfMay

	resolver := NewCompensationResolver(&fakeCompensationRepo{records: []staff.Compensation{expired}})

	comps, err := resolver.Resolve(context.Background(), time.Date(2024, 6, 30, 0, 0, 0, 0, bangkok))
	require.NoError(t, err)
	assert.Empty(t, comps)
}
