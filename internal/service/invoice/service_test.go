package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lengolf/backoffice-go/internal/domain/invoice"
)

func item(desc string, amount string) invoice.LineItemInput {
	return invoice.LineItemInput{Description: desc, Amount: decimal.RequireFromString(amount)}
}

func TestComputeTotalsFiltersInvalidItems(t *testing.T) {
	items := []invoice.LineItemInput{
		item("Range balls", "1500.00"),
		item("", "400.00"),          // no description
		item("Cart rental", "0"),    // zero amount
		item("  ", "250.00"),        // whitespace-only description
		item("Green fees", "-50.0"), // negative amount
		item("Club cleaning", "300.00"),
	}

	valid, subtotal, _, _ := ComputeTotals(items, decimal.Zero)

	require.Len(t, valid, 2)
	assert.Equal(t, "Range balls", valid[0].Description)
	assert.Equal(t, "Club cleaning", valid[1].Description)
	assert.True(t, subtotal.Equal(decimal.RequireFromString("1800.00")), "subtotal %s", subtotal)
}

func TestComputeTotalsWithholdingTax(t *testing.T) {
	items := []invoice.LineItemInput{
		item("Maintenance", "10000.00"),
	}

	_, subtotal, taxAmount, total := ComputeTotals(items, decimal.RequireFromString("3.00"))

	assert.True(t, subtotal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, taxAmount.Equal(decimal.NewFromInt(300)), "tax %s", taxAmount)
	// Withholding tax is deducted from the subtotal.
	assert.True(t, total.Equal(decimal.NewFromInt(9700)), "total %s", total)
}

func TestComputeTotalsRoundsTax(t *testing.T) {
	items := []invoice.LineItemInput{
		item("Consulting", "333.33"),
	}

	_, _, taxAmount, total := ComputeTotals(items, decimal.RequireFromString("3.00"))

	assert.True(t, taxAmount.Equal(decimal.RequireFromString("10.00")), "tax %s", taxAmount)
	assert.True(t, total.Equal(decimal.RequireFromString("323.33")), "total %s", total)
}

func TestComputeTotalsTrimsDescriptions(t *testing.T) {
	items := []invoice.LineItemInput{
		item("  Range balls  ", "100.00"),
	}

	valid, _, _, _ := ComputeTotals(items, decimal.Zero)

	require.Len(t, valid, 1)
	assert.Equal(t, "Range balls", valid[0].Description)
}
