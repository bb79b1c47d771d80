package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func TestComputeTotalsSingleLine(t *testing.T) {
	totals := ComputeTotals([]LineInput{
		{
			UnitPrice:    dec(t, "100"),
			Units:        2,
			VATRate:      dec(t, "21"),
			DiscountRate: dec(t, "10"),
		},
	})

	require.True(t, totals.DiscountAmount.Equal(dec(t, "20")), "discount = %s", totals.DiscountAmount)
	require.True(t, totals.TaxableAmount.Equal(dec(t, "200")), "taxable = %s", totals.TaxableAmount)
	require.True(t, totals.VATAmount.Equal(dec(t, "37.8")), "vat = %s", totals.VATAmount)
	require.True(t, totals.TotalAmount.Equal(dec(t, "217.8")), "total = %s", totals.TotalAmount)
}

func TestComputeTotalsTaxableExcludesDiscount(t *testing.T) {
	totals := ComputeTotals([]LineInput{
		{UnitPrice: dec(t, "50"), Units: 4, DiscountRate: dec(t, "25")},
	})

	// The taxable base stays at the raw subtotal even when a discount
	// applies; only the grand total reflects it.
	require.True(t, totals.TaxableAmount.Equal(dec(t, "200")))
	require.True(t, totals.DiscountAmount.Equal(dec(t, "50")))
	require.True(t, totals.TotalAmount.Equal(dec(t, "150")))
}

func TestComputeTotalsDiscountCouplesAcrossLines(t *testing.T) {
	// The first line carries the whole discount, the second the whole VAT.
	// Historical invoices apply the invoice-level discount to every line's
	// VAT base, so line two's VAT is charged on 100-50, not on 100.
	totals := ComputeTotals([]LineInput{
		{UnitPrice: dec(t, "100"), Units: 1, DiscountRate: dec(t, "50")},
		{UnitPrice: dec(t, "100"), Units: 1, VATRate: dec(t, "21")},
	})

	require.True(t, totals.DiscountAmount.Equal(dec(t, "50")))
	require.True(t, totals.TaxableAmount.Equal(dec(t, "200")))
	require.True(t, totals.VATAmount.Equal(dec(t, "10.5")), "vat = %s", totals.VATAmount)
	require.True(t, totals.TotalAmount.Equal(dec(t, "160.5")), "total = %s", totals.TotalAmount)
}

func TestComputeTotalsNoItems(t *testing.T) {
	totals := ComputeTotals(nil)

	require.True(t, totals.DiscountAmount.IsZero())
	require.True(t, totals.TaxableAmount.IsZero())
	require.True(t, totals.VATAmount.IsZero())
	require.True(t, totals.TotalAmount.IsZero())
}
