package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineInput carries the fields of one line item that enter the totals
// computation.
type LineInput struct {
	UnitPrice    decimal.Decimal
	Units        int64
	VATRate      decimal.Decimal
	DiscountRate decimal.Decimal
}

// Totals are the four derived monetary fields of an invoice.
type Totals struct {
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	TaxableAmount  decimal.Decimal `json:"taxableAmount"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
}

// ComputeTotals derives invoice totals from line items.
//
// The arithmetic reproduces the numbers existing invoices were issued with,
// so two quirks are kept verbatim rather than corrected:
//
//   - taxableAmount sums the raw item subtotals; the discount is NOT
//     subtracted from it.
//   - each item's VAT is applied to (itemSubtotal - invoice-level discount
//     total), i.e. the discount of ALL items is subtracted from every item's
//     base before that item's own VAT rate is applied.
//
// totalAmount = taxableAmount + vatAmount - discountAmount.
func ComputeTotals(items []LineInput) Totals {
	discountAmount := decimal.Zero
	taxableAmount := decimal.Zero

	for _, item := range items {
		subtotal := item.UnitPrice.Mul(decimal.NewFromInt(item.Units))
		discountAmount = discountAmount.Add(subtotal.Mul(item.DiscountRate.Div(hundred)))
		taxableAmount = taxableAmount.Add(subtotal)
	}

	vatAmount := decimal.Zero
	for _, item := range items {
		subtotal := item.UnitPrice.Mul(decimal.NewFromInt(item.Units))
		base := subtotal.Sub(discountAmount)
		vatAmount = vatAmount.Add(base.Mul(item.VATRate.Div(hundred)))
	}

	return Totals{
		DiscountAmount: discountAmount,
		TaxableAmount:  taxableAmount,
		VATAmount:      vatAmount,
		TotalAmount:    taxableAmount.Add(vatAmount).Sub(discountAmount),
	}
}
