package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a vendor the venue issues withholding-tax invoices for.
type Supplier struct {
	ID                 string
	Name               string
	AddressLine1       *string
	AddressLine2       *string
	TaxID              *string
	DefaultDescription *string
	DefaultUnitPrice   *decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// LineItem is one billable row on an invoice. Items with an empty
// description or a non-positive amount are dropped before totalling.
type LineItem struct {
	Description string
	Amount      decimal.Decimal
}

// Invoice is a generated supplier invoice. TaxAmount is withholding tax
// deducted from the subtotal, so Total = Subtotal - TaxAmount.
type Invoice struct {
	ID            string
	SupplierID    string
	InvoiceNumber string
	InvoiceDate   time.Time
	Items         []LineItem
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // percentage, e.g. 3.00
	TaxAmount     decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
}
