package invoice

import "errors"

var (
	ErrSupplierNotFound  = errors.New("supplier not found")
	ErrSupplierTaxIDUsed = errors.New("supplier tax id already registered")
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrNoValidLineItems  = errors.New("invoice has no valid line items")
)
