package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/lengolf/backoffice-go/internal/pkg/validator"
)

type CreateSupplierRequest struct {
	Name               string           `json:"name"`
	AddressLine1       *string          `json:"address_line1,omitempty"`
	AddressLine2       *string          `json:"address_line2,omitempty"`
	TaxID              *string          `json:"tax_id,omitempty"`
	DefaultDescription *string          `json:"default_description,omitempty"`
	DefaultUnitPrice   *decimal.Decimal `json:"default_unit_price,omitempty"`
}

func (r *CreateSupplierRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.TaxID != nil && !validator.IsValidTaxID(*r.TaxID) {
		errs = append(errs, validator.ValidationError{Field: "tax_id", Message: "must be 13 digits"})
	}
	if r.DefaultUnitPrice != nil && r.DefaultUnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "default_unit_price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SupplierResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	AddressLine1       *string          `json:"address_line1,omitempty"`
	AddressLine2       *string          `json:"address_line2,omitempty"`
	TaxID              *string          `json:"tax_id,omitempty"`
	DefaultDescription *string          `json:"default_description,omitempty"`
	DefaultUnitPrice   *decimal.Decimal `json:"default_unit_price,omitempty"`
}

type LineItemInput struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type CreateInvoiceRequest struct {
	SupplierID    string           `json:"supplier_id"`
	InvoiceNumber string           `json:"invoice_number,omitempty"` // defaults to YYYYMM
	InvoiceDate   string           `json:"invoice_date,omitempty"`   // defaults to today
	TaxRate       *decimal.Decimal `json:"tax_rate,omitempty"`       // defaults to the configured WHT rate
	Items         []LineItemInput  `json:"items"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SupplierID) {
		errs = append(errs, validator.ValidationError{Field: "supplier_id", Message: "is required"})
	}
	if r.InvoiceDate != "" {
		if _, ok := validator.IsValidDate(r.InvoiceDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "invoice_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.TaxRate != nil && r.TaxRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tax_rate", Message: "must be non-negative"})
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{Field: "items", Message: "at least one line item is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// InvoiceDefaultsResponse is the static block a client needs to render
// an invoice: the issuing company, its bank details and the default
// withholding-tax rate.
type InvoiceDefaultsResponse struct {
	CompanyName       string          `json:"company_name"`
	CompanyAddress    string          `json:"company_address"`
	BankName          string          `json:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number"`
	DefaultTaxRate    decimal.Decimal `json:"default_tax_rate"`
}

type LineItemResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceResponse struct {
	ID            string             `json:"id"`
	SupplierID    string             `json:"supplier_id"`
	InvoiceNumber string             `json:"invoice_number"`
	InvoiceDate   string             `json:"invoice_date"`
	Items         []LineItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TaxRate       decimal.Decimal    `json:"tax_rate"`
	TaxAmount     decimal.Decimal    `json:"tax_amount"`
	Total         decimal.Decimal    `json:"total"`
}
