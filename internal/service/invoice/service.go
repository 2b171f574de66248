package invoice

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lengolf/backoffice-go/internal/domain/invoice"
	"github.com/lengolf/backoffice-go/internal/service/settings"
)

type InvoiceServiceImpl struct {
	supplierRepo invoice.SupplierRepository
	invoiceRepo  invoice.InvoiceRepository
	settings     *settings.Service
	now          func() time.Time
}

func NewInvoiceService(
	supplierRepo invoice.SupplierRepository,
	invoiceRepo invoice.InvoiceRepository,
	settingsSvc *settings.Service,
) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		supplierRepo: supplierRepo,
		invoiceRepo:  invoiceRepo,
		settings:     settingsSvc,
		now:          time.Now,
	}
}

// ========== SUPPLIERS ==========

func (s *InvoiceServiceImpl) CreateSupplier(ctx context.Context, req invoice.CreateSupplierRequest) (invoice.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.SupplierResponse{}, err
	}

	created, err := s.supplierRepo.Create(ctx, invoice.Supplier{
		Name:               strings.TrimSpace(req.Name),
		AddressLine1:       req.AddressLine1,
		AddressLine2:       req.AddressLine2,
		TaxID:              req.TaxID,
		DefaultDescription: req.DefaultDescription,
		DefaultUnitPrice:   req.DefaultUnitPrice,
	})
	if err != nil {
		return invoice.SupplierResponse{}, err
	}

	return mapSupplierResponse(created), nil
}

func (s *InvoiceServiceImpl) ListSuppliers(ctx context.Context) ([]invoice.SupplierResponse, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]invoice.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		result = append(result, mapSupplierResponse(sup))
	}
	return result, nil
}

// ========== INVOICES ==========

// ComputeTotals filters the raw line items down to valid ones (non-empty
// description, positive amount) and derives subtotal, withholding tax
// and total. The tax is deducted from the subtotal.
func ComputeTotals(items []invoice.LineItemInput, taxRate decimal.Decimal) ([]invoice.LineItem, decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	valid := make([]invoice.LineItem, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		desc := strings.TrimSpace(item.Description)
		if desc == "" || !item.Amount.IsPositive() {
			continue
		}
		valid = append(valid, invoice.LineItem{Description: desc, Amount: item.Amount})
		subtotal = subtotal.Add(item.Amount)
	}

	taxAmount := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Sub(taxAmount).Round(2)
	return valid, subtotal, taxAmount, total
}

func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, req invoice.CreateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	if _, err := s.supplierRepo.GetByID(ctx, req.SupplierID); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	taxRate := decimal.Zero
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	} else {
		rate, err := s.settings.WithholdingTaxRate(ctx)
		if err != nil {
			return invoice.InvoiceResponse{}, err
		}
		taxRate = rate
	}

	invoiceDate := s.now()
	if req.InvoiceDate != "" {
		parsed, err := time.Parse("2006-01-02", req.InvoiceDate)
		if err == nil {
			invoiceDate = parsed
		}
	}

	invoiceNumber := req.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = s.now().Format("200601")
	}

	items, subtotal, taxAmount, total := ComputeTotals(req.Items, taxRate)
	if len(items) == 0 {
		return invoice.InvoiceResponse{}, invoice.ErrNoValidLineItems
	}

	created, err := s.invoiceRepo.Create(ctx, invoice.Invoice{
		SupplierID:    req.SupplierID,
		InvoiceNumber: invoiceNumber,
		InvoiceDate:   invoiceDate,
		Items:         items,
		Subtotal:      subtotal,
		TaxRate:       taxRate,
		TaxAmount:     taxAmount,
		Total:         total,
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return mapInvoiceResponse(created), nil
}

// InvoiceDefaults returns the company, bank and tax-rate block clients
// render on every invoice.
func (s *InvoiceServiceImpl) InvoiceDefaults(ctx context.Context) (invoice.InvoiceDefaultsResponse, error) {
	defaults, err := s.settings.InvoiceDefaults(ctx)
	if err != nil {
		return invoice.InvoiceDefaultsResponse{}, err
	}

	return invoice.InvoiceDefaultsResponse{
		CompanyName:       defaults.CompanyName,
		CompanyAddress:    defaults.CompanyAddress,
		BankName:          defaults.BankName,
		BankAccountNumber: defaults.BankAccountNumber,
		DefaultTaxRate:    defaults.WHTRate,
	}, nil
}

func (s *InvoiceServiceImpl) ListRecentInvoices(ctx context.Context, limit int) ([]invoice.InvoiceResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	invoices, err := s.invoiceRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	result := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, mapInvoiceResponse(inv))
	}
	return result, nil
}

// ========== HELPERS ==========

func mapSupplierResponse(s invoice.Supplier) invoice.SupplierResponse {
	return invoice.SupplierResponse{
		ID:                 s.ID,
		Name:               s.Name,
		AddressLine1:       s.AddressLine1,
		AddressLine2:       s.AddressLine2,
		TaxID:              s.TaxID,
		DefaultDescription: s.DefaultDescription,
		DefaultUnitPrice:   s.DefaultUnitPrice,
	}
}

func mapInvoiceResponse(inv invoice.Invoice) invoice.InvoiceResponse {
	items := make([]invoice.LineItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, invoice.LineItemResponse{Description: item.Description, Amount: item.Amount})
	}
	return invoice.InvoiceResponse{
		ID:            inv.ID,
		SupplierID:    inv.SupplierID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		Items:         items,
		Subtotal:      inv.Subtotal,
		TaxRate:       inv.TaxRate,
		TaxAmount:     inv.TaxAmount,
		Total:         inv.Total,
	}
}
