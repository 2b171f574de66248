package invoice

import "context"

type SupplierRepository interface {
	Create(ctx context.Context, supplier Supplier) (Supplier, error)
	GetByID(ctx context.Context, id string) (Supplier, error)
	List(ctx context.Context) ([]Supplier, error)
}

type InvoiceRepository interface {
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	ListRecent(ctx context.Context, limit int) ([]Invoice, error)
}
