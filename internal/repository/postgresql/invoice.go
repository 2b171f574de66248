package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lengolf/backoffice-go/internal/domain/invoice"
	"github.com/lengolf/backoffice-go/internal/pkg/database"
)

type invoiceRepository struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to encode invoice items: %w", err)
	}

	query := `
		INSERT INTO invoices (id, supplier_id, invoice_number, invoice_date, items, subtotal, tax_rate, tax_amount, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, supplier_id, invoice_number, invoice_date, items, subtotal, tax_rate, tax_amount, total, created_at
	`

	var created invoice.Invoice
	var rawItems []byte
	err = q.QueryRow(ctx, query,
		uuid.NewString(), inv.SupplierID, inv.InvoiceNumber, inv.InvoiceDate,
		itemsJSON, inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Total,
	).Scan(
		&created.ID, &created.SupplierID, &created.InvoiceNumber, &created.InvoiceDate,
		&rawItems, &created.Subtotal, &created.TaxRate, &created.TaxAmount, &created.Total,
		&created.CreatedAt,
	)
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}
	if err := json.Unmarshal(rawItems, &created.Items); err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to decode invoice items: %w", err)
	}

	return created, nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, supplier_id, invoice_number, invoice_date, items, subtotal, tax_rate, tax_amount, total, created_at
		FROM invoices
		WHERE id = $1
	`

	var inv invoice.Invoice
	var rawItems []byte
	err := q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.SupplierID, &inv.InvoiceNumber, &inv.InvoiceDate,
		&rawItems, &inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.Total,
		&inv.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Invoice{}, invoice.ErrInvoiceNotFound
		}
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice %s: %w", id, err)
	}
	if err := json.Unmarshal(rawItems, &inv.Items); err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to decode invoice items: %w", err)
	}

	return inv, nil
}

func (r *invoiceRepository) ListRecent(ctx context.Context, limit int) ([]invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, supplier_id, invoice_number, invoice_date, items, subtotal, tax_rate, tax_amount, total, created_at
		FROM invoices
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var result []invoice.Invoice
	for rows.Next() {
		var inv invoice.Invoice
		var rawItems []byte
		if err := rows.Scan(
			&inv.ID, &inv.SupplierID, &inv.InvoiceNumber, &inv.InvoiceDate,
			&rawItems, &inv.Subtotal, &inv.TaxRate, &inv.TaxAmount, &inv.Total,
			&inv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		if err := json.Unmarshal(rawItems, &inv.Items); err != nil {
			return nil, fmt.Errorf("failed to decode invoice items: %w", err)
		}
		result = append(result, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read invoice rows: %w", err)
	}

	return result, nil
}
