package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lengolf/backoffice-go/internal/domain/invoice"
	"github.com/lengolf/backoffice-go/internal/pkg/database"
)

type supplierRepository struct {
	db *database.DB
}

func NewSupplierRepository(db *database.DB) invoice.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, s invoice.Supplier) (invoice.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO suppliers (id, name, address_line1, address_line2, tax_id, default_description, default_unit_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, name, address_line1, address_line2, tax_id, default_description, default_unit_price, created_at, updated_at
	`

	var created invoice.Supplier
	err := q.QueryRow(ctx, query,
		uuid.NewString(), s.Name, s.AddressLine1, s.AddressLine2, s.TaxID, s.DefaultDescription, s.DefaultUnitPrice,
	).Scan(
		&created.ID, &created.Name, &created.AddressLine1, &created.AddressLine2,
		&created.TaxID, &created.DefaultDescription, &created.DefaultUnitPrice,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_suppliers_tax_id") {
			return invoice.Supplier{}, invoice.ErrSupplierTaxIDUsed
		}
		return invoice.Supplier{}, fmt.Errorf("failed to create supplier: %w", err)
	}

	return created, nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (invoice.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address_line1, address_line2, tax_id, default_description, default_unit_price, created_at, updated_at
		FROM suppliers
		WHERE id = $1
	`

	var s invoice.Supplier
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.AddressLine1, &s.AddressLine2,
		&s.TaxID, &s.DefaultDescription, &s.DefaultUnitPrice,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return invoice.Supplier{}, invoice.ErrSupplierNotFound
		}
		return invoice.Supplier{}, fmt.Errorf("failed to get supplier %s: %w", id, err)
	}

	return s, nil
}

func (r *supplierRepository) List(ctx context.Context) ([]invoice.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address_line1, address_line2, tax_id, default_description, default_unit_price, created_at, updated_at
		FROM suppliers
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var result []invoice.Supplier
	for rows.Next() {
		var s invoice.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.AddressLine1, &s.AddressLine2,
			&s.TaxID, &s.DefaultDescription, &s.DefaultUnitPrice,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read supplier rows: %w", err)
	}

	return result, nil
}
