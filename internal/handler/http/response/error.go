package response

import (
	"errors"
	"net/http"

	"github.com/lengolf/backoffice-go/internal/domain/invoice"
	"github.com/lengolf/backoffice-go/internal/domain/payroll"
	"github.com/lengolf/backoffice-go/internal/domain/staff"
	"github.com/lengolf/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Typed payroll errors carry their own machine code. Retryable
	// failures (storage outages) map to 503 so callers know to re-issue
	// the request; data errors map to 422 for an operator to fix.
	var payrollErr *payroll.Error
	if errors.As(err, &payrollErr) {
		status := http.StatusUnprocessableEntity
		if payrollErr.Retryable {
			status = http.StatusServiceUnavailable
		}
		DomainError(w, status, payrollErr.Code, payrollErr.Message, payrollErr.Retryable)
		return
	}

	switch {
	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")

	// Invoice domain errors
	case errors.Is(err, invoice.ErrSupplierNotFound):
		NotFound(w, "Supplier not found")
	case errors.Is(err, invoice.ErrSupplierTaxIDUsed):
		Conflict(w, "Supplier tax id already registered")
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrNoValidLineItems):
		BadRequest(w, "Invoice has no valid line items", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
