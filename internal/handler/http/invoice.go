package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	domain "github.com/lengolf/backoffice-go/internal/domain/invoice"
	"github.com/lengolf/backoffice-go/internal/handler/http/response"
	"github.com/lengolf/backoffice-go/internal/service/invoice"
)

type InvoiceHandler interface {
	// Suppliers
	CreateSupplier(w http.ResponseWriter, r *http.Request)
	ListSuppliers(w http.ResponseWriter, r *http.Request)

	// Invoices
	CreateInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	GetDefaults(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService *invoice.InvoiceServiceImpl
}

func NewInvoiceHandler(invoiceService *invoice.InvoiceServiceImpl) InvoiceHandler {
	return &invoiceHandlerImpl{invoiceService: invoiceService}
}

// ========== SUPPLIERS ==========

func (h *invoiceHandlerImpl) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invoiceService.CreateSupplier(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Supplier created", result)
}

func (h *invoiceHandlerImpl) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	result, err := h.invoiceService.ListSuppliers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== INVOICES ==========

func (h *invoiceHandlerImpl) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invoiceService.CreateInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created", result)
}

func (h *invoiceHandlerImpl) GetDefaults(w http.ResponseWriter, r *http.Request) {
	result, err := h.invoiceService.InvoiceDefaults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	result, err := h.invoiceService.ListRecentInvoices(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
