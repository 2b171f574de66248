package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lengolf/backoffice-go/internal/domain/payroll"
	"github.com/lengolf/backoffice-go/internal/handler/http/response"
	"github.com/lengolf/backoffice-go/internal/pkg/validator"
	"github.com/lengolf/backoffice-go/internal/service/settings"
)

type PayrollHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	GetPoolSettings(w http.ResponseWriter, r *http.Request)
	UpdatePoolSettings(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
	settings       *settings.Service
	loc            *time.Location
}

func NewPayrollHandler(payrollService payroll.Service, settingsSvc *settings.Service, loc *time.Location) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		settings:       settingsSvc,
		loc:            loc,
	}
}

// ========== CALCULATIONS ==========

func (h *payrollHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month is required (YYYY-MM)", nil)
		return
	}
	if !validator.IsValidMonth(month) {
		response.BadRequest(w, "Invalid month, want YYYY-MM", nil)
		return
	}

	period, err := payroll.ParsePeriod(month)
	if err != nil {
		response.HandleError(w, payroll.NewInvalidPeriod(month, err))
		return
	}

	results, err := h.payrollService.Calculate(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]payroll.CalculationResultResponse, 0, len(results))
	for _, res := range results {
		out = append(out, payroll.ToCalculationResponse(res))
	}
	response.Success(w, out)
}

// ========== POOL SETTINGS ==========

func (h *payrollHandlerImpl) GetPoolSettings(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().In(h.loc).Format("2006-01")
	} else if !validator.IsValidMonth(month) {
		response.BadRequest(w, "Invalid month, want YYYY-MM", nil)
		return
	}

	allowance, err := h.settings.DailyAllowance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	pool, err := h.settings.ServiceChargePool(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payroll.PoolSettingsResponse{
		DailyAllowance:    allowance,
		ServiceChargePool: pool,
		Month:             month,
	})
}

func (h *payrollHandlerImpl) UpdatePoolSettings(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePoolSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if req.DailyAllowance != nil {
		if err := h.settings.SetDailyAllowance(r.Context(), *req.DailyAllowance); err != nil {
			response.HandleError(w, err)
			return
		}
	}
	if req.ServiceChargePool != nil {
		if err := h.settings.SetServiceChargePool(r.Context(), req.Month, *req.ServiceChargePool); err != nil {
			response.HandleError(w, err)
			return
		}
	}

	response.Success(w, nil)
}
