package http

import (
	"net/http"
	"time"

	"github.com/lengolf/backoffice-go/internal/domain/payroll"
	"github.com/lengolf/backoffice-go/internal/domain/timeclock"
	"github.com/lengolf/backoffice-go/internal/handler/http/response"
	"github.com/lengolf/backoffice-go/internal/pkg/validator"
)

type TimeEntryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type timeEntryHandlerImpl struct {
	store timeclock.Store
	loc   *time.Location
}

func NewTimeEntryHandler(store timeclock.Store, loc *time.Location) TimeEntryHandler {
	return &timeEntryHandlerImpl{store: store, loc: loc}
}

func (h *timeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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
	from, to := period.Start(h.loc), period.End(h.loc)

	var entries []timeclock.TimeEntry
	if staffID := r.URL.Query().Get("staff_id"); staffID != "" {
		entries, err = h.store.ListRangeByStaff(r.Context(), staffID, from, to)
	} else {
		entries, err = h.store.ListRange(r.Context(), from, to)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]timeclock.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, timeclock.ToTimeEntryResponse(e))
	}
	response.Success(w, out)
}
