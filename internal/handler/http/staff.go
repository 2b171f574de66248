package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lengolf/backoffice-go/internal/domain/staff"
	"github.com/lengolf/backoffice-go/internal/handler/http/response"
)

type StaffHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type staffHandlerImpl struct {
	staffRepo staff.Repository
}

func NewStaffHandler(staffRepo staff.Repository) StaffHandler {
	return &staffHandlerImpl{staffRepo: staffRepo}
}

func (h *staffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.staffRepo.ListActive(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		out = append(out, staff.ToStaffResponse(m))
	}
	response.Success(w, out)
}

func (h *staffHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	member, err := h.staffRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, staff.ToStaffResponse(member))
}
