package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/internal/utils"
	"github.com/gillani-market/shoprent/models"
)

// ListRent handles GET /api/rent: every rent record, newest period first.
func (h *Handler) ListRent(w http.ResponseWriter, r *http.Request) {
	rents, err := h.services.RentService.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeList(w, r, len(rents), rents)
}

// RentStats handles GET /api/rent/stats: the admin dashboard rent breakdown.
func (h *Handler) RentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.RentService.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, r, http.StatusOK, stats)
}

// ListRentByUser handles GET /api/rent/user/{userId}. Tenants may only read
// their own records; admins may read anyone's.
func (h *Handler) ListRentByUser(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	rents, err := h.services.RentService.ListByUser(r.Context(), acting, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeList(w, r, len(rents), rents)
}

// UpdateRent handles PUT /api/rent/{id}: partial update of amount and status.
func (h *Handler) UpdateRent(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("decoding update rent request: %w", service.ErrInvalidDataProvided))
		return
	}

	rent, err := h.services.RentService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, r, http.StatusOK, rent)
}
