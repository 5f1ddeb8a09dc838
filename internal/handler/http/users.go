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

// ListUsers handles GET /api/users with optional role, status and search
// query filters.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.UserFilter{
		Role:   models.Role(query.Get("role")),
		Status: models.UserStatus(query.Get("status")),
		Search: query.Get("search"),
	}

	users, err := h.services.UserService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeList(w, r, len(users), users)
}

// GetUser handles GET /api/users/{id}.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, r, http.StatusOK, user)
}

// CreateUser handles POST /api/users: an admin creates a tenant (or another
// admin) with server-side defaults for omitted password and due day.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("decoding create user request: %w", service.ErrInvalidDataProvided))
		return
	}

	user, err := h.services.UserService.Create(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	created := models.CreatedUser{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		ShopName: user.ShopName,
	}
	h.writeMessage(w, r, http.StatusCreated, "User created successfully", created)
}

// UpdateUser handles PUT /api/users/{id}: partial update, nil fields stay.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("decoding update user request: %w", service.ErrInvalidDataProvided))
		return
	}

	user, err := h.services.UserService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, r, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/{id}. Admins cannot delete their own
// account.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), acting, chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeMessage(w, r, http.StatusOK, "User deleted successfully", nil)
}

// MasterData handles GET /api/users/master (and its /master-data alias): the
// admin-only aggregation
// joining every tenant with their full payment history and derived balances.
func (h *Handler) MasterData(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.ReportService.Master(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, r, http.StatusOK, report)
}
