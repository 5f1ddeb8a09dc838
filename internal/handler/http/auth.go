package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/internal/utils"
	"github.com/gillani-market/shoprent/models"
)

// Register handles POST /api/auth/register: creates a tenant account and
// returns a signed token alongside the created user.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("decoding register request: %w", service.ErrInvalidDataProvided))
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusCreated, user)
}

// Login handles POST /api/auth/login: verifies credentials and returns a
// signed token alongside the authenticated user.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("decoding login request: %w", service.ErrInvalidDataProvided))
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusOK, user)
}

// Me handles GET /api/auth/me: echoes the acting user resolved by the
// authentication middleware.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}
	h.writeData(w, r, http.StatusOK, acting)
}

// UpdatePassword handles PUT /api/auth/updatepassword: re-verifies the
// current password before setting the new one, then rotates the token.
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("decoding update password request: %w", service.ErrInvalidDataProvided))
		return
	}

	user, err := h.services.AuthService.UpdatePassword(r.Context(), acting, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusOK, user)
}

func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, statusCode int, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, r, statusCode, models.AuthResponse{Token: token.SignedString, User: user})
}
