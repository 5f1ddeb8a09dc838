package http

import (
	"errors"
	"net/http"

	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/internal/utils"
)

// envelope is the uniform response shape: {"success": bool, ...}.
type envelope map[string]any

// writeData responds with {"success": true, "data": ...}.
func (h *Handler) writeData(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	h.respond(w, r, statusCode, envelope{"success": true, "data": data})
}

// writeList responds with a collection payload carrying its element count.
func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, count int, data any) {
	h.respond(w, r, http.StatusOK, envelope{"success": true, "count": count, "data": data})
}

// writeMessage responds with {"success": true, "message": ...} and optional data.
func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, statusCode int, message string, data any) {
	body := envelope{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	h.respond(w, r, statusCode, body)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, statusCode int, body envelope) {
	if _, err := utils.WriteJSON(w, body, statusCode); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing response body")
	}
}

// writeError maps a domain error onto an HTTP status and the
// {"success": false, "message": ...} envelope.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := statusFromError(err)
	if statusCode == http.StatusInternalServerError {
		logger.FromRequest(r).Error().Err(err).Msg("internal error handling request")
	} else {
		logger.FromRequest(r).Debug().Err(err).Int("status", statusCode).Msg("request rejected")
	}
	h.respond(w, r, statusCode, envelope{"success": false, "message": err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided),
		errors.Is(err, service.ErrSelfDelete),
		errors.Is(err, service.ErrInvalidVerdict),
		errors.Is(err, service.ErrMissingReceipt),
		errors.Is(err, store.ErrEmailAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrTokenIsExpiredOrInvalid),
		errors.Is(err, ErrEmptyAuthorizationHeader),
		errors.Is(err, ErrInvalidAuthorizationHeader),
		errors.Is(err, ErrIdentityNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrAccountInactive),
		errors.Is(err, service.ErrNotOwner),
		errors.Is(err, ErrRoleNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrRentNotFound),
		errors.Is(err, store.ErrPaymentNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
