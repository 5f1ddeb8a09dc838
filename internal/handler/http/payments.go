package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/internal/utils"
	"github.com/gillani-market/shoprent/models"
)

const maxReceiptSize = 10 << 20 // 10 MiB

// ListPayments handles GET /api/payments with optional status and month
// filters plus page/limit pagination.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.PaymentFilter{
		Status: models.PaymentStatus(query.Get("status")),
		Month:  query.Get("month"),
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	payments, total, err := h.services.PaymentService.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	pages := (total + filter.Limit - 1) / filter.Limit
	h.respond(w, r, http.StatusOK, envelope{
		"success": true,
		"count":   len(payments),
		"total":   total,
		"page":    filter.Page,
		"pages":   pages,
		"data":    payments,
	})
}

// PaymentStats handles GET /api/payments/stats.
func (h *Handler) PaymentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.PaymentService.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeData(w, r, http.StatusOK, stats)
}

// ListPaymentsByUser handles GET /api/payments/user/{userId}. Tenants may
// only read their own history; admins may read anyone's.
func (h *Handler) ListPaymentsByUser(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	payments, err := h.services.PaymentService.ListByUser(r.Context(), acting, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeList(w, r, len(payments), payments)
}

// BillSummary handles GET /api/payments/bill-summary/{userId}: the per-user
// rent and payment snapshot shown on the tenant dashboard.
func (h *Handler) BillSummary(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	summary, err := h.services.PaymentService.BillSummary(r.Context(), acting, chi.URLParam(r, "userId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeData(w, r, http.StatusOK, summary)
}

// CreateManualPayment handles POST /api/payments/manual: an admin records an
// offline payment, which is stored already verified.
func (h *Handler) CreateManualPayment(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.ManualPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("decoding manual payment request: %w", service.ErrInvalidDataProvided))
		return
	}

	payment, err := h.services.PaymentService.CreateManual(r.Context(), acting, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeMessage(w, r, http.StatusCreated, "Payment recorded successfully", payment)
}

// UploadReceipt handles POST /api/payments/upload-receipt: a tenant submits a
// receipt image or PDF as multipart form data. The resulting payment awaits
// admin verification. Admins may submit on behalf of a tenant via the userId
// form field.
func (h *Handler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptSize)
	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		h.writeError(w, r, fmt.Errorf("parsing multipart form: %w", service.ErrInvalidDataProvided))
		return
	}

	upload := models.ReceiptUpload{
		UserID: acting.ID,
		Month:  r.FormValue("month"),
		Notes:  r.FormValue("notes"),
	}
	if userID := r.FormValue("userId"); userID != "" && acting.Role == models.RoleAdmin {
		upload.UserID = userID
	}
	amount, err := strconv.ParseInt(r.FormValue("amount"), 10, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("parsing amount: %w", service.ErrInvalidDataProvided))
		return
	}
	upload.Amount = amount

	upload.ReceiptFile, err = h.saveReceiptFile(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	payment, err := h.services.PaymentService.UploadReceipt(r.Context(), upload)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeMessage(w, r, http.StatusCreated, "Receipt uploaded successfully", payment)
}

// saveReceiptFile stores the "receipt" form file under the uploads directory
// with a generated name and returns the public path recorded on the payment.
func (h *Handler) saveReceiptFile(r *http.Request) (string, error) {
	file, header, err := r.FormFile("receipt")
	if err != nil {
		return "", service.ErrMissingReceipt
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".pdf":
	default:
		return "", fmt.Errorf("unsupported receipt file type %q: %w", ext, service.ErrInvalidDataProvided)
	}

	if err = os.MkdirAll(h.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating uploads directory: %w", err)
	}

	name := "receipt-" + utils.NewID() + ext
	dst, err := os.Create(filepath.Join(h.uploadsDir, name))
	if err != nil {
		return "", fmt.Errorf("creating receipt file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("writing receipt file: %w", err)
	}

	return "uploads/" + name, nil
}

// VerifyPayment handles PUT /api/payments/{id}/verify: an admin marks a
// pending payment verified or rejected. Re-verifying is allowed and simply
// overwrites the previous verdict.
func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	acting, ok := utils.GetActingUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}

	var req models.VerifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("decoding verify payment request: %w", service.ErrInvalidDataProvided))
		return
	}

	payment, err := h.services.PaymentService.Verify(r.Context(), acting, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeMessage(w, r, http.StatusOK, fmt.Sprintf("Payment %s successfully", payment.Status), payment)
}

// DeletePayment handles DELETE /api/payments/{id}.
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PaymentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeMessage(w, r, http.StatusOK, "Payment deleted successfully", nil)
}
