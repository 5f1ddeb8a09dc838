package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/internal/utils"
	"github.com/gillani-market/shoprent/models"
)

// paymentService is the concrete implementation of PaymentService.
type paymentService struct {
	paymentRepository store.PaymentRepository
	userRepository    store.UserRepository
	logger            *logger.Logger
}

// NewPaymentService constructs a PaymentService wired to the given
// repositories.
func NewPaymentService(paymentRepository store.PaymentRepository, userRepository store.UserRepository, logger *logger.Logger) PaymentService {
	return &paymentService{
		paymentRepository: paymentRepository,
		userRepository:    userRepository,
		logger:            logger,
	}
}

// List retrieves one page of payments matching the filter, newest first,
// together with the total number of matching records.
func (s *paymentService) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, filter.Status)
	}

	return s.paymentRepository.List(ctx, filter)
}

// ListByUser retrieves the payments of one user, newest first. Non-admin
// callers may only target themselves; a mismatch returns ErrNotOwner.
func (s *paymentService) ListByUser(ctx context.Context, acting models.User, userID string) ([]models.Payment, error) {
	if acting.Role != models.RoleAdmin && acting.ID != userID {
		return nil, ErrNotOwner
	}

	return s.paymentRepository.ListByUser(ctx, userID)
}

// BillSummary computes the financial snapshot of one user: verified and
// pending payment totals alongside the rent terms. Non-admin callers may
// only target themselves.
func (s *paymentService) BillSummary(ctx context.Context, acting models.User, userID string) (models.BillSummary, error) {
	if acting.Role != models.RoleAdmin && acting.ID != userID {
		return models.BillSummary{}, ErrNotOwner
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return models.BillSummary{}, err
	}

	payments, err := s.paymentRepository.ListByUser(ctx, userID)
	if err != nil {
		return models.BillSummary{}, err
	}

	summary := models.BillSummary{
		MonthlyRent: user.MonthlyRent,
		DueDay:      user.DueDay,
		ShopName:    user.ShopName,
	}
	for _, payment := range payments {
		switch payment.Status {
		case models.PaymentVerified:
			summary.TotalPaid += payment.Amount
		case models.PaymentPending:
			summary.TotalPending += payment.Amount
		}
	}

	return summary, nil
}

// CreateManual records a payment entered by an admin. Manual entries are
// auto-verified with the acting admin as verifier. An unknown target user
// surfaces as store.ErrUserNotFound.
func (s *paymentService) CreateManual(ctx context.Context, acting models.User, req models.ManualPaymentRequest) (models.Payment, error) {
	log := logger.FromContext(ctx)

	if req.UserID == "" || req.Month == "" {
		return models.Payment{}, ErrInvalidDataProvided
	}
	if req.Amount < 0 {
		return models.Payment{}, fmt.Errorf("%w: amount must be non-negative", ErrInvalidDataProvided)
	}

	method := req.Method
	if method == "" {
		method = models.MethodCash
	}
	if !method.Valid() {
		return models.Payment{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidDataProvided, method)
	}

	if _, err := s.userRepository.GetByID(ctx, req.UserID); err != nil {
		return models.Payment{}, err
	}

	now := time.Now()
	payment := models.Payment{
		ID:         utils.NewID(),
		UserID:     req.UserID,
		Amount:     req.Amount,
		Month:      req.Month,
		Method:     method,
		Notes:      req.Notes,
		Status:     models.PaymentVerified,
		VerifiedBy: acting.ID,
		VerifiedAt: &now,
	}

	created, err := s.paymentRepository.Create(ctx, payment)
	if err != nil {
		log.Err(err).Str("userID", req.UserID).Msg("manual payment creation ended with error")
		return models.Payment{}, fmt.Errorf("manual payment creation ended with error: %w", err)
	}

	return created, nil
}

// UploadReceipt records a tenant-submitted payment claim bound to the
// stored receipt file. The payment starts pending until an admin verdict.
func (s *paymentService) UploadReceipt(ctx context.Context, upload models.ReceiptUpload) (models.Payment, error) {
	log := logger.FromContext(ctx)

	if upload.ReceiptFile == "" {
		return models.Payment{}, ErrMissingReceipt
	}
	if upload.Month == "" {
		return models.Payment{}, fmt.Errorf("%w: month is required", ErrInvalidDataProvided)
	}
	if upload.Amount < 0 {
		return models.Payment{}, fmt.Errorf("%w: amount must be non-negative", ErrInvalidDataProvided)
	}

	payment := models.Payment{
		ID:          utils.NewID(),
		UserID:      upload.UserID,
		Amount:      upload.Amount,
		Month:       upload.Month,
		Method:      models.MethodCash,
		ReceiptFile: upload.ReceiptFile,
		Notes:       upload.Notes,
		Status:      models.PaymentPending,
	}

	created, err := s.paymentRepository.Create(ctx, payment)
	if err != nil {
		log.Err(err).Str("userID", upload.UserID).Msg("receipt upload ended with error")
		return models.Payment{}, fmt.Errorf("receipt upload ended with error: %w", err)
	}

	return created, nil
}

// Verify applies an admin verdict to a payment. Only verified and rejected
// are accepted; anything else returns ErrInvalidVerdict before any data
// access. Re-applying the same verdict simply refreshes the verifier fields.
func (s *paymentService) Verify(ctx context.Context, acting models.User, id string, verdict models.PaymentStatus) (models.Payment, error) {
	log := logger.FromContext(ctx)

	if !verdict.IsVerdict() {
		return models.Payment{}, ErrInvalidVerdict
	}

	payment, err := s.paymentRepository.GetByID(ctx, id)
	if err != nil {
		return models.Payment{}, err
	}

	now := time.Now()
	payment.Status = verdict
	payment.VerifiedBy = acting.ID
	payment.VerifiedAt = &now

	updated, err := s.paymentRepository.SetVerification(ctx, payment)
	if err != nil {
		log.Err(err).Str("id", id).Msg("payment verification ended with error")
		return models.Payment{}, fmt.Errorf("payment verification ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a payment record. Returns store.ErrPaymentNotFound for an
// unknown id.
func (s *paymentService) Delete(ctx context.Context, id string) error {
	return s.paymentRepository.Delete(ctx, id)
}

// Stats scans all payments, partitions them by status, and computes the
// current-month collected figure using the "January 2006" month label.
func (s *paymentService) Stats(ctx context.Context) (models.PaymentStats, error) {
	payments, err := s.paymentRepository.ListAll(ctx)
	if err != nil {
		return models.PaymentStats{}, err
	}

	return buildPaymentStats(payments, time.Now()), nil
}

// buildPaymentStats partitions payments by status and sums amounts per
// partition. Pure; extracted for testability.
func buildPaymentStats(payments []models.Payment, now time.Time) models.PaymentStats {
	currentMonth := now.Format("January 2006")

	var stats models.PaymentStats
	for _, payment := range payments {
		switch payment.Status {
		case models.PaymentVerified:
			stats.VerifiedCount++
			stats.TotalCollected += payment.Amount
			if payment.Month == currentMonth {
				stats.MonthlyCollected += payment.Amount
			}
		case models.PaymentPending:
			stats.PendingCount++
			stats.TotalPending += payment.Amount
		case models.PaymentRejected:
			stats.RejectedCount++
		}
	}

	return stats
}
