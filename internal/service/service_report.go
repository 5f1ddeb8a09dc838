package service

import (
	"context"
	"time"

	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/models"
)

// recentPaymentsLimit is how many newest payments each tenant record
// carries in addition to the full list.
const recentPaymentsLimit = 5

// reportService is the concrete implementation of ReportService: the
// composite read joining all tenants with all their payments.
//
// The scan is O(tenants × payments-per-tenant) with one payments query per
// tenant and no caching; acceptable at the scale of one market building.
type reportService struct {
	userRepository    store.UserRepository
	paymentRepository store.PaymentRepository
	logger            *logger.Logger
}

// NewReportService constructs a ReportService wired to the given
// repositories.
func NewReportService(userRepository store.UserRepository, paymentRepository store.PaymentRepository, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository:    userRepository,
		paymentRepository: paymentRepository,
		logger:            logger,
	}
}

// Master loads all non-admin users and each user's payments, newest first,
// then assembles the per-tenant records and the global summary.
func (s *reportService) Master(ctx context.Context) (models.MasterReport, error) {
	log := logger.FromContext(ctx)

	tenants, err := s.userRepository.List(ctx, models.UserFilter{Role: models.RoleUser})
	if err != nil {
		return models.MasterReport{}, err
	}

	now := time.Now()
	report := models.MasterReport{
		Tenants: make([]models.TenantReport, 0, len(tenants)),
	}

	for _, tenant := range tenants {
		payments, err := s.paymentRepository.ListByUser(ctx, tenant.ID)
		if err != nil {
			log.Err(err).Str("userID", tenant.ID).Msg("loading tenant payments for master report failed")
			return models.MasterReport{}, err
		}

		report.Tenants = append(report.Tenants, buildTenantReport(tenant, payments, now))
	}

	report.Summary = buildMasterSummary(report.Tenants)

	return report, nil
}

// monthsElapsed estimates the whole months since creation as
// floor(days/30), never less than one. A placeholder heuristic, not a
// billing calendar.
func monthsElapsed(createdAt, now time.Time) int {
	days := int(now.Sub(createdAt).Hours() / 24)
	months := days / 30
	if months < 1 {
		months = 1
	}
	return months
}

// buildTenantReport partitions one tenant's payments by status (newest
// first on input) and derives the naive total-due and balance figures.
// Pure; extracted for testability.
func buildTenantReport(tenant models.User, payments []models.Payment, now time.Time) models.TenantReport {
	report := models.TenantReport{
		ID:          tenant.ID,
		Name:        tenant.Name,
		Email:       tenant.Email,
		Phone:       tenant.Phone,
		ShopName:    tenant.ShopName,
		MonthlyRent: tenant.MonthlyRent,
		DueDay:      tenant.DueDay,
		Status:      tenant.Status,
		CreatedAt:   tenant.CreatedAt,
		Payments:    payments,
	}

	for _, payment := range payments {
		switch payment.Status {
		case models.PaymentVerified:
			report.PaidCount++
			report.TotalPaid += payment.Amount
		case models.PaymentPending:
			report.PendingCount++
			report.TotalPending += payment.Amount
		case models.PaymentRejected:
			report.RejectedCount++
			report.TotalRejected += payment.Amount
		}
	}

	report.MonthsElapsed = monthsElapsed(tenant.CreatedAt, now)
	report.TotalDue = int64(report.MonthsElapsed) * tenant.MonthlyRent
	report.Balance = report.TotalDue - report.TotalPaid

	recent := payments
	if len(recent) > recentPaymentsLimit {
		recent = recent[:recentPaymentsLimit]
	}
	report.RecentPayments = recent

	return report
}

// buildMasterSummary rolls the per-tenant records up into the global
// summary. Balances are clamped to zero before summing into the
// outstanding figure. Pure; extracted for testability.
func buildMasterSummary(tenants []models.TenantReport) models.MasterSummary {
	summary := models.MasterSummary{
		TotalTenants: len(tenants),
	}

	for _, tenant := range tenants {
		if tenant.Status == models.UserActive {
			summary.ActiveTenants++
		} else {
			summary.InactiveTenants++
		}

		summary.TotalPaid += tenant.TotalPaid
		summary.TotalPending += tenant.TotalPending
		if tenant.Balance > 0 {
			summary.TotalOutstanding += tenant.Balance
		}

		summary.VerifiedCount += tenant.PaidCount
		summary.PendingCount += tenant.PendingCount
		summary.RejectedCount += tenant.RejectedCount
	}

	return summary
}
