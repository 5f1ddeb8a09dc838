package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/models"
)

// rentService is the concrete implementation of RentService.
//
// Rent records enter the system externally; this service only exposes
// listing, admin edits, and the current-period statistics scan.
type rentService struct {
	rentRepository store.RentRepository
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewRentService constructs a RentService wired to the given repositories.
func NewRentService(rentRepository store.RentRepository, userRepository store.UserRepository, logger *logger.Logger) RentService {
	return &rentService{
		rentRepository: rentRepository,
		userRepository: userRepository,
		logger:         logger,
	}
}

// List retrieves all rent records with owner projections, newest period
// first.
func (s *rentService) List(ctx context.Context) ([]models.Rent, error) {
	return s.rentRepository.List(ctx)
}

// ListByUser retrieves the rent records of one user. Non-admin callers may
// only target themselves; a mismatch returns ErrNotOwner.
func (s *rentService) ListByUser(ctx context.Context, acting models.User, userID string) ([]models.Rent, error) {
	if acting.Role != models.RoleAdmin && acting.ID != userID {
		return nil, ErrNotOwner
	}

	return s.rentRepository.ListByUser(ctx, userID)
}

// Update applies the non-nil amount/status fields of req to the rent
// record. Returns store.ErrRentNotFound for an unknown id.
func (s *rentService) Update(ctx context.Context, id string, req models.UpdateRentRequest) (models.Rent, error) {
	log := logger.FromContext(ctx)

	rent, err := s.rentRepository.GetByID(ctx, id)
	if err != nil {
		return models.Rent{}, err
	}

	if req.Amount != nil {
		if *req.Amount < 0 {
			return models.Rent{}, fmt.Errorf("%w: amount must be non-negative", ErrInvalidDataProvided)
		}
		rent.Amount = *req.Amount
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return models.Rent{}, fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, *req.Status)
		}
		rent.Status = *req.Status
	}

	updated, err := s.rentRepository.Update(ctx, rent)
	if err != nil {
		log.Err(err).Str("id", id).Msg("rent update ended with error")
		return models.Rent{}, fmt.Errorf("rent update ended with error: %w", err)
	}

	return updated, nil
}

// Stats scans all tenants and the current "YYYY-MM" period's rent records,
// partitioning the latter by status.
func (s *rentService) Stats(ctx context.Context) (models.RentStats, error) {
	tenants, err := s.userRepository.List(ctx, models.UserFilter{Role: models.RoleUser})
	if err != nil {
		return models.RentStats{}, err
	}

	currentPeriod := time.Now().Format("2006-01")
	rents, err := s.rentRepository.ListByPeriod(ctx, currentPeriod)
	if err != nil {
		return models.RentStats{}, err
	}

	return buildRentStats(tenants, rents), nil
}

// buildRentStats partitions the current period's rents by status and sums
// amounts per partition. Pure; extracted for testability.
func buildRentStats(tenants []models.User, rents []models.Rent) models.RentStats {
	stats := models.RentStats{
		TotalUsers: len(tenants),
	}

	for _, tenant := range tenants {
		if tenant.Status == models.UserActive {
			stats.ActiveUsers++
		}
		stats.TotalRent += tenant.MonthlyRent
	}

	for _, rent := range rents {
		switch rent.Status {
		case models.RentPaid:
			stats.PaidCount++
			stats.TotalCollected += rent.Amount
		case models.RentPending:
			stats.PendingCount++
			stats.TotalPending += rent.Amount
		case models.RentOverdue:
			stats.OverdueCount++
		}
	}

	return stats
}
