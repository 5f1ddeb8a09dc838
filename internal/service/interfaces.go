package service

import (
	"context"

	"github.com/gillani-market/shoprent/internal/config"
	"github.com/gillani-market/shoprent/models"
)

// AuthService handles registration, credential verification, token
// lifecycle, and identity resolution for authenticated requests.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	UpdatePassword(ctx context.Context, acting models.User, req models.UpdatePasswordRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Identity verifies the bearer token, loads the subject identity with
	// the password excluded, and enforces the account-active constraint.
	Identity(ctx context.Context, tokenString string) (models.User, error)

	// EnsureSeedAdmin creates the bootstrap admin account unless a user
	// with the configured email already exists. A zero seed is a no-op.
	EnsureSeedAdmin(ctx context.Context, seed config.Seed) error
}

// UserService handles admin-side user management.
type UserService interface {
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)
	Delete(ctx context.Context, acting models.User, id string) error
}

// RentService handles rent listings, updates, and statistics.
type RentService interface {
	List(ctx context.Context) ([]models.Rent, error)
	ListByUser(ctx context.Context, acting models.User, userID string) ([]models.Rent, error)
	Update(ctx context.Context, id string, req models.UpdateRentRequest) (models.Rent, error)
	Stats(ctx context.Context) (models.RentStats, error)
}

// PaymentService handles payment listings, creation, verification, and
// statistics.
type PaymentService interface {
	List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error)
	ListByUser(ctx context.Context, acting models.User, userID string) ([]models.Payment, error)
	BillSummary(ctx context.Context, acting models.User, userID string) (models.BillSummary, error)
	CreateManual(ctx context.Context, acting models.User, req models.ManualPaymentRequest) (models.Payment, error)
	UploadReceipt(ctx context.Context, upload models.ReceiptUpload) (models.Payment, error)
	Verify(ctx context.Context, acting models.User, id string, verdict models.PaymentStatus) (models.Payment, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (models.PaymentStats, error)
}

// ReportService produces the master report joining all tenants with all
// their payments.
type ReportService interface {
	Master(ctx context.Context) (models.MasterReport, error)
}
