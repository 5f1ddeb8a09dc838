package store

import (
	"context"

	"github.com/gillani-market/shoprent/models"
)

// UserRepository is the data-access contract for user accounts.
//
// Read methods never populate PasswordHash except GetByEmailWithPassword,
// which exists solely for the credential check during login and password
// change.
type UserRepository interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	List(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmailWithPassword(ctx context.Context, email string) (models.User, error)
	Update(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// RentRepository is the data-access contract for rent records.
// Listings resolve the reduced owner projection and order newest period
// first.
type RentRepository interface {
	List(ctx context.Context) ([]models.Rent, error)
	ListByUser(ctx context.Context, userID string) ([]models.Rent, error)
	ListByPeriod(ctx context.Context, period string) ([]models.Rent, error)
	GetByID(ctx context.Context, id string) (models.Rent, error)
	Update(ctx context.Context, rent models.Rent) (models.Rent, error)
}

// PaymentRepository is the data-access contract for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment models.Payment) (models.Payment, error)
	List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Payment, error)
	GetByID(ctx context.Context, id string) (models.Payment, error)
	SetVerification(ctx context.Context, payment models.Payment) (models.Payment, error)
	Delete(ctx context.Context, id string) error
}
