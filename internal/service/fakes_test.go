package service

import (
	"context"

	"github.com/gillani-market/shoprent/internal/store"
	"github.com/gillani-market/shoprent/models"
)

// fakeUserRepository implements store.UserRepository with overridable
// function fields. Unset methods return the not-found sentinel.
type fakeUserRepository struct {
	createFn                 func(ctx context.Context, user models.User) (models.User, error)
	listFn                   func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	getByIDFn                func(ctx context.Context, id string) (models.User, error)
	getByEmailWithPasswordFn func(ctx context.Context, email string) (models.User, error)
	updateFn                 func(ctx context.Context, user models.User) (models.User, error)
	updatePasswordFn         func(ctx context.Context, id, passwordHash string) error
	deleteFn                 func(ctx context.Context, id string) error
}

func (f *fakeUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return user, nil
}

func (f *fakeUserRepository) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return models.User{}, store.ErrUserNotFound
}

func (f *fakeUserRepository) GetByEmailWithPassword(ctx context.Context, email string) (models.User, error) {
	if f.getByEmailWithPasswordFn != nil {
		return f.getByEmailWithPasswordFn(ctx, email)
	}
	return models.User{}, store.ErrUserNotFound
}

func (f *fakeUserRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, user)
	}
	return user, nil
}

func (f *fakeUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

// fakeRentRepository implements store.RentRepository with overridable
// function fields.
type fakeRentRepository struct {
	listFn         func(ctx context.Context) ([]models.Rent, error)
	listByUserFn   func(ctx context.Context, userID string) ([]models.Rent, error)
	listByPeriodFn func(ctx context.Context, period string) ([]models.Rent, error)
	getByIDFn      func(ctx context.Context, id string) (models.Rent, error)
	updateFn       func(ctx context.Context, rent models.Rent) (models.Rent, error)
}

func (f *fakeRentRepository) List(ctx context.Context) ([]models.Rent, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeRentRepository) ListByUser(ctx context.Context, userID string) ([]models.Rent, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRentRepository) ListByPeriod(ctx context.Context, period string) ([]models.Rent, error) {
	if f.listByPeriodFn != nil {
		return f.listByPeriodFn(ctx, period)
	}
	return nil, nil
}

func (f *fakeRentRepository) GetByID(ctx context.Context, id string) (models.Rent, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return models.Rent{}, store.ErrRentNotFound
}

func (f *fakeRentRepository) Update(ctx context.Context, rent models.Rent) (models.Rent, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, rent)
	}
	return rent, nil
}

// fakePaymentRepository implements store.PaymentRepository with overridable
// function fields.
type fakePaymentRepository struct {
	createFn          func(ctx context.Context, payment models.Payment) (models.Payment, error)
	listFn            func(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error)
	listAllFn         func(ctx context.Context) ([]models.Payment, error)
	listByUserFn      func(ctx context.Context, userID string) ([]models.Payment, error)
	getByIDFn         func(ctx context.Context, id string) (models.Payment, error)
	setVerificationFn func(ctx context.Context, payment models.Payment) (models.Payment, error)
	deleteFn          func(ctx context.Context, id string) error
}

func (f *fakePaymentRepository) Create(ctx context.Context, payment models.Payment) (models.Payment, error) {
	if f.createFn != nil {
		return f.createFn(ctx, payment)
	}
	return payment, nil
}

func (f *fakePaymentRepository) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakePaymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	if f.listAllFn != nil {
		return f.listAllFn(ctx)
	}
	return nil, nil
}

func (f *fakePaymentRepository) ListByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakePaymentRepository) GetByID(ctx context.Context, id string) (models.Payment, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return models.Payment{}, store.ErrPaymentNotFound
}

func (f *fakePaymentRepository) SetVerification(ctx context.Context, payment models.Payment) (models.Payment, error) {
	if f.setVerificationFn != nil {
		return f.setVerificationFn(ctx, payment)
	}
	return payment, nil
}

func (f *fakePaymentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}
