package http

import (
	"context"

	"github.com/gillani-market/shoprent/internal/config"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/service"
	"github.com/gillani-market/shoprent/models"
)

// fakeAuthService implements service.AuthService with overridable function
// fields so router tests can steer the middleware without a database.
type fakeAuthService struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	updatePasswordFn func(ctx context.Context, acting models.User, req models.UpdatePasswordRequest) (models.User, error)
	identityFn       func(ctx context.Context, tokenString string) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{}, service.ErrInvalidDataProvided
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return models.User{}, service.ErrWrongPassword
}

func (f *fakeAuthService) UpdatePassword(ctx context.Context, acting models.User, req models.UpdatePasswordRequest) (models.User, error) {
	if f.updatePasswordFn != nil {
		return f.updatePasswordFn(ctx, acting, req)
	}
	return acting, nil
}

func (f *fakeAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "signed-token-" + user.ID, UserID: user.ID}, nil
}

func (f *fakeAuthService) Identity(ctx context.Context, tokenString string) (models.User, error) {
	if f.identityFn != nil {
		return f.identityFn(ctx, tokenString)
	}
	return models.User{}, service.ErrTokenIsExpiredOrInvalid
}

func (f *fakeAuthService) EnsureSeedAdmin(_ context.Context, _ config.Seed) error {
	return nil
}

type fakeUserService struct {
	listFn   func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	createFn func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	updateFn func(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error)
	deleteFn func(ctx context.Context, acting models.User, id string) error
}

func (f *fakeUserService) List(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeUserService) Get(ctx context.Context, id string) (models.User, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return models.User{ID: id}, nil
}

func (f *fakeUserService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return models.User{}, nil
}

func (f *fakeUserService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (models.User, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}
	return models.User{ID: id}, nil
}

func (f *fakeUserService) Delete(ctx context.Context, acting models.User, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, acting, id)
	}
	return nil
}

type fakeRentService struct {
	listFn       func(ctx context.Context) ([]models.Rent, error)
	listByUserFn func(ctx context.Context, acting models.User, userID string) ([]models.Rent, error)
	updateFn     func(ctx context.Context, id string, req models.UpdateRentRequest) (models.Rent, error)
	statsFn      func(ctx context.Context) (models.RentStats, error)
}

func (f *fakeRentService) List(ctx context.Context) ([]models.Rent, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeRentService) ListByUser(ctx context.Context, acting models.User, userID string) ([]models.Rent, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, acting, userID)
	}
	if acting.Role != models.RoleAdmin && acting.ID != userID {
		return nil, service.ErrNotOwner
	}
	return nil, nil
}

func (f *fakeRentService) Update(ctx context.Context, id string, req models.UpdateRentRequest) (models.Rent, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, req)
	}
	return models.Rent{ID: id}, nil
}

func (f *fakeRentService) Stats(ctx context.Context) (models.RentStats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx)
	}
	return models.RentStats{}, nil
}

type fakePaymentService struct {
	listFn          func(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error)
	listByUserFn    func(ctx context.Context, acting models.User, userID string) ([]models.Payment, error)
	billSummaryFn   func(ctx context.Context, acting models.User, userID string) (models.BillSummary, error)
	createManualFn  func(ctx context.Context, acting models.User, req models.ManualPaymentRequest) (models.Payment, error)
	uploadReceiptFn func(ctx context.Context, upload models.ReceiptUpload) (models.Payment, error)
	verifyFn        func(ctx context.Context, acting models.User, id string, verdict models.PaymentStatus) (models.Payment, error)
	deleteFn        func(ctx context.Context, id string) error
	statsFn         func(ctx context.Context) (models.PaymentStats, error)
}

func (f *fakePaymentService) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, int, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, 0, nil
}

func (f *fakePaymentService) ListByUser(ctx context.Context, acting models.User, userID string) ([]models.Payment, error) {
	if f.listByUserFn != nil {
		return f.listByUserFn(ctx, acting, userID)
	}
	if acting.Role != models.RoleAdmin && acting.ID != userID {
		return nil, service.ErrNotOwner
	}
	return nil, nil
}

func (f *fakePaymentService) BillSummary(ctx context.Context, acting models.User, userID string) (models.BillSummary, error) {
	if f.billSummaryFn != nil {
		return f.billSummaryFn(ctx, acting, userID)
	}
	return models.BillSummary{}, nil
}

func (f *fakePaymentService) CreateManual(ctx context.Context, acting models.User, req models.ManualPaymentRequest) (models.Payment, error) {
	if f.createManualFn != nil {
		return f.createManualFn(ctx, acting, req)
	}
	return models.Payment{}, nil
}

func (f *fakePaymentService) UploadReceipt(ctx context.Context, upload models.ReceiptUpload) (models.Payment, error) {
	if f.uploadReceiptFn != nil {
		return f.uploadReceiptFn(ctx, upload)
	}
	return models.Payment{
		ID:          "pay-1",
		UserID:      upload.UserID,
		Amount:      upload.Amount,
		Month:       upload.Month,
		ReceiptFile: upload.ReceiptFile,
		Status:      models.PaymentPending,
	}, nil
}

func (f *fakePaymentService) Verify(ctx context.Context, acting models.User, id string, verdict models.PaymentStatus) (models.Payment, error) {
	if f.verifyFn != nil {
		return f.verifyFn(ctx, acting, id, verdict)
	}
	return models.Payment{ID: id, Status: verdict}, nil
}

func (f *fakePaymentService) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakePaymentService) Stats(ctx context.Context) (models.PaymentStats, error) {
	if f.statsFn != nil {
		return f.statsFn(ctx)
	}
	return models.PaymentStats{}, nil
}

type fakeReportService struct {
	masterFn func(ctx context.Context) (models.MasterReport, error)
}

func (f *fakeReportService) Master(ctx context.Context) (models.MasterReport, error) {
	if f.masterFn != nil {
		return f.masterFn(ctx)
	}
	return models.MasterReport{}, nil
}

// identities maps bearer tokens to users for the authentication middleware.
type identities map[string]models.User

// newTestHandler builds a Handler on fake services. The auth service
// resolves tokens through the given identity map.
func newTestHandler(ids identities, overrides *service.Services) *Handler {
	services := &service.Services{
		AuthService: &fakeAuthService{
			identityFn: func(_ context.Context, tokenString string) (models.User, error) {
				if user, ok := ids[tokenString]; ok {
					return user, nil
				}
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			},
		},
		UserService:    &fakeUserService{},
		RentService:    &fakeRentService{},
		PaymentService: &fakePaymentService{},
		ReportService:  &fakeReportService{},
	}
	if overrides != nil {
		if overrides.AuthService != nil {
			services.AuthService = overrides.AuthService
		}
		if overrides.UserService != nil {
			services.UserService = overrides.UserService
		}
		if overrides.RentService != nil {
			services.RentService = overrides.RentService
		}
		if overrides.PaymentService != nil {
			services.PaymentService = overrides.PaymentService
		}
		if overrides.ReportService != nil {
			services.ReportService = overrides.ReportService
		}
	}

	cfg := &config.StructuredConfig{}
	cfg.Storage.Files.UploadsDir = "testdata-uploads"

	return NewHandler(services, nil, cfg, logger.Nop())
}
