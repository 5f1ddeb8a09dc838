package service

import (
	"github.com/gillani-market/shoprent/internal/config"
	"github.com/gillani-market/shoprent/internal/logger"
	"github.com/gillani-market/shoprent/internal/store"
)

// Services aggregates every domain service behind one dependency-injected
// handle passed to the HTTP layer.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	RentService    RentService
	PaymentService PaymentService
	ReportService  ReportService
}

// NewServices wires every service to the repositories and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.Users, cfg.App, logger),
		UserService:    NewUserService(storages.Users, cfg.App, logger),
		RentService:    NewRentService(storages.Rents, storages.Users, logger),
		PaymentService: NewPaymentService(storages.Payments, storages.Users, logger),
		ReportService:  NewReportService(storages.Users, storages.Payments, logger),
	}
}
