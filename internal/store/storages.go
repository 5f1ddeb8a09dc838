package store

import (
	"github.com/gillani-market/shoprent/internal/logger"
)

// Storages aggregates all repositories behind a single dependency-injected
// handle. Constructed once at startup and passed into the service layer;
// no package-level connection state exists.
type Storages struct {
	Users    UserRepository
	Rents    RentRepository
	Payments PaymentRepository

	DB *DB
}

// NewStorages wires every repository to the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Users:    NewUserRepository(db, logger),
		Rents:    NewRentRepository(db, logger),
		Payments: NewPaymentRepository(db, logger),
		DB:       db,
	}
}
