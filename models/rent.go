package models

import "time"

// RentStatus is the closed set of rent record statuses.
type RentStatus string

// Rent statuses.
const (
	RentPending RentStatus = "pending"
	RentPaid    RentStatus = "paid"
	RentOverdue RentStatus = "overdue"
)

// Valid reports whether s is one of the recognised rent statuses.
func (s RentStatus) Valid() bool {
	return s == RentPending || s == RentPaid || s == RentOverdue
}

// Rent is a per-period rent obligation for a user.
// The (UserID, Period) pair is unique in intent; the schema carries an
// index hint rather than a hard constraint.
type Rent struct {
	// ID is the unique identifier of the rent record (UUID string).
	ID string `json:"id"`

	// UserID references the owning user.
	UserID string `json:"userId"`

	// User is the reduced projection of the owning user, populated on reads
	// for display convenience. Nil when not resolved.
	User *UserRef `json:"user,omitempty"`

	// Amount is the rent amount in whole currency units.
	Amount int64 `json:"amount"`

	// Period identifies the billing month as a year-month token, e.g. "2024-02".
	Period string `json:"period"`

	// DueDay is the day of month (1-31) when this rent is due.
	DueDay int `json:"dueDate"`

	// Status is one of RentPending, RentPaid, RentOverdue.
	Status RentStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Rent model.
func (r Rent) TableName() string {
	return "rents"
}
