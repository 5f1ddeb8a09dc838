package models

import "time"

// PaymentStatus is the closed set of payment record statuses.
type PaymentStatus string

// Payment statuses.
const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// Valid reports whether s is one of the recognised payment statuses.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentVerified || s == PaymentRejected
}

// IsVerdict reports whether s is a status an admin may apply through the
// verify operation. Only verified and rejected are accepted there.
func (s PaymentStatus) IsVerdict() bool {
	return s == PaymentVerified || s == PaymentRejected
}

// PaymentMethod is the closed set of payment methods.
type PaymentMethod string

// Payment methods.
const (
	MethodCash   PaymentMethod = "cash"
	MethodBank   PaymentMethod = "bank"
	MethodOnline PaymentMethod = "online"
	MethodOther  PaymentMethod = "other"
)

// Valid reports whether m is one of the recognised payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodBank, MethodOnline, MethodOther:
		return true
	}
	return false
}

// Payment is a record of money received or claimed.
//
// A payment is created either by a tenant uploading a receipt (pending) or
// by an admin manual entry (pre-verified with verifier fields set). Only the
// verify operation mutates its status afterwards.
type Payment struct {
	// ID is the unique identifier of the payment (UUID string).
	ID string `json:"id"`

	// UserID references the owning user.
	UserID string `json:"userId"`

	// User is the reduced projection of the owning user, populated on reads
	// for display convenience. Nil when not resolved.
	User *UserRef `json:"user,omitempty"`

	// Amount is the payment amount in whole currency units.
	Amount int64 `json:"amount"`

	// Month is the free-form month label this payment is for,
	// e.g. "January 2024".
	Month string `json:"month"`

	// Method is one of cash, bank, online, other. Defaults to cash.
	Method PaymentMethod `json:"paymentMethod"`

	// ReceiptFile is the storage path of the uploaded receipt, empty when
	// the payment was entered manually.
	ReceiptFile string `json:"receiptFile,omitempty"`

	// Notes is free-text commentary supplied by the payer or admin.
	Notes string `json:"notes"`

	// Status is one of pending, verified, rejected.
	Status PaymentStatus `json:"status"`

	// PaymentDate is when the payment was made.
	PaymentDate time.Time `json:"paymentDate"`

	// VerifiedBy is the ID of the admin who verified or rejected the
	// payment. Empty until the verify operation runs.
	VerifiedBy string `json:"verifiedBy,omitempty"`

	// VerifiedAt is when the payment was verified or rejected.
	VerifiedAt *time.Time `json:"verifiedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Payment model.
func (p Payment) TableName() string {
	return "payments"
}
