package models

import "time"

// Role is the closed set of account roles recognised by the API.
type Role string

// Account roles.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the recognised roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserStatus is the closed set of account statuses.
type UserStatus string

// Account statuses.
const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// Valid reports whether s is one of the recognised statuses.
func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserInactive
}

// User represents a tenant or administrator account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID string).
	ID string `json:"id"`

	// Name is the full display name of the user.
	Name string `json:"name"`

	// Email is the unique login identifier. Stored and compared
	// case-insensitively.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized to clients and is populated only by the
	// credentialed lookup used during login.
	PasswordHash string `json:"-"`

	// Phone is the user's contact phone number.
	Phone string `json:"phone"`

	// ShopName is the name or number of the rented shop.
	ShopName string `json:"shopName"`

	// MonthlyRent is the monthly rent amount in whole currency units.
	MonthlyRent int64 `json:"monthlyRent"`

	// DueDay is the day of month (1-31) when rent is due. Defaults to 5.
	DueDay int `json:"dueDate"`

	// Role is either RoleUser or RoleAdmin.
	Role Role `json:"role"`

	// Status is either UserActive or UserInactive. Inactive accounts are
	// rejected by the authentication middleware.
	Status UserStatus `json:"status"`

	// CreatedAt is the account creation timestamp. Also the anchor for the
	// elapsed-tenancy estimate in the master report.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the last mutation timestamp.
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRef is the reduced user projection attached to rent and payment
// records for display purposes.
type UserRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ShopName string `json:"shopName"`
}

// Ref returns the reduced projection of the user.
func (u User) Ref() UserRef {
	return UserRef{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		ShopName: u.ShopName,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
