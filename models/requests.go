package models

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	ShopName    string `json:"shopName"`
	MonthlyRent int64  `json:"monthlyRent"`
	DueDay      int    `json:"dueDate"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePasswordRequest is the payload of PUT /api/auth/updatepassword.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateUserRequest is the payload of POST /api/users.
// Password and DueDay fall back to server defaults when omitted.
type CreateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	ShopName    string `json:"shopName"`
	MonthlyRent int64  `json:"monthlyRent"`
	DueDay      int    `json:"dueDate"`
	Role        Role   `json:"role"`
}

// UpdateUserRequest is the payload of PUT /api/users/:id.
// Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name        *string     `json:"name"`
	Email       *string     `json:"email"`
	Phone       *string     `json:"phone"`
	ShopName    *string     `json:"shopName"`
	MonthlyRent *int64      `json:"monthlyRent"`
	DueDay      *int        `json:"dueDate"`
	Status      *UserStatus `json:"status"`
}

// UpdateRentRequest is the payload of PUT /api/rent/:id.
// Nil fields are left unchanged.
type UpdateRentRequest struct {
	Amount *int64      `json:"amount"`
	Status *RentStatus `json:"status"`
}

// ManualPaymentRequest is the payload of POST /api/payments/manual.
type ManualPaymentRequest struct {
	UserID string        `json:"userId"`
	Amount int64         `json:"amount"`
	Month  string        `json:"month"`
	Method PaymentMethod `json:"paymentMethod"`
	Notes  string        `json:"notes"`
}

// ReceiptUpload carries the form fields of POST /api/payments/upload-receipt
// together with the stored path of the uploaded file.
type ReceiptUpload struct {
	UserID      string
	Amount      int64
	Month       string
	Notes       string
	ReceiptFile string
}

// VerifyPaymentRequest is the payload of PUT /api/payments/:id/verify.
type VerifyPaymentRequest struct {
	Status PaymentStatus `json:"status"`
}

// UserFilter narrows user listings. Zero values mean "no filter".
// Search matches name, email and shop name by case-insensitive substring.
type UserFilter struct {
	Role   Role
	Status UserStatus
	Search string
}

// PaymentFilter narrows payment listings. Zero values mean "no filter";
// Page and Limit of zero fall back to the first page of ten records.
type PaymentFilter struct {
	Status PaymentStatus
	Month  string
	Page   int
	Limit  int
}
