package models

// AuthResponse is returned by register and login: a signed bearer token
// alongside the authenticated user's non-secret fields.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreatedUser is the reduced projection returned after user creation.
// The password never appears here.
type CreatedUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	ShopName string `json:"shopName"`
}

// BillSummary is the per-user financial snapshot served by
// GET /api/payments/bill-summary/:userId.
type BillSummary struct {
	MonthlyRent  int64  `json:"monthlyRent"`
	TotalPaid    int64  `json:"totalPaid"`
	TotalPending int64  `json:"totalPending"`
	DueDay       int    `json:"dueDate"`
	ShopName     string `json:"shopName"`
}

// PaymentStats is the global payment breakdown served by
// GET /api/payments/stats. MonthlyCollected covers only verified payments
// whose month label matches the current month.
type PaymentStats struct {
	TotalCollected   int64 `json:"totalCollected"`
	TotalPending     int64 `json:"totalPending"`
	MonthlyCollected int64 `json:"monthlyCollected"`
	VerifiedCount    int   `json:"verifiedCount"`
	PendingCount     int   `json:"pendingCount"`
	RejectedCount    int   `json:"rejectedCount"`
}

// RentStats is the global rent breakdown served by GET /api/rent/stats.
// The collected/pending figures cover only the current "YYYY-MM" period.
type RentStats struct {
	TotalUsers     int   `json:"totalUsers"`
	ActiveUsers    int   `json:"activeUsers"`
	TotalRent      int64 `json:"totalRent"`
	TotalCollected int64 `json:"totalCollected"`
	TotalPending   int64 `json:"totalPending"`
	PaidCount      int   `json:"paidCount"`
	PendingCount   int   `json:"pendingCount"`
	OverdueCount   int   `json:"overdueCount"`
}
