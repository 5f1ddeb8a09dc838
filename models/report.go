package models

import "time"

// TenantReport is the consolidated financial picture of a single tenant
// inside the master report.
//
// TotalDue is a naive estimate: whole months elapsed since account creation
// (floor of days/30, minimum 1) multiplied by the monthly rent. Balance may
// be negative when a tenant has paid ahead; consumers clamp it to zero where
// an "outstanding" figure is displayed.
type TenantReport struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	ShopName    string     `json:"shopName"`
	MonthlyRent int64      `json:"monthlyRent"`
	DueDay      int        `json:"dueDate"`
	Status      UserStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`

	MonthsElapsed int   `json:"monthsElapsed"`
	TotalDue      int64 `json:"totalDue"`
	TotalPaid     int64 `json:"totalPaid"`
	TotalPending  int64 `json:"totalPending"`
	TotalRejected int64 `json:"totalRejected"`
	Balance       int64 `json:"balance"`

	PaidCount     int `json:"paidCount"`
	PendingCount  int `json:"pendingCount"`
	RejectedCount int `json:"rejectedCount"`

	// RecentPayments holds the five newest payments; Payments holds all
	// of them, newest first.
	RecentPayments []Payment `json:"recentPayments"`
	Payments       []Payment `json:"payments"`
}

// MasterSummary is the global roll-up emitted alongside the per-tenant
// records. TotalOutstanding sums per-tenant balances clamped to zero.
type MasterSummary struct {
	TotalTenants     int   `json:"totalTenants"`
	ActiveTenants    int   `json:"activeTenants"`
	InactiveTenants  int   `json:"inactiveTenants"`
	TotalPaid        int64 `json:"totalPaid"`
	TotalPending     int64 `json:"totalPending"`
	TotalOutstanding int64 `json:"totalOutstanding"`
	VerifiedCount    int   `json:"verifiedCount"`
	PendingCount     int   `json:"pendingCount"`
	RejectedCount    int   `json:"rejectedCount"`
}

// MasterReport is the single composite read joining all tenants with all
// their payments, served by GET /api/users/master.
type MasterReport struct {
	Tenants []TenantReport `json:"tenants"`
	Summary MasterSummary  `json:"summary"`
}
