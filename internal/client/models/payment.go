package models

import "time"

// PaymentStatus is the processing state of a rent payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentOverdue   PaymentStatus = "OVERDUE"
)

// Payment is a single rent/deposit/fee transaction from /api/payments.
type Payment struct {
	ID               int64         `json:"id"`
	TenantID         int64         `json:"tenantId"`
	LandlordID       int64         `json:"landlordId"`
	PropertyID       int64         `json:"propertyId"`
	Type             string        `json:"type"`
	Status           PaymentStatus `json:"status"`
	PaymentReference string        `json:"paymentReference"`
	Amount           float64       `json:"amount"`
	LateFee          float64       `json:"lateFee"`
	TotalAmount      float64       `json:"totalAmount"`
	DueDate          time.Time     `json:"dueDate"`
	PaymentDate      time.Time     `json:"paymentDate"`
	Description      string        `json:"paymentDescription"`
}

// DashboardSummary is the counters block shown on the landing view,
// from /api/dashboard.
type DashboardSummary struct {
	TotalProperties   int     `json:"totalProperties"`
	ActiveListings    int     `json:"activeListings"`
	PendingPayments   int     `json:"pendingPayments"`
	MonthlyRentIncome float64 `json:"monthlyRentIncome"`
}
