package entities

import "time"

// ServiceStatus represents the lifecycle of a service job.
//
// Only completed jobs can be invoiced.

type ServiceStatus string

const (
	ServiceStatusPending   ServiceStatus = "pending"
	ServiceStatusOngoing   ServiceStatus = "ongoing"
	ServiceStatusCompleted ServiceStatus = "completed"
)

// ServiceJob is one repair engagement for one car.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): created_by
//   - GSI2 (car_id-index): car_id
//
// Monetary representation:
//   - LaborCost/TotalCost/AmountPaid are numeric attributes (N) so the payment
//     ledger can apply atomic ADD deltas on amount_paid.
//
// Invariants:
//   - PaymentStatus is always ComputePaymentStatus(TotalCost, AmountPaid).
//   - AmountPaid is only ever mutated through the payment ledger.
type ServiceJob struct {
	ID              string           `json:"id"`
	CarID           string           `json:"car_id"`
	CreatedBy       string           `json:"created_by"`
	PackageID       string           `json:"package_id,omitempty"`
	PackageSnapshot *PackageSnapshot `json:"package_snapshot,omitempty"`
	WorkDescription string           `json:"work_description"`
	PartsUsed       string           `json:"parts_used,omitempty"`
	LaborCost       float64          `json:"labor_cost"`
	TotalCost       float64          `json:"total_cost"`
	AmountPaid      float64          `json:"amount_paid"`
	PaymentStatus   PaymentStatus    `json:"payment_status"`
	Status          ServiceStatus    `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
