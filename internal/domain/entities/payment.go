package entities

import (
	"math"
	"time"
)

// PaymentStatus is the derived settlement state of a service job.

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ComputePaymentStatus maps (total cost, amount paid) to a settlement state.
// Non-finite inputs are treated as 0. A zero-cost job is never auto-marked
// paid: the paid branch requires a positive total.
func ComputePaymentStatus(totalCost, amountPaid float64) PaymentStatus {
	total := safeAmount(totalCost)
	paid := safeAmount(amountPaid)

	if paid <= 0 {
		return PaymentStatusUnpaid
	}
	if paid >= total && total > 0 {
		return PaymentStatusPaid
	}
	return PaymentStatusPartial
}

func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Payment is one discrete payment event against a service job. CarID is
// denormalized from the job so payments can be listed per car without a join.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): created_by
//   - GSI2 (service_id-index): service_id
//   - GSI3 (car_id-index): car_id
type Payment struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service_id"`
	CarID     string    `json:"car_id"`
	CreatedBy string    `json:"created_by"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
