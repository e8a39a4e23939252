package entities

import (
	"fmt"
	"time"
)

// CustomerSnapshot freezes the car/owner details at issue time.
type CustomerSnapshot struct {
	OwnerName   string `json:"owner_name"`
	Phone       string `json:"phone"`
	PlateNumber string `json:"plate_number"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year"`
	Color       string `json:"color"`
}

// ServiceSnapshot freezes the costed work at issue time.
type ServiceSnapshot struct {
	Problem   string     `json:"problem"`
	WorkDone  string     `json:"work_done"`
	Parts     []PartLine `json:"parts"`
	LaborCost float64    `json:"labor_cost"`
	OtherCost float64    `json:"other_cost"`
	TotalCost float64    `json:"total_cost"`
	Status    string     `json:"status"`
}

// PaymentSnapshot freezes the settlement state at issue time.
type PaymentSnapshot struct {
	AmountPaid    float64       `json:"amount_paid"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// Invoice is the immutable billing document issued once per completed service
// job. Snapshots are plain copies; nothing points back at the live car or job,
// so later edits never rewrite an issued invoice.
//
// Storage model (DynamoDB):
//   - PK: id, which equals the service job id. Using the job id as PK is what
//     guarantees at most one invoice per job at the persistence layer.
//   - GSI1 (user_id-index): user_id
//
// InvoiceNumber is globally unique (claim item written in the same
// transaction as the invoice) and formatted INV-YYYY-NNNNNN.
type Invoice struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	InvoiceNumber    string           `json:"invoice_number"`
	ServiceID        string           `json:"service_id"`
	CarID            string           `json:"car_id"`
	CustomerSnapshot CustomerSnapshot `json:"customer_snapshot"`
	ServiceSnapshot  ServiceSnapshot  `json:"service_snapshot"`
	PaymentSnapshot  PaymentSnapshot  `json:"payment_snapshot"`
	IssuedAt         time.Time        `json:"issued_at"`
	Notes            string           `json:"notes,omitempty"`
}

// FormatInvoiceNumber renders the external invoice-number contract:
// INV-<four digit year>-<sequence zero-padded to six digits>. Downstream
// reporting parses this format, so it is bit-exact.
func FormatInvoiceNumber(year int, seq int64) string {
	return fmt.Sprintf("INV-%d-%06d", year, seq)
}
