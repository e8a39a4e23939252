package response

import (
	"time"

	"garage_manager/internal/domain/entities"
)

type PartLineResponse struct {
	Name      string  `json:"name"`
	Qty       float64 `json:"qty"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
}

type CustomerSnapshotResponse struct {
	OwnerName   string `json:"owner_name"`
	Phone       string `json:"phone"`
	PlateNumber string `json:"plate_number"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        string `json:"year,omitempty"`
	Color       string `json:"color,omitempty"`
}

type ServiceSnapshotResponse struct {
	Problem   string             `json:"problem,omitempty"`
	WorkDone  string             `json:"work_done,omitempty"`
	Parts     []PartLineResponse `json:"parts"`
	LaborCost float64            `json:"labor_cost"`
	OtherCost float64            `json:"other_cost"`
	TotalCost float64            `json:"total_cost"`
	Status    string             `json:"status"`
}

type PaymentSnapshotResponse struct {
	AmountPaid    float64 `json:"amount_paid"`
	PaymentStatus string  `json:"payment_status"`
}

type InvoiceResponse struct {
	ID               string                   `json:"id"`
	InvoiceNumber    string                   `json:"invoice_number"`
	ServiceID        string                   `json:"service_id"`
	CarID            string                   `json:"car_id"`
	CustomerSnapshot CustomerSnapshotResponse `json:"customer_snapshot"`
	ServiceSnapshot  ServiceSnapshotResponse  `json:"service_snapshot"`
	PaymentSnapshot  PaymentSnapshotResponse  `json:"payment_snapshot"`
	IssuedAt         time.Time                `json:"issued_at"`
	Notes            string                   `json:"notes,omitempty"`
}

// InvoiceConflictResponse is returned when invoice generation hits an already
// invoiced job. It carries the existing invoice id so clients can redirect to
// it instead of retrying.
type InvoiceConflictResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	InvoiceID string `json:"invoice_id"`
}

func NewInvoiceConflict(code, message, invoiceID string) InvoiceConflictResponse {
	var resp InvoiceConflictResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.InvoiceID = invoiceID
	return resp
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	parts := make([]PartLineResponse, 0, len(inv.ServiceSnapshot.Parts))
	for _, p := range inv.ServiceSnapshot.Parts {
		parts = append(parts, PartLineResponse(p))
	}
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ServiceID:     inv.ServiceID,
		CarID:         inv.CarID,
		CustomerSnapshot: CustomerSnapshotResponse{
			OwnerName:   inv.CustomerSnapshot.OwnerName,
			Phone:       inv.CustomerSnapshot.Phone,
			PlateNumber: inv.CustomerSnapshot.PlateNumber,
			Brand:       inv.CustomerSnapshot.Brand,
			Model:       inv.CustomerSnapshot.Model,
			Year:        inv.CustomerSnapshot.Year,
			Color:       inv.CustomerSnapshot.Color,
		},
		ServiceSnapshot: ServiceSnapshotResponse{
			Problem:   inv.ServiceSnapshot.Problem,
			WorkDone:  inv.ServiceSnapshot.WorkDone,
			Parts:     parts,
			LaborCost: inv.ServiceSnapshot.LaborCost,
			OtherCost: inv.ServiceSnapshot.OtherCost,
			TotalCost: inv.ServiceSnapshot.TotalCost,
			Status:    inv.ServiceSnapshot.Status,
		},
		PaymentSnapshot: PaymentSnapshotResponse{
			AmountPaid:    inv.PaymentSnapshot.AmountPaid,
			PaymentStatus: string(inv.PaymentSnapshot.PaymentStatus),
		},
		IssuedAt: inv.IssuedAt,
		Notes:    inv.Notes,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
