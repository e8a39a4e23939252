package response

import (
	"time"

	"garage_manager/internal/domain/entities"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service_id"`
	CarID     string    `json:"car_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		ServiceID: p.ServiceID,
		CarID:     p.CarID,
		Amount:    p.Amount,
		CreatedAt: p.CreatedAt,
	}
}

func FromPayments(payments []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
