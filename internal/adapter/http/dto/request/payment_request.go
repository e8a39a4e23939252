package request

// PaymentRequest is the payload for recording a manual payment against a
// service job.
type PaymentRequest struct {
	ServiceID string  `json:"service_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}
