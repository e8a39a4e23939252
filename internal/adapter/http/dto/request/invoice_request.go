package request

// InvoiceRequest is the payload for invoice generation. Everything else on
// the invoice is derived from the stored job and car; only the free-text note
// comes from the caller.
type InvoiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Notes     string `json:"notes"`
}
