package request

// ServiceJobCreateRequest is the payload for opening a service job.
//
// parts_used is free text; it is parsed leniently at invoice time, never here.
type ServiceJobCreateRequest struct {
	CarID           string  `json:"car_id" binding:"required"`
	PackageID       string  `json:"package_id"`
	WorkDescription string  `json:"work_description" binding:"required"`
	PartsUsed       string  `json:"parts_used"`
	LaborCost       float64 `json:"labor_cost"`
	TotalCost       float64 `json:"total_cost"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
}

// ServiceJobUpdateRequest is a partial update. Cost fields are pointers so 0
// is an explicit value, not an omission. amount_paid and payment_status are
// deliberately absent: only the payment ledger mutates them.
type ServiceJobUpdateRequest struct {
	WorkDescription string   `json:"work_description"`
	PartsUsed       string   `json:"parts_used"`
	LaborCost       *float64 `json:"labor_cost"`
	TotalCost       *float64 `json:"total_cost"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
}
