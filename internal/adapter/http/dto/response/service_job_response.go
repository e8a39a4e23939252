package response

import (
	"time"

	"garage_manager/internal/domain/entities"
)

type PackageSnapshotResponse struct {
	Number      string  `json:"package_number"`
	Name        string  `json:"package_name"`
	Description string  `json:"package_description"`
	Price       float64 `json:"package_price"`
}

type ServiceJobResponse struct {
	ID              string                   `json:"id"`
	CarID           string                   `json:"car_id"`
	PackageID       string                   `json:"package_id,omitempty"`
	PackageSnapshot *PackageSnapshotResponse `json:"package_snapshot,omitempty"`
	WorkDescription string                   `json:"work_description"`
	PartsUsed       string                   `json:"parts_used,omitempty"`
	LaborCost       float64                  `json:"labor_cost"`
	TotalCost       float64                  `json:"total_cost"`
	AmountPaid      float64                  `json:"amount_paid"`
	PaymentStatus   string                   `json:"payment_status"`
	Status          string                   `json:"status"`
	Notes           string                   `json:"notes,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}

func FromServiceJob(j entities.ServiceJob) ServiceJobResponse {
	var snapshot *PackageSnapshotResponse
	if j.PackageSnapshot != nil {
		snapshot = &PackageSnapshotResponse{
			Number:      j.PackageSnapshot.Number,
			Name:        j.PackageSnapshot.Name,
			Description: j.PackageSnapshot.Description,
			Price:       j.PackageSnapshot.Price,
		}
	}
	return ServiceJobResponse{
		ID:              j.ID,
		CarID:           j.CarID,
		PackageID:       j.PackageID,
		PackageSnapshot: snapshot,
		WorkDescription: j.WorkDescription,
		PartsUsed:       j.PartsUsed,
		LaborCost:       j.LaborCost,
		TotalCost:       j.TotalCost,
		AmountPaid:      j.AmountPaid,
		PaymentStatus:   string(j.PaymentStatus),
		Status:          string(j.Status),
		Notes:           j.Notes,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

func FromServiceJobs(jobs []entities.ServiceJob) []ServiceJobResponse {
	out := make([]ServiceJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromServiceJob(j))
	}
	return out
}
