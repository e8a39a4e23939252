package response

import (
	"time"

	"garage_manager/internal/domain/entities"
)

type CarResponse struct {
	ID          string    `json:"id"`
	OwnerName   string    `json:"owner_name"`
	Phone       string    `json:"phone"`
	PlateNumber string    `json:"plate_number"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        string    `json:"year,omitempty"`
	Color       string    `json:"color,omitempty"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCar(c entities.Car) CarResponse {
	return CarResponse{
		ID:          c.ID,
		OwnerName:   c.OwnerName,
		Phone:       c.Phone,
		PlateNumber: c.PlateNumber,
		Brand:       c.Brand,
		Model:       c.Model,
		Year:        c.Year,
		Color:       c.Color,
		Status:      string(c.Status),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCars(cars []entities.Car) []CarResponse {
	out := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		out = append(out, FromCar(c))
	}
	return out
}
