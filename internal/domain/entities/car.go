package entities

import "time"

// CarStatus tracks where the vehicle is in the shop workflow.

type CarStatus string

const (
	CarStatusPending   CarStatus = "pending"
	CarStatusServicing CarStatus = "servicing"
	CarStatusCompleted CarStatus = "completed"
)

// Car is a customer vehicle registered by a shop user.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Car struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	OwnerName   string    `json:"owner_name"`
	Phone       string    `json:"phone"`
	PlateNumber string    `json:"plate_number"`
	Brand       string    `json:"brand"`
	Model       string    `json:"model"`
	Year        string    `json:"year,omitempty"`
	Color       string    `json:"color,omitempty"`
	Status      CarStatus `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
