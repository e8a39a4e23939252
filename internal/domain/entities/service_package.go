package entities

import "time"

// ServicePackage is a pre-priced bundle of work a user offers (e.g. "Full
// Service"). Jobs may reference one; the job keeps its own frozen copy so a
// later price change never rewrites history.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type ServicePackage struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Number      string    `json:"package_number"`
	Name        string    `json:"package_name"`
	Description string    `json:"package_description"`
	Price       float64   `json:"package_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PackageSnapshot is the frozen copy stored on a ServiceJob at creation time.
type PackageSnapshot struct {
	Number      string  `json:"package_number"`
	Name        string  `json:"package_name"`
	Description string  `json:"package_description"`
	Price       float64 `json:"package_price"`
}

func SnapshotPackage(p ServicePackage) PackageSnapshot {
	return PackageSnapshot{
		Number:      p.Number,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}
