package response

import (
	"time"

	"garage_manager/internal/domain/entities"
)

type PackageResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"package_number"`
	Name        string    `json:"package_name"`
	Description string    `json:"package_description"`
	Price       float64   `json:"package_price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromPackage(p entities.ServicePackage) PackageResponse {
	return PackageResponse{
		ID:          p.ID,
		Number:      p.Number,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromPackages(pkgs []entities.ServicePackage) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, FromPackage(p))
	}
	return out
}
