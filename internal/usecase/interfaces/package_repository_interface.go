package interfaces

import (
	"context"
	"garage_manager/internal/domain/entities"
)

// IPackageRepository abstracts DynamoDB persistence for ServicePackage.

type IPackageRepository interface {
	Create(ctx context.Context, p entities.ServicePackage) (entities.ServicePackage, error)
	GetByID(ctx context.Context, id string) (entities.ServicePackage, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ServicePackage, error)
	Update(ctx context.Context, p entities.ServicePackage) (entities.ServicePackage, error)
	Delete(ctx context.Context, id string) error
}
