package interfaces

import (
	"context"
	"garage_manager/internal/domain/entities"
)

// IServiceJobRepository abstracts DynamoDB persistence for ServiceJob.
//
// The payment ledger must never lose a concurrent update to amount_paid, so
// the mutation is split in two:
//   - ApplyPaymentDelta is an atomic increment-and-fetch (DynamoDB ADD) that
//     returns the job as written, clamped so amount_paid never goes below 0.
//   - SetPaymentStatus writes the status derived from that consistent read.

type IServiceJobRepository interface {
	Create(ctx context.Context, j entities.ServiceJob) (entities.ServiceJob, error)
	GetByID(ctx context.Context, id string) (entities.ServiceJob, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ServiceJob, error)
	ListByCarID(ctx context.Context, carID string) ([]entities.ServiceJob, error)
	Update(ctx context.Context, j entities.ServiceJob) (entities.ServiceJob, error)
	Delete(ctx context.Context, id string) error

	ApplyPaymentDelta(ctx context.Context, id string, delta float64) (entities.ServiceJob, error)
	SetPaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) error
}
