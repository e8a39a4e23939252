package interfaces

import (
	"context"
	"errors"
	"garage_manager/internal/domain/entities"
)

// Persistence-layer outcomes of the transactional invoice write. The invoice
// put and its number-claim item live in one transaction; these errors tell the
// caller which condition lost a race.
var (
	ErrServiceAlreadyInvoiced = errors.New("service job already invoiced")
	ErrInvoiceNumberTaken     = errors.New("invoice number already taken")
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice. Invoices are
// create-once: there is no update or delete.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error)
}
