package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrNotServiceOwner        = errors.New("service job belongs to another user")
	ErrServiceNotCompleted    = errors.New("service must be completed to invoice")
	ErrInvoiceAlreadyExists   = errors.New("invoice already exists for this service")
	ErrInvoiceNumberExhausted = errors.New("could not allocate a unique invoice number")
)

// invoiceCreateAttempts bounds the silent re-draws when an invoice number
// loses a uniqueness race.
const invoiceCreateAttempts = 3

// IInvoiceUseCase exposes invoice generation and reads.
//
// GenerateInvoice is idempotent-by-conflict: calling it again for an already
// invoiced job returns the existing invoice together with
// ErrInvoiceAlreadyExists so callers can redirect instead of re-creating.

type IInvoiceUseCase interface {
	GenerateInvoice(ctx context.Context, serviceID, userID, notes string) (entities.Invoice, error)
	GetByID(ctx context.Context, id, userID string) (entities.Invoice, error)
	GetByServiceID(ctx context.Context, serviceID, userID string) (entities.Invoice, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	invoiceRepo interfaces.IInvoiceRepository
	counterRepo interfaces.IInvoiceCounterRepository
	serviceRepo interfaces.IServiceJobRepository
	carRepo     interfaces.ICarRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	invoiceRepo interfaces.IInvoiceRepository,
	counterRepo interfaces.IInvoiceCounterRepository,
	serviceRepo interfaces.IServiceJobRepository,
	carRepo interfaces.ICarRepository,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		counterRepo: counterRepo,
		serviceRepo: serviceRepo,
		carRepo:     carRepo,
	}
}

// GenerateInvoice freezes a completed service job into a numbered, immutable
// invoice. Preconditions are checked in order; the invoice number is only
// drawn after every check passes, so a rejected request never burns a
// sequence value.
func (u *InvoiceUseCase) GenerateInvoice(ctx context.Context, serviceID, userID, notes string) (entities.Invoice, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Invoice{}, ErrInvalidServiceID
	}
	log.Printf("[invoice][usecase] generate start service_id=%s user_id=%s", serviceID, userID)

	job, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if job.ID == "" {
		return entities.Invoice{}, ErrServiceNotFound
	}
	if job.CreatedBy != "" && job.CreatedBy != userID {
		log.Printf("[invoice][usecase] forbidden service_id=%s owner=%s caller=%s", serviceID, job.CreatedBy, userID)
		return entities.Invoice{}, ErrNotServiceOwner
	}
	if job.Status != entities.ServiceStatusCompleted {
		return entities.Invoice{}, ErrServiceNotCompleted
	}

	// Fast path; the persistence layer still enforces uniqueness on create.
	if existing, err := u.invoiceRepo.GetByID(ctx, serviceID); err != nil {
		return entities.Invoice{}, err
	} else if existing.ID != "" {
		log.Printf("[invoice][usecase] already invoiced service_id=%s invoice_id=%s", serviceID, existing.ID)
		return existing, ErrInvoiceAlreadyExists
	}

	car, err := u.carRepo.GetByID(ctx, job.CarID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if car.ID == "" {
		return entities.Invoice{}, ErrCarNotFound
	}

	parts := entities.ParseParts(job.PartsUsed)
	partsTotal := entities.PartsTotal(parts)
	laborCost := job.LaborCost
	totalCost := job.TotalCost
	// otherCost absorbs any unaccounted difference; never negative.
	otherCost := math.Max(0, totalCost-laborCost-partsTotal)

	now := time.Now().UTC()
	year := now.Year()

	for attempt := 0; attempt < invoiceCreateAttempts; attempt++ {
		seq, err := u.counterRepo.NextSequence(ctx, year)
		if err != nil {
			log.Printf("[invoice][usecase] sequence draw failed service_id=%s year=%d err=%v", serviceID, year, err)
			return entities.Invoice{}, err
		}
		number := entities.FormatInvoiceNumber(year, seq)

		inv := entities.Invoice{
			ID:            job.ID,
			UserID:        userID,
			InvoiceNumber: number,
			ServiceID:     job.ID,
			CarID:         car.ID,
			CustomerSnapshot: entities.CustomerSnapshot{
				OwnerName:   car.OwnerName,
				Phone:       car.Phone,
				PlateNumber: car.PlateNumber,
				Brand:       car.Brand,
				Model:       car.Model,
				Year:        car.Year,
				Color:       car.Color,
			},
			ServiceSnapshot: entities.ServiceSnapshot{
				Problem:   job.WorkDescription,
				WorkDone:  job.Notes,
				Parts:     parts,
				LaborCost: laborCost,
				OtherCost: otherCost,
				TotalCost: totalCost,
				Status:    string(job.Status),
			},
			PaymentSnapshot: entities.PaymentSnapshot{
				AmountPaid:    job.AmountPaid,
				PaymentStatus: entities.ComputePaymentStatus(job.TotalCost, job.AmountPaid),
			},
			IssuedAt: now,
			Notes:    notes,
		}

		created, err := u.invoiceRepo.Create(ctx, inv)
		if err == nil {
			log.Printf("[invoice][usecase] generate success service_id=%s invoice_number=%s attempt=%d", serviceID, number, attempt+1)
			return created, nil
		}
		if errors.Is(err, interfaces.ErrInvoiceNumberTaken) {
			// Lost a race on the number; draw a fresh one. Gaps in the
			// sequence are acceptable, duplicates are not.
			log.Printf("[invoice][usecase] invoice number collision service_id=%s invoice_number=%s attempt=%d", serviceID, number, attempt+1)
			continue
		}
		if errors.Is(err, interfaces.ErrServiceAlreadyInvoiced) {
			existing, getErr := u.invoiceRepo.GetByID(ctx, serviceID)
			if getErr != nil || existing.ID == "" {
				return entities.Invoice{}, err
			}
			return existing, ErrInvoiceAlreadyExists
		}
		log.Printf("[invoice][usecase] persist failed service_id=%s err=%v", serviceID, err)
		return entities.Invoice{}, err
	}

	return entities.Invoice{}, ErrInvoiceNumberExhausted
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id, userID string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" || inv.UserID != userID {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// GetByServiceID resolves the invoice for a service job. The invoice id
// equals the job id, so this is a direct key lookup.
func (u *InvoiceUseCase) GetByServiceID(ctx context.Context, serviceID, userID string) (entities.Invoice, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Invoice{}, ErrInvalidServiceID
	}
	return u.GetByID(ctx, serviceID, userID)
}

func (u *InvoiceUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error) {
	invoices, err := u.invoiceRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].IssuedAt.After(invoices[j].IssuedAt)
	})
	return invoices, nil
}
