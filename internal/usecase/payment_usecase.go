package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidPaymentAmount = errors.New("amount must be greater than 0")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrNothingOutstanding   = errors.New("service has no outstanding balance")
	ErrOnlinePaymentDenied  = errors.New("online payment was not approved")
)

// IPaymentUseCase is the payment ledger: it records payments against service
// jobs and keeps the job's amount_paid/payment_status pair consistent under
// addition and removal. Ledger writes are never retried automatically; a
// failure surfaces so the caller can re-submit deliberately.

type IPaymentUseCase interface {
	AddPayment(ctx context.Context, serviceID, userID string, amount float64) (entities.Payment, error)
	CollectOnline(ctx context.Context, serviceID, userID string, providerPayload json.RawMessage) (entities.Payment, error)
	DeletePayment(ctx context.Context, paymentID, userID string) error
	GetByID(ctx context.Context, paymentID, userID string) (entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	ListByServiceID(ctx context.Context, serviceID, userID string) ([]entities.Payment, error)
	ListByCarID(ctx context.Context, carID, userID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	paymentRepo interfaces.IPaymentRepository
	serviceRepo interfaces.IServiceJobRepository
	carRepo     interfaces.ICarRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	paymentRepo interfaces.IPaymentRepository,
	serviceRepo interfaces.IServiceJobRepository,
	carRepo interfaces.ICarRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		serviceRepo: serviceRepo,
		carRepo:     carRepo,
		gateway:     gateway,
	}
}

// AddPayment records a manual payment and reconciles the job. The job update
// is an atomic increment-and-fetch on amount_paid followed by a derived
// payment_status write; concurrent payments to the same job cannot lose an
// update. If the increment fails the freshly created payment is rolled back
// so the ledger sum invariant holds.
func (u *PaymentUseCase) AddPayment(ctx context.Context, serviceID, userID string, amount float64) (entities.Payment, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Payment{}, ErrInvalidServiceID
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentAmount
	}

	job, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if job.ID == "" || job.CreatedBy != userID {
		return entities.Payment{}, ErrServiceNotFound
	}

	return u.recordPayment(ctx, job, userID, amount)
}

func (u *PaymentUseCase) recordPayment(ctx context.Context, job entities.ServiceJob, userID string, amount float64) (entities.Payment, error) {
	payment := entities.Payment{
		ID:        uuid.NewString(),
		ServiceID: job.ID,
		CarID:     job.CarID,
		CreatedBy: userID,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}

	created, err := u.paymentRepo.Create(ctx, payment)
	if err != nil {
		log.Printf("[payment][usecase] create failed service_id=%s err=%v", job.ID, err)
		return entities.Payment{}, err
	}

	updated, err := u.serviceRepo.ApplyPaymentDelta(ctx, job.ID, amount)
	if err != nil {
		log.Printf("[payment][usecase] ledger update failed service_id=%s payment_id=%s err=%v", job.ID, created.ID, err)
		if delErr := u.paymentRepo.Delete(ctx, created.ID); delErr != nil {
			log.Printf("[payment][usecase] rollback failed payment_id=%s err=%v", created.ID, delErr)
		}
		return entities.Payment{}, err
	}

	status := entities.ComputePaymentStatus(updated.TotalCost, updated.AmountPaid)
	if err := u.serviceRepo.SetPaymentStatus(ctx, job.ID, status); err != nil {
		log.Printf("[payment][usecase] status write failed service_id=%s err=%v", job.ID, err)
		return entities.Payment{}, err
	}

	log.Printf("[payment][usecase] recorded service_id=%s payment_id=%s amount=%.2f amount_paid=%.2f status=%s",
		job.ID, created.ID, amount, updated.AmountPaid, status)
	return created, nil
}

// CollectOnline charges the job's outstanding balance through the configured
// payment provider, then records the approved charge as a ledger payment. The
// amount always comes from the job in the database, never from the caller.
func (u *PaymentUseCase) CollectOnline(ctx context.Context, serviceID, userID string, providerPayload json.RawMessage) (entities.Payment, error) {
	if u.gateway == nil {
		return entities.Payment{}, ErrGatewayNotConfigured
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Payment{}, ErrInvalidServiceID
	}

	job, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if job.ID == "" || job.CreatedBy != userID {
		return entities.Payment{}, ErrServiceNotFound
	}

	// Outstanding comes from a plain read; two racing collects on the same
	// job can both observe the full balance. The external_reference set below
	// carries the job id so duplicate charges are reconcilable provider-side.
	outstanding := job.TotalCost - job.AmountPaid
	if outstanding <= 0 {
		return entities.Payment{}, ErrNothingOutstanding
	}

	payload := map[string]any{}
	if len(providerPayload) > 0 && json.Valid(providerPayload) {
		_ = json.Unmarshal(providerPayload, &payload)
	}
	if _, ok := payload["external_reference"]; !ok {
		payload["external_reference"] = job.ID
	}
	if _, ok := payload["description"]; !ok {
		payload["description"] = fmt.Sprintf("Service job %s", job.ID)
	}
	payload["transaction_amount"] = outstanding

	body, err := json.Marshal(payload)
	if err != nil {
		return entities.Payment{}, err
	}

	log.Printf("[payment][usecase] online charge start service_id=%s amount=%.2f", job.ID, outstanding)
	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] online charge failed service_id=%s err=%v", job.ID, err)
		return entities.Payment{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[payment][usecase] online charge denied service_id=%s provider_payment_id=%s provider_status=%s", job.ID, providerID, providerStatus)
		return entities.Payment{}, ErrOnlinePaymentDenied
	}
	log.Printf("[payment][usecase] online charge approved service_id=%s provider_payment_id=%s", job.ID, providerID)

	return u.recordPayment(ctx, job, userID, outstanding)
}

// DeletePayment reverses a payment's effect on its job, then removes the
// payment record. The job is reconciled first so a crash between the two
// writes can only leave an over-deducted job, never a double-counted one; a
// job that was deleted independently never blocks the cleanup.
func (u *PaymentUseCase) DeletePayment(ctx context.Context, paymentID, userID string) error {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ErrInvalidPaymentID
	}

	payment, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.ID == "" || payment.CreatedBy != userID {
		return ErrPaymentNotFound
	}

	job, err := u.serviceRepo.GetByID(ctx, payment.ServiceID)
	if err != nil {
		return err
	}
	if job.ID != "" && job.CreatedBy == userID {
		updated, err := u.serviceRepo.ApplyPaymentDelta(ctx, job.ID, -payment.Amount)
		if err != nil {
			return err
		}
		status := entities.ComputePaymentStatus(updated.TotalCost, updated.AmountPaid)
		if err := u.serviceRepo.SetPaymentStatus(ctx, job.ID, status); err != nil {
			return err
		}
		log.Printf("[payment][usecase] reversed service_id=%s payment_id=%s amount=%.2f amount_paid=%.2f status=%s",
			job.ID, payment.ID, payment.Amount, updated.AmountPaid, status)
	}

	return u.paymentRepo.Delete(ctx, payment.ID)
}

func (u *PaymentUseCase) GetByID(ctx context.Context, paymentID, userID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	payment, err := u.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.ID == "" || payment.CreatedBy != userID {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return payment, nil
}

func (u *PaymentUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	payments, err := u.paymentRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortPaymentsNewestFirst(payments)
	return payments, nil
}

func (u *PaymentUseCase) ListByServiceID(ctx context.Context, serviceID, userID string) ([]entities.Payment, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidServiceID
	}

	job, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if job.ID == "" || job.CreatedBy != userID {
		return nil, ErrServiceNotFound
	}

	payments, err := u.paymentRepo.ListByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	payments = filterPaymentsByOwner(payments, userID)
	sortPaymentsNewestFirst(payments)
	return payments, nil
}

func (u *PaymentUseCase) ListByCarID(ctx context.Context, carID, userID string) ([]entities.Payment, error) {
	carID = strings.TrimSpace(carID)
	if carID == "" {
		return nil, ErrInvalidCarID
	}

	car, err := u.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car.ID == "" || car.UserID != userID {
		return nil, ErrCarNotFound
	}

	payments, err := u.paymentRepo.ListByCarID(ctx, carID)
	if err != nil {
		return nil, err
	}
	payments = filterPaymentsByOwner(payments, userID)
	sortPaymentsNewestFirst(payments)
	return payments, nil
}

func filterPaymentsByOwner(payments []entities.Payment, userID string) []entities.Payment {
	out := payments[:0]
	for _, p := range payments {
		if p.CreatedBy == userID {
			out = append(out, p)
		}
	}
	return out
}

func sortPaymentsNewestFirst(payments []entities.Payment) {
	sort.Slice(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
}
