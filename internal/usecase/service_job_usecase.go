package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceID       = errors.New("invalid service id")
	ErrServiceNotFound        = errors.New("service not found")
	ErrInvalidServiceCost     = errors.New("costs must not be negative")
	ErrInvalidServiceStatus   = errors.New("invalid service status")
	ErrMissingWorkDescription = errors.New("work description is required")
)

// ServiceJobInput carries the writable fields for job creation.
type ServiceJobInput struct {
	CarID           string
	PackageID       string
	WorkDescription string
	PartsUsed       string
	LaborCost       float64
	TotalCost       float64
	Status          string
	Notes           string
}

// ServiceJobPatch carries a partial update; nil/empty fields keep the stored
// value, matching PUT semantics of the API.
type ServiceJobPatch struct {
	WorkDescription string
	PartsUsed       string
	LaborCost       *float64
	TotalCost       *float64
	Status          string
	Notes           string
}

// IServiceJobUseCase exposes service job CRUD. Payment fields are read-only
// here: amount_paid and payment_status belong to the payment ledger, though
// cost updates re-derive the status so the invariant
// payment_status == ComputePaymentStatus(total_cost, amount_paid) always holds.

type IServiceJobUseCase interface {
	Create(ctx context.Context, userID string, in ServiceJobInput) (entities.ServiceJob, error)
	GetByID(ctx context.Context, id, userID string) (entities.ServiceJob, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ServiceJob, error)
	ListByCarID(ctx context.Context, carID, userID string) ([]entities.ServiceJob, error)
	Update(ctx context.Context, id, userID string, patch ServiceJobPatch) (entities.ServiceJob, error)
	Delete(ctx context.Context, id, userID string) error
}

type ServiceJobUseCase struct {
	serviceRepo interfaces.IServiceJobRepository
	carRepo     interfaces.ICarRepository
	packageRepo interfaces.IPackageRepository
	paymentRepo interfaces.IPaymentRepository
}

var _ IServiceJobUseCase = (*ServiceJobUseCase)(nil)

func NewServiceJobUseCase(
	serviceRepo interfaces.IServiceJobRepository,
	carRepo interfaces.ICarRepository,
	packageRepo interfaces.IPackageRepository,
	paymentRepo interfaces.IPaymentRepository,
) *ServiceJobUseCase {
	return &ServiceJobUseCase{
		serviceRepo: serviceRepo,
		carRepo:     carRepo,
		packageRepo: packageRepo,
		paymentRepo: paymentRepo,
	}
}

func (u *ServiceJobUseCase) Create(ctx context.Context, userID string, in ServiceJobInput) (entities.ServiceJob, error) {
	carID := strings.TrimSpace(in.CarID)
	if carID == "" {
		return entities.ServiceJob{}, ErrInvalidCarID
	}
	if strings.TrimSpace(in.WorkDescription) == "" {
		return entities.ServiceJob{}, ErrMissingWorkDescription
	}
	if in.LaborCost < 0 || in.TotalCost < 0 {
		return entities.ServiceJob{}, ErrInvalidServiceCost
	}

	status := entities.ServiceStatus(in.Status)
	if in.Status == "" {
		status = entities.ServiceStatusPending
	}
	if !isValidServiceStatus(status) {
		return entities.ServiceJob{}, ErrInvalidServiceStatus
	}

	car, err := u.carRepo.GetByID(ctx, carID)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	if car.ID == "" || car.UserID != userID {
		return entities.ServiceJob{}, ErrCarNotFound
	}

	var snapshot *entities.PackageSnapshot
	packageID := strings.TrimSpace(in.PackageID)
	if packageID != "" {
		pkg, err := u.packageRepo.GetByID(ctx, packageID)
		if err != nil {
			return entities.ServiceJob{}, err
		}
		if pkg.ID == "" || pkg.UserID != userID {
			return entities.ServiceJob{}, ErrPackageNotFound
		}
		// Freeze the package terms now; later package edits must not change
		// what this job was sold as.
		s := entities.SnapshotPackage(pkg)
		snapshot = &s
	}

	now := time.Now().UTC()
	job := entities.ServiceJob{
		ID:              uuid.NewString(),
		CarID:           carID,
		CreatedBy:       userID,
		PackageID:       packageID,
		PackageSnapshot: snapshot,
		WorkDescription: in.WorkDescription,
		PartsUsed:       in.PartsUsed,
		LaborCost:       in.LaborCost,
		TotalCost:       in.TotalCost,
		AmountPaid:      0,
		PaymentStatus:   entities.ComputePaymentStatus(in.TotalCost, 0),
		Status:          status,
		Notes:           in.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.serviceRepo.Create(ctx, job)
}

func (u *ServiceJobUseCase) GetByID(ctx context.Context, id, userID string) (entities.ServiceJob, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceJob{}, ErrInvalidServiceID
	}

	job, err := u.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceJob{}, err
	}
	if job.ID == "" || job.CreatedBy != userID {
		return entities.ServiceJob{}, ErrServiceNotFound
	}
	return job, nil
}

func (u *ServiceJobUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.ServiceJob, error) {
	jobs, err := u.serviceRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortJobsNewestFirst(jobs)
	return jobs, nil
}

func (u *ServiceJobUseCase) ListByCarID(ctx context.Context, carID, userID string) ([]entities.ServiceJob, error) {
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

	jobs, err := u.serviceRepo.ListByCarID(ctx, carID)
	if err != nil {
		return nil, err
	}
	out := jobs[:0]
	for _, j := range jobs {
		if j.CreatedBy == userID {
			out = append(out, j)
		}
	}
	sortJobsNewestFirst(out)
	return out, nil
}

func (u *ServiceJobUseCase) Update(ctx context.Context, id, userID string, patch ServiceJobPatch) (entities.ServiceJob, error) {
	job, err := u.GetByID(ctx, id, userID)
	if err != nil {
		return entities.ServiceJob{}, err
	}

	if patch.WorkDescription != "" {
		job.WorkDescription = patch.WorkDescription
	}
	if patch.PartsUsed != "" {
		job.PartsUsed = patch.PartsUsed
	}
	if patch.LaborCost != nil {
		if *patch.LaborCost < 0 {
			return entities.ServiceJob{}, ErrInvalidServiceCost
		}
		job.LaborCost = *patch.LaborCost
	}
	if patch.TotalCost != nil {
		if *patch.TotalCost < 0 {
			return entities.ServiceJob{}, ErrInvalidServiceCost
		}
		job.TotalCost = *patch.TotalCost
	}
	if patch.Status != "" {
		status := entities.ServiceStatus(patch.Status)
		if !isValidServiceStatus(status) {
			return entities.ServiceJob{}, ErrInvalidServiceStatus
		}
		job.Status = status
	}
	if patch.Notes != "" {
		job.Notes = patch.Notes
	}

	// A cost change shifts the settlement state even though amount_paid is
	// untouched here.
	job.PaymentStatus = entities.ComputePaymentStatus(job.TotalCost, job.AmountPaid)
	job.UpdatedAt = time.Now().UTC()

	return u.serviceRepo.Update(ctx, job)
}

// Delete removes the job and its ledger payments. Payments must not outlive
// their job, so the cleanup happens before the job row disappears.
func (u *ServiceJobUseCase) Delete(ctx context.Context, id, userID string) error {
	job, err := u.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	payments, err := u.paymentRepo.ListByServiceID(ctx, job.ID)
	if err != nil {
		return err
	}
	for _, p := range payments {
		if err := u.paymentRepo.Delete(ctx, p.ID); err != nil {
			log.Printf("[service][usecase] payment cleanup failed service_id=%s payment_id=%s err=%v", job.ID, p.ID, err)
			return err
		}
	}

	return u.serviceRepo.Delete(ctx, job.ID)
}

func isValidServiceStatus(s entities.ServiceStatus) bool {
	switch s {
	case entities.ServiceStatusPending, entities.ServiceStatusOngoing, entities.ServiceStatusCompleted:
		return true
	}
	return false
}

func sortJobsNewestFirst(jobs []entities.ServiceJob) {
	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
}
