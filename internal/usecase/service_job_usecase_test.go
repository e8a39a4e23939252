package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"garage_manager/internal/domain/entities"
	mock_interfaces "garage_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newServiceJobUseCaseWithMocks(t *testing.T) (*ServiceJobUseCase, *mock_interfaces.MockIServiceJobRepository, *mock_interfaces.MockICarRepository, *mock_interfaces.MockIPackageRepository, *mock_interfaces.MockIPaymentRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	serviceRepo := mock_interfaces.NewMockIServiceJobRepository(ctrl)
	carRepo := mock_interfaces.NewMockICarRepository(ctrl)
	packageRepo := mock_interfaces.NewMockIPackageRepository(ctrl)
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	return NewServiceJobUseCase(serviceRepo, carRepo, packageRepo, paymentRepo), serviceRepo, carRepo, packageRepo, paymentRepo
}

func TestServiceJobUseCase_Create(t *testing.T) {
	t.Run("requires a work description", func(t *testing.T) {
		uc, _, _, _, _ := newServiceJobUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), "user-1", ServiceJobInput{CarID: "car-1"})
		if !errors.Is(err, ErrMissingWorkDescription) {
			t.Fatalf("expected ErrMissingWorkDescription, got %v", err)
		}
	})

	t.Run("rejects negative costs", func(t *testing.T) {
		uc, _, _, _, _ := newServiceJobUseCaseWithMocks(t)
		_, err := uc.Create(context.Background(), "user-1", ServiceJobInput{
			CarID:           "car-1",
			WorkDescription: "Brake pads",
			TotalCost:       -10,
		})
		if !errors.Is(err, ErrInvalidServiceCost) {
			t.Fatalf("expected ErrInvalidServiceCost, got %v", err)
		}
	})

	t.Run("rejects a car owned by someone else", func(t *testing.T) {
		uc, _, carRepo, _, _ := newServiceJobUseCaseWithMocks(t)
		carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(entities.Car{ID: "car-1", UserID: "someone-else"}, nil)

		_, err := uc.Create(context.Background(), "user-1", ServiceJobInput{
			CarID:           "car-1",
			WorkDescription: "Brake pads",
		})
		if !errors.Is(err, ErrCarNotFound) {
			t.Fatalf("expected ErrCarNotFound, got %v", err)
		}
	})

	t.Run("derives the payment status from the total", func(t *testing.T) {
		uc, serviceRepo, carRepo, _, _ := newServiceJobUseCaseWithMocks(t)
		carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(entities.Car{ID: "car-1", UserID: "user-1"}, nil)
		serviceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.ServiceJob) (entities.ServiceJob, error) {
				if job.ID == "" || job.CreatedBy != "user-1" {
					t.Fatalf("unexpected job: %+v", job)
				}
				if job.AmountPaid != 0 || job.PaymentStatus != entities.PaymentStatusUnpaid {
					t.Fatalf("fresh job must start unpaid, got %+v", job)
				}
				if job.Status != entities.ServiceStatusPending {
					t.Fatalf("expected default status pending, got %s", job.Status)
				}
				return job, nil
			},
		)

		if _, err := uc.Create(context.Background(), "user-1", ServiceJobInput{
			CarID:           "car-1",
			WorkDescription: "Brake pads",
			LaborCost:       80,
			TotalCost:       200,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("freezes the package terms at creation", func(t *testing.T) {
		uc, serviceRepo, carRepo, packageRepo, _ := newServiceJobUseCaseWithMocks(t)
		carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(entities.Car{ID: "car-1", UserID: "user-1"}, nil)
		packageRepo.EXPECT().GetByID(gomock.Any(), "pkg-1").Return(entities.ServicePackage{
			ID: "pkg-1", UserID: "user-1", Number: "P-10", Name: "Full revision", Description: "Oil, filters, brakes", Price: 350,
		}, nil)
		serviceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.ServiceJob) (entities.ServiceJob, error) {
				if job.PackageSnapshot == nil {
					t.Fatal("expected a package snapshot")
				}
				if job.PackageSnapshot.Name != "Full revision" || job.PackageSnapshot.Price != 350 {
					t.Fatalf("unexpected snapshot: %+v", job.PackageSnapshot)
				}
				return job, nil
			},
		)

		if _, err := uc.Create(context.Background(), "user-1", ServiceJobInput{
			CarID:           "car-1",
			PackageID:       "pkg-1",
			WorkDescription: "Full revision",
			TotalCost:       350,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceJobUseCase_Update(t *testing.T) {
	t.Run("cost change re-derives the payment status", func(t *testing.T) {
		uc, serviceRepo, _, _, _ := newServiceJobUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.ServiceJob{
			ID:            "job-1",
			CarID:         "car-1",
			CreatedBy:     "user-1",
			TotalCost:     200,
			AmountPaid:    150,
			PaymentStatus: entities.PaymentStatusPartial,
		}, nil)
		serviceRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.ServiceJob) (entities.ServiceJob, error) {
				if job.TotalCost != 150 {
					t.Fatalf("expected total 150, got %v", job.TotalCost)
				}
				if job.PaymentStatus != entities.PaymentStatusPaid {
					t.Fatalf("lowering the total to the paid amount must settle the job, got %s", job.PaymentStatus)
				}
				return job, nil
			},
		)

		total := 150.0
		if _, err := uc.Update(context.Background(), "job-1", "user-1", ServiceJobPatch{TotalCost: &total}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		uc, serviceRepo, _, _, _ := newServiceJobUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.ServiceJob{
			ID: "job-1", CreatedBy: "user-1",
		}, nil)

		if _, err := uc.Update(context.Background(), "job-1", "user-1", ServiceJobPatch{Status: "shipped"}); !errors.Is(err, ErrInvalidServiceStatus) {
			t.Fatalf("expected ErrInvalidServiceStatus, got %v", err)
		}
	})
}

func TestServiceJobUseCase_Delete(t *testing.T) {
	t.Run("removes the ledger payments first", func(t *testing.T) {
		uc, serviceRepo, _, _, paymentRepo := newServiceJobUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.ServiceJob{
			ID: "job-1", CreatedBy: "user-1",
		}, nil)
		gomock.InOrder(
			paymentRepo.EXPECT().ListByServiceID(gomock.Any(), "job-1").Return([]entities.Payment{
				{ID: "pay-1"}, {ID: "pay-2"},
			}, nil),
			paymentRepo.EXPECT().Delete(gomock.Any(), "pay-1").Return(nil),
			paymentRepo.EXPECT().Delete(gomock.Any(), "pay-2").Return(nil),
			serviceRepo.EXPECT().Delete(gomock.Any(), "job-1").Return(nil),
		)

		if err := uc.Delete(context.Background(), "job-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("a payment cleanup failure keeps the job", func(t *testing.T) {
		uc, serviceRepo, _, _, paymentRepo := newServiceJobUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.ServiceJob{
			ID: "job-1", CreatedBy: "user-1",
		}, nil)
		paymentRepo.EXPECT().ListByServiceID(gomock.Any(), "job-1").Return([]entities.Payment{{ID: "pay-1"}}, nil)
		paymentRepo.EXPECT().Delete(gomock.Any(), "pay-1").Return(errors.New("db down"))

		if err := uc.Delete(context.Background(), "job-1", "user-1"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestServiceJobUseCase_ListByCarID(t *testing.T) {
	uc, serviceRepo, carRepo, _, _ := newServiceJobUseCaseWithMocks(t)
	carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(entities.Car{ID: "car-1", UserID: "user-1"}, nil)
	now := time.Now()
	serviceRepo.EXPECT().ListByCarID(gomock.Any(), "car-1").Return([]entities.ServiceJob{
		{ID: "old", CreatedBy: "user-1", CreatedAt: now.Add(-time.Hour)},
		{ID: "new", CreatedBy: "user-1", CreatedAt: now},
	}, nil)

	jobs, err := uc.ListByCarID(context.Background(), "car-1", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 2 || jobs[0].ID != "new" || jobs[1].ID != "old" {
		t.Fatalf("unexpected order: %+v", jobs)
	}
}
