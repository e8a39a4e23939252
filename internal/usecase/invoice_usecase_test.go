package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase/interfaces"
	mock_interfaces "garage_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func completedJob() entities.ServiceJob {
	return entities.ServiceJob{
		ID:              "job-1",
		CarID:           "car-1",
		CreatedBy:       "user-1",
		WorkDescription: "Engine noise",
		PartsUsed:       `[{"name":"Filter","qty":2,"price":25}]`,
		LaborCost:       100,
		TotalCost:       150,
		AmountPaid:      60,
		PaymentStatus:   entities.PaymentStatusPartial,
		Status:          entities.ServiceStatusCompleted,
		Notes:           "Replaced filter",
	}
}

func jobCar() entities.Car {
	return entities.Car{
		ID:          "car-1",
		UserID:      "user-1",
		OwnerName:   "Maria",
		Phone:       "555-0101",
		PlateNumber: "ABC-1234",
		Brand:       "Fiat",
		Model:       "Uno",
		Year:        "2014",
		Color:       "red",
	}
}

func newInvoiceUseCaseWithMocks(t *testing.T) (*InvoiceUseCase, *mock_interfaces.MockIInvoiceRepository, *mock_interfaces.MockIInvoiceCounterRepository, *mock_interfaces.MockIServiceJobRepository, *mock_interfaces.MockICarRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	invoiceRepo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	counterRepo := mock_interfaces.NewMockIInvoiceCounterRepository(ctrl)
	serviceRepo := mock_interfaces.NewMockIServiceJobRepository(ctrl)
	carRepo := mock_interfaces.NewMockICarRepository(ctrl)
	return NewInvoiceUseCase(invoiceRepo, counterRepo, serviceRepo, carRepo), invoiceRepo, counterRepo, serviceRepo, carRepo
}

func TestInvoiceUseCase_GenerateInvoice_Preconditions(t *testing.T) {
	t.Run("empty service id", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil)
		_, err := uc.GenerateInvoice(context.Background(), "  ", "user-1", "")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("service not found", func(t *testing.T) {
		uc, _, _, serviceRepo, _ := newInvoiceUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.ServiceJob{}, nil)

		_, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("forbidden for another user's job", func(t *testing.T) {
		uc, _, _, serviceRepo, _ := newInvoiceUseCaseWithMocks(t)
		job := completedJob()
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.GenerateInvoice(context.Background(), "job-1", "intruder", "")
		if !errors.Is(err, ErrNotServiceOwner) {
			t.Fatalf("expected ErrNotServiceOwner, got %v", err)
		}
	})

	t.Run("pending job cannot be invoiced and no sequence is drawn", func(t *testing.T) {
		uc, _, _, serviceRepo, _ := newInvoiceUseCaseWithMocks(t)
		job := completedJob()
		job.Status = entities.ServiceStatusPending
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		// Counter mock has no expectations: any NextSequence call fails the test.
		_, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "")
		if !errors.Is(err, ErrServiceNotCompleted) {
			t.Fatalf("expected ErrServiceNotCompleted, got %v", err)
		}
	})

	t.Run("existing invoice returns conflict with its id", func(t *testing.T) {
		uc, invoiceRepo, _, serviceRepo, _ := newInvoiceUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{ID: "job-1", UserID: "user-1", InvoiceNumber: "INV-2026-000004"}, nil)

		existing, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "")
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
		if existing.ID != "job-1" {
			t.Fatalf("conflict must carry the existing invoice id, got %+v", existing)
		}
	})

	t.Run("car no longer exists", func(t *testing.T) {
		uc, invoiceRepo, _, serviceRepo, carRepo := newInvoiceUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{}, nil)
		carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(entities.Car{}, nil)

		_, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "")
		if !errors.Is(err, ErrCarNotFound) {
			t.Fatalf("expected ErrCarNotFound, got %v", err)
		}
	})
}

func TestInvoiceUseCase_GenerateInvoice_Success(t *testing.T) {
	uc, invoiceRepo, counterRepo, serviceRepo, carRepo := newInvoiceUseCaseWithMocks(t)

	serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
	invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{}, nil)
	carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(jobCar(), nil)
	counterRepo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Return(int64(7), nil)
	invoiceRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Invoice{})).DoAndReturn(
		func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		},
	)

	inv, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "cash on pickup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantNumber := fmt.Sprintf("INV-%d-000007", time.Now().UTC().Year())
	if inv.InvoiceNumber != wantNumber {
		t.Fatalf("expected invoice number %s, got %s", wantNumber, inv.InvoiceNumber)
	}
	if inv.ID != "job-1" || inv.ServiceID != "job-1" || inv.UserID != "user-1" {
		t.Fatalf("unexpected identity fields: %+v", inv)
	}
	if inv.CustomerSnapshot.OwnerName != "Maria" || inv.CustomerSnapshot.PlateNumber != "ABC-1234" {
		t.Fatalf("unexpected customer snapshot: %+v", inv.CustomerSnapshot)
	}
	// partsTotal = 2*25 = 50, so otherCost = max(0, 150-100-50) = 0.
	if len(inv.ServiceSnapshot.Parts) != 1 || inv.ServiceSnapshot.Parts[0].LineTotal != 50 {
		t.Fatalf("unexpected parts snapshot: %+v", inv.ServiceSnapshot.Parts)
	}
	if inv.ServiceSnapshot.LaborCost != 100 || inv.ServiceSnapshot.TotalCost != 150 || inv.ServiceSnapshot.OtherCost != 0 {
		t.Fatalf("unexpected cost snapshot: %+v", inv.ServiceSnapshot)
	}
	if inv.PaymentSnapshot.AmountPaid != 60 || inv.PaymentSnapshot.PaymentStatus != entities.PaymentStatusPartial {
		t.Fatalf("unexpected payment snapshot: %+v", inv.PaymentSnapshot)
	}
	if inv.Notes != "cash on pickup" || inv.IssuedAt.IsZero() {
		t.Fatalf("unexpected notes/issued_at: %+v", inv)
	}
}

func TestInvoiceUseCase_GenerateInvoice_OtherCostAbsorbsRemainder(t *testing.T) {
	uc, invoiceRepo, counterRepo, serviceRepo, carRepo := newInvoiceUseCaseWithMocks(t)

	job := completedJob()
	job.PartsUsed = "not valid json"
	job.LaborCost = 40
	job.TotalCost = 100
	serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{}, nil)
	carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(jobCar(), nil)
	counterRepo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
			return inv, nil
		},
	)

	inv, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inv.ServiceSnapshot.Parts) != 0 {
		t.Fatalf("malformed parts must degrade to empty, got %+v", inv.ServiceSnapshot.Parts)
	}
	if inv.ServiceSnapshot.OtherCost != 60 {
		t.Fatalf("expected other cost 60, got %v", inv.ServiceSnapshot.OtherCost)
	}
}

func TestInvoiceUseCase_GenerateInvoice_NumberCollisionRetry(t *testing.T) {
	t.Run("fresh number drawn per attempt", func(t *testing.T) {
		uc, invoiceRepo, counterRepo, serviceRepo, carRepo := newInvoiceUseCaseWithMocks(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{}, nil)
		carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(jobCar(), nil)

		seq := int64(0)
		counterRepo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
			func(_ context.Context, _ int) (int64, error) {
				seq++
				return seq, nil
			},
		)
		gomock.InOrder(
			invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, interfaces.ErrInvoiceNumberTaken),
			invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, interfaces.ErrInvoiceNumberTaken),
			invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
					return inv, nil
				},
			),
		)

		inv, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantNumber := fmt.Sprintf("INV-%d-000003", time.Now().UTC().Year())
		if inv.InvoiceNumber != wantNumber {
			t.Fatalf("expected %s after two collisions, got %s", wantNumber, inv.InvoiceNumber)
		}
	})

	t.Run("gives up after three attempts", func(t *testing.T) {
		uc, invoiceRepo, counterRepo, serviceRepo, carRepo := newInvoiceUseCaseWithMocks(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{}, nil)
		carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(jobCar(), nil)
		counterRepo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Times(3).Return(int64(9), nil)
		invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(3).Return(entities.Invoice{}, interfaces.ErrInvoiceNumberTaken)

		_, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "")
		if !errors.Is(err, ErrInvoiceNumberExhausted) {
			t.Fatalf("expected ErrInvoiceNumberExhausted, got %v", err)
		}
	})

	t.Run("lost create race maps to conflict", func(t *testing.T) {
		uc, invoiceRepo, counterRepo, serviceRepo, carRepo := newInvoiceUseCaseWithMocks(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(completedJob(), nil)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{}, nil)
		carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(jobCar(), nil)
		counterRepo.EXPECT().NextSequence(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		invoiceRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, interfaces.ErrServiceAlreadyInvoiced)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{ID: "job-1", UserID: "user-1"}, nil)

		existing, err := uc.GenerateInvoice(context.Background(), "job-1", "user-1", "")
		if !errors.Is(err, ErrInvoiceAlreadyExists) {
			t.Fatalf("expected ErrInvoiceAlreadyExists, got %v", err)
		}
		if existing.ID != "job-1" {
			t.Fatalf("expected existing invoice id, got %+v", existing)
		}
	})
}

func TestInvoiceUseCase_Reads(t *testing.T) {
	t.Run("get by id scoped to owner", func(t *testing.T) {
		uc, invoiceRepo, _, _, _ := newInvoiceUseCaseWithMocks(t)
		invoiceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Invoice{ID: "job-1", UserID: "someone-else"}, nil)

		_, err := uc.GetByID(context.Background(), "job-1", "user-1")
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("list sorted newest first", func(t *testing.T) {
		uc, invoiceRepo, _, _, _ := newInvoiceUseCaseWithMocks(t)
		old := entities.Invoice{ID: "a", UserID: "user-1", IssuedAt: time.Now().Add(-time.Hour)}
		recent := entities.Invoice{ID: "b", UserID: "user-1", IssuedAt: time.Now()}
		invoiceRepo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Invoice{old, recent}, nil)

		got, err := uc.ListByUserID(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "b" {
			t.Fatalf("expected newest first, got %+v", got)
		}
	})
}
