package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"garage_manager/internal/domain/entities"
	mock_interfaces "garage_manager/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newPaymentUseCaseWithMocks(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIServiceJobRepository, *mock_interfaces.MockICarRepository, *mock_interfaces.MockIPaymentGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	serviceRepo := mock_interfaces.NewMockIServiceJobRepository(ctrl)
	carRepo := mock_interfaces.NewMockICarRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewPaymentUseCase(paymentRepo, serviceRepo, carRepo, gateway), paymentRepo, serviceRepo, carRepo, gateway
}

func ownedJob() entities.ServiceJob {
	return entities.ServiceJob{
		ID:            "job-1",
		CarID:         "car-1",
		CreatedBy:     "user-1",
		TotalCost:     150,
		AmountPaid:    0,
		PaymentStatus: entities.PaymentStatusUnpaid,
		Status:        entities.ServiceStatusOngoing,
	}
}

func TestPaymentUseCase_AddPayment_Validations(t *testing.T) {
	t.Run("empty service id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.AddPayment(context.Background(), "  ", "user-1", 10)
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("bad amounts", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
			if _, err := uc.AddPayment(context.Background(), "job-1", "user-1", amount); !errors.Is(err, ErrInvalidPaymentAmount) {
				t.Fatalf("amount %v: expected ErrInvalidPaymentAmount, got %v", amount, err)
			}
		}
	})

	t.Run("job owned by another user", func(t *testing.T) {
		uc, _, serviceRepo, _, _ := newPaymentUseCaseWithMocks(t)
		job := ownedJob()
		job.CreatedBy = "someone-else"
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.AddPayment(context.Background(), "job-1", "user-1", 10)
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_AddPayment_Reconciliation(t *testing.T) {
	t.Run("partial then paid", func(t *testing.T) {
		uc, paymentRepo, serviceRepo, _, _ := newPaymentUseCaseWithMocks(t)

		job := ownedJob()
		paid := 0.0
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Times(2).DoAndReturn(
			func(_ context.Context, _ string) (entities.ServiceJob, error) {
				j := job
				j.AmountPaid = paid
				return j, nil
			},
		)
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).Times(2).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" || p.ServiceID != "job-1" || p.CarID != "car-1" || p.CreatedBy != "user-1" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)
		serviceRepo.EXPECT().ApplyPaymentDelta(gomock.Any(), "job-1", gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, _ string, delta float64) (entities.ServiceJob, error) {
				paid += delta
				j := job
				j.AmountPaid = paid
				return j, nil
			},
		)
		gomock.InOrder(
			serviceRepo.EXPECT().SetPaymentStatus(gomock.Any(), "job-1", entities.PaymentStatusPartial).Return(nil),
			serviceRepo.EXPECT().SetPaymentStatus(gomock.Any(), "job-1", entities.PaymentStatusPaid).Return(nil),
		)

		if _, err := uc.AddPayment(context.Background(), "job-1", "user-1", 60); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.AddPayment(context.Background(), "job-1", "user-1", 90); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid != 150 {
			t.Fatalf("expected amount paid 150, got %v", paid)
		}
	})

	t.Run("ledger failure rolls the payment back", func(t *testing.T) {
		uc, paymentRepo, serviceRepo, _, _ := newPaymentUseCaseWithMocks(t)

		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(ownedJob(), nil)
		var createdID string
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				createdID = p.ID
				return p, nil
			},
		)
		serviceRepo.EXPECT().ApplyPaymentDelta(gomock.Any(), "job-1", 60.0).Return(entities.ServiceJob{}, errors.New("db down"))
		paymentRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != createdID {
					t.Fatalf("rollback deleted wrong payment: %s", id)
				}
				return nil
			},
		)

		_, err := uc.AddPayment(context.Background(), "job-1", "user-1", 60)
		if err == nil || err.Error() != "db down" {
			t.Fatalf("expected db down error, got %v", err)
		}
	})
}

func TestPaymentUseCase_DeletePayment(t *testing.T) {
	t.Run("not found for other user", func(t *testing.T) {
		uc, paymentRepo, _, _, _ := newPaymentUseCaseWithMocks(t)
		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", CreatedBy: "someone-else"}, nil)

		if err := uc.DeletePayment(context.Background(), "pay-1", "user-1"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("reverses the job before deleting", func(t *testing.T) {
		uc, paymentRepo, serviceRepo, _, _ := newPaymentUseCaseWithMocks(t)

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{
			ID: "pay-1", ServiceID: "job-1", CarID: "car-1", CreatedBy: "user-1", Amount: 60,
		}, nil)
		job := ownedJob()
		job.AmountPaid = 150
		job.PaymentStatus = entities.PaymentStatusPaid
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		reversed := job
		reversed.AmountPaid = 90
		gomock.InOrder(
			serviceRepo.EXPECT().ApplyPaymentDelta(gomock.Any(), "job-1", -60.0).Return(reversed, nil),
			serviceRepo.EXPECT().SetPaymentStatus(gomock.Any(), "job-1", entities.PaymentStatusPartial).Return(nil),
			paymentRepo.EXPECT().Delete(gomock.Any(), "pay-1").Return(nil),
		)

		if err := uc.DeletePayment(context.Background(), "pay-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("orphaned payment still deletable", func(t *testing.T) {
		uc, paymentRepo, serviceRepo, _, _ := newPaymentUseCaseWithMocks(t)

		paymentRepo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{
			ID: "pay-1", ServiceID: "job-gone", CreatedBy: "user-1", Amount: 60,
		}, nil)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-gone").Return(entities.ServiceJob{}, nil)
		paymentRepo.EXPECT().Delete(gomock.Any(), "pay-1").Return(nil)

		if err := uc.DeletePayment(context.Background(), "pay-1", "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_CollectOnline(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.CollectOnline(context.Background(), "job-1", "user-1", nil)
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("nothing outstanding", func(t *testing.T) {
		uc, _, serviceRepo, _, _ := newPaymentUseCaseWithMocks(t)
		job := ownedJob()
		job.AmountPaid = 150
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.CollectOnline(context.Background(), "job-1", "user-1", nil)
		if !errors.Is(err, ErrNothingOutstanding) {
			t.Fatalf("expected ErrNothingOutstanding, got %v", err)
		}
	})

	t.Run("denied charge is not recorded", func(t *testing.T) {
		uc, _, serviceRepo, _, gateway := newPaymentUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(ownedJob(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "rejected", json.RawMessage(`{}`), nil)

		_, err := uc.CollectOnline(context.Background(), "job-1", "user-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrOnlinePaymentDenied) {
			t.Fatalf("expected ErrOnlinePaymentDenied, got %v", err)
		}
	})

	t.Run("approved charge records the outstanding balance", func(t *testing.T) {
		uc, paymentRepo, serviceRepo, _, gateway := newPaymentUseCaseWithMocks(t)

		job := ownedJob()
		job.AmountPaid = 50
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway payload not json: %v", err)
				}
				if m["transaction_amount"] != 100.0 {
					t.Fatalf("charge must equal the outstanding balance, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "job-1" {
					t.Fatalf("missing external reference: %v", m)
				}
				return "mp-1", "approved", payload, nil
			},
		)
		paymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Amount != 100 {
					t.Fatalf("expected recorded amount 100, got %v", p.Amount)
				}
				return p, nil
			},
		)
		settled := job
		settled.AmountPaid = 150
		serviceRepo.EXPECT().ApplyPaymentDelta(gomock.Any(), "job-1", 100.0).Return(settled, nil)
		serviceRepo.EXPECT().SetPaymentStatus(gomock.Any(), "job-1", entities.PaymentStatusPaid).Return(nil)

		p, err := uc.CollectOnline(context.Background(), "job-1", "user-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Amount != 100 || p.CreatedAt.After(time.Now().Add(time.Minute)) {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})
}

func TestPaymentUseCase_Reads(t *testing.T) {
	t.Run("list by service checks ownership", func(t *testing.T) {
		uc, _, serviceRepo, _, _ := newPaymentUseCaseWithMocks(t)
		serviceRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.ServiceJob{}, nil)

		if _, err := uc.ListByServiceID(context.Background(), "job-1", "user-1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("list by car filters and sorts", func(t *testing.T) {
		uc, paymentRepo, _, carRepo, _ := newPaymentUseCaseWithMocks(t)
		carRepo.EXPECT().GetByID(gomock.Any(), "car-1").Return(entities.Car{ID: "car-1", UserID: "user-1"}, nil)
		now := time.Now()
		paymentRepo.EXPECT().ListByCarID(gomock.Any(), "car-1").Return([]entities.Payment{
			{ID: "old", CreatedBy: "user-1", CreatedAt: now.Add(-time.Hour)},
			{ID: "foreign", CreatedBy: "someone-else", CreatedAt: now},
			{ID: "new", CreatedBy: "user-1", CreatedAt: now},
		}, nil)

		got, err := uc.ListByCarID(context.Background(), "car-1", "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
