package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garage_manager/internal/adapter/http/handlers/mocks"
	"garage_manager/internal/domain/entities"
	"garage_manager/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(t *testing.T) (*gin.Engine, *mocks.MockIInvoiceUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	h := NewInvoiceHandler(uc)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(UserIDKey, "user-1") })
	r.POST("/v1/invoices", h.GenerateInvoice)
	r.GET("/v1/invoices", h.ListInvoices)
	r.GET("/v1/invoices/service/:service_id", h.GetInvoiceByService)
	r.GET("/v1/invoices/:id", h.GetInvoice)
	return r, uc
}

func TestInvoiceHandler_GenerateInvoice(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newInvoiceRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("service not completed", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		uc.EXPECT().GenerateInvoice(gomock.Any(), "job-1", "user-1", "").Return(entities.Invoice{}, usecase.ErrServiceNotCompleted)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"service_id":"job-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("conflict carries the existing invoice id", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		existing := entities.Invoice{ID: "job-1", InvoiceNumber: "INV-2026-000004"}
		uc.EXPECT().GenerateInvoice(gomock.Any(), "job-1", "user-1", "").Return(existing, usecase.ErrInvoiceAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"service_id":"job-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["invoice_id"] != "job-1" {
			t.Fatalf("expected existing invoice id in body, got: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		inv := entities.Invoice{
			ID:            "job-1",
			UserID:        "user-1",
			InvoiceNumber: "INV-2026-000007",
			ServiceID:     "job-1",
			CarID:         "car-1",
			IssuedAt:      time.Now().UTC(),
		}
		uc.EXPECT().GenerateInvoice(gomock.Any(), "job-1", "user-1", "winter check").Return(inv, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"service_id":"job-1","notes":"winter check"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["invoice_number"] != "INV-2026-000007" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_Reads(t *testing.T) {
	t.Run("get by service", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		uc.EXPECT().GetByServiceID(gomock.Any(), "job-1", "user-1").Return(entities.Invoice{ID: "job-1", InvoiceNumber: "INV-2026-000001"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/service/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newInvoiceRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "inv-x", "user-1").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapInvoiceError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidInvoiceID, http.StatusBadRequest},
		{usecase.ErrInvalidServiceID, http.StatusBadRequest},
		{usecase.ErrNotServiceOwner, http.StatusForbidden},
		{usecase.ErrServiceNotFound, http.StatusNotFound},
		{usecase.ErrCarNotFound, http.StatusNotFound},
		{usecase.ErrServiceNotCompleted, http.StatusUnprocessableEntity},
		{usecase.ErrInvoiceNotFound, http.StatusNotFound},
		{usecase.ErrInvoiceNumberExhausted, http.StatusInternalServerError},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapInvoiceError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
