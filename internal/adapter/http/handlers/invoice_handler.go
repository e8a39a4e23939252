package handlers

import (
	"errors"
	"log"
	"net/http"

	request "garage_manager/internal/adapter/http/dto/request"
	response "garage_manager/internal/adapter/http/dto/response"
	"garage_manager/internal/usecase"
	"garage_manager/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles HTTP requests for invoices.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GenerateInvoice freezes a completed service job into an invoice. When the
// job is already invoiced the 409 body carries the existing invoice id so the
// client can redirect to it.
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var payload request.InvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] generate start service_id=%s user_id=%s", payload.ServiceID, userID(c))

	inv, err := h.usecase.GenerateInvoice(c.Request.Context(), payload.ServiceID, userID(c), payload.Notes)
	if err != nil {
		if errors.Is(err, usecase.ErrInvoiceAlreadyExists) {
			log.Printf("[invoice][handler] conflict service_id=%s invoice_id=%s", payload.ServiceID, inv.ID)
			c.JSON(http.StatusConflict, response.NewInvoiceConflict(
				"INVOICE_ALREADY_EXISTS", "Invoice already exists for this service", inv.ID,
			))
			return
		}
		log.Printf("[invoice][handler] generate failed service_id=%s err=%v", payload.ServiceID, err)
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[invoice][handler] generate success service_id=%s invoice_number=%s", payload.ServiceID, inv.InvoiceNumber)

	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) GetInvoiceByService(c *gin.Context) {
	inv, err := h.usecase.GetByServiceID(c.Request.Context(), c.Param("service_id"), userID(c))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListByUserID(c.Request.Context(), userID(c))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotServiceOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Service belongs to another user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarNotFound):
		return pkg.NewDomainErrorSimple("CAR_NOT_FOUND", "Car not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotCompleted):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_COMPLETED", "Service must be completed before invoicing", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNumberExhausted):
		return pkg.NewDomainError("INVOICE_NUMBER_EXHAUSTED", "Could not allocate a unique invoice number", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
