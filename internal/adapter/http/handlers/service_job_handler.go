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

var errInvalidServicePayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_INPUT", "Invalid service payload", http.StatusBadRequest)

// ServiceJobHandler handles HTTP requests for service jobs.

type ServiceJobHandler struct {
	usecase usecase.IServiceJobUseCase
}

func NewServiceJobHandler(uc usecase.IServiceJobUseCase) *ServiceJobHandler {
	return &ServiceJobHandler{usecase: uc}
}

func (h *ServiceJobHandler) CreateService(c *gin.Context) {
	var payload request.ServiceJobCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Create(c.Request.Context(), userID(c), usecase.ServiceJobInput{
		CarID:           payload.CarID,
		PackageID:       payload.PackageID,
		WorkDescription: payload.WorkDescription,
		PartsUsed:       payload.PartsUsed,
		LaborCost:       payload.LaborCost,
		TotalCost:       payload.TotalCost,
		Status:          payload.Status,
		Notes:           payload.Notes,
	})
	if err != nil {
		log.Printf("[service][handler] create failed user_id=%s err=%v", userID(c), err)
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[service][handler] create success service_id=%s user_id=%s", job.ID, userID(c))

	c.JSON(http.StatusCreated, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) GetService(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) ListServices(c *gin.Context) {
	jobs, err := h.usecase.ListByUserID(c.Request.Context(), userID(c))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceJobs(jobs))
}

func (h *ServiceJobHandler) ListServicesByCar(c *gin.Context) {
	jobs, err := h.usecase.ListByCarID(c.Request.Context(), c.Param("car_id"), userID(c))
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceJobs(jobs))
}

func (h *ServiceJobHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceJobUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicePayload.HTTPStatus, errInvalidServicePayload.ToHTTPError())
		return
	}

	job, err := h.usecase.Update(c.Request.Context(), c.Param("id"), userID(c), usecase.ServiceJobPatch{
		WorkDescription: payload.WorkDescription,
		PartsUsed:       payload.PartsUsed,
		LaborCost:       payload.LaborCost,
		TotalCost:       payload.TotalCost,
		Status:          payload.Status,
		Notes:           payload.Notes,
	})
	if err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServiceJob(job))
}

func (h *ServiceJobHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		appErr := mapServiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[service][handler] delete success service_id=%s user_id=%s", c.Param("id"), userID(c))
	c.Status(http.StatusNoContent)
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidCarID),
		errors.Is(err, usecase.ErrMissingWorkDescription),
		errors.Is(err, usecase.ErrInvalidServiceCost),
		errors.Is(err, usecase.ErrInvalidServiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCarNotFound):
		return pkg.NewDomainErrorSimple("CAR_NOT_FOUND", "Car not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
