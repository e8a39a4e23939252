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

var errInvalidCarPayload = pkg.NewDomainErrorSimple("INVALID_CAR_INPUT", "Invalid car payload", http.StatusBadRequest)

// CarHandler handles HTTP requests for registered cars.

type CarHandler struct {
	usecase usecase.ICarUseCase
}

func NewCarHandler(uc usecase.ICarUseCase) *CarHandler {
	return &CarHandler{usecase: uc}
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	var payload request.CarRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCarPayload.HTTPStatus, errInvalidCarPayload.ToHTTPError())
		return
	}

	car, err := h.usecase.Create(c.Request.Context(), userID(c), carInput(payload))
	if err != nil {
		log.Printf("[car][handler] create failed user_id=%s err=%v", userID(c), err)
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[car][handler] create success car_id=%s user_id=%s", car.ID, userID(c))

	c.JSON(http.StatusCreated, response.FromCar(car))
}

func (h *CarHandler) GetCar(c *gin.Context) {
	car, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCar(car))
}

func (h *CarHandler) ListCars(c *gin.Context) {
	cars, err := h.usecase.ListByUserID(c.Request.Context(), userID(c))
	if err != nil {
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCars(cars))
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	var payload request.CarRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCarPayload.HTTPStatus, errInvalidCarPayload.ToHTTPError())
		return
	}

	car, err := h.usecase.Update(c.Request.Context(), c.Param("id"), userID(c), carInput(payload))
	if err != nil {
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCar(car))
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[car][handler] delete success car_id=%s user_id=%s", c.Param("id"), userID(c))
	c.Status(http.StatusNoContent)
}

func carInput(payload request.CarRequest) usecase.CarInput {
	return usecase.CarInput{
		OwnerName:   payload.OwnerName,
		Phone:       payload.Phone,
		PlateNumber: payload.PlateNumber,
		Brand:       payload.Brand,
		Model:       payload.Model,
		Year:        payload.Year,
		Color:       payload.Color,
		Status:      payload.Status,
		Notes:       payload.Notes,
	}
}

func mapCarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCarID), errors.Is(err, usecase.ErrMissingCarFields), errors.Is(err, usecase.ErrInvalidCarStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCarNotFound):
		return pkg.NewDomainErrorSimple("CAR_NOT_FOUND", "Car not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
