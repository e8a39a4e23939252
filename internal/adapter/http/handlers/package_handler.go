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

var errInvalidPackagePayload = pkg.NewDomainErrorSimple("INVALID_PACKAGE_INPUT", "Invalid package payload", http.StatusBadRequest)

// PackageHandler handles HTTP requests for service packages.

type PackageHandler struct {
	usecase usecase.IPackageUseCase
}

func NewPackageHandler(uc usecase.IPackageUseCase) *PackageHandler {
	return &PackageHandler{usecase: uc}
}

func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var payload request.PackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	pkgEntity, err := h.usecase.Create(c.Request.Context(), userID(c), packageInput(payload))
	if err != nil {
		log.Printf("[package][handler] create failed user_id=%s err=%v", userID(c), err)
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[package][handler] create success package_id=%s user_id=%s", pkgEntity.ID, userID(c))

	c.JSON(http.StatusCreated, response.FromPackage(pkgEntity))
}

func (h *PackageHandler) GetPackage(c *gin.Context) {
	pkgEntity, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), userID(c))
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackage(pkgEntity))
}

func (h *PackageHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.usecase.ListByUserID(c.Request.Context(), userID(c))
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackages(pkgs))
}

func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var payload request.PackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	pkgEntity, err := h.usecase.Update(c.Request.Context(), c.Param("id"), userID(c), packageInput(payload))
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackage(pkgEntity))
}

func (h *PackageHandler) DeletePackage(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), userID(c)); err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func packageInput(payload request.PackageRequest) usecase.PackageInput {
	return usecase.PackageInput{
		Number:      payload.Number,
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
	}
}

func mapPackageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPackageID), errors.Is(err, usecase.ErrMissingPackageFields), errors.Is(err, usecase.ErrInvalidPackagePrice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
