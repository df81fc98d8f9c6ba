package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/service"
	"github.com/tripveda/agency-backend/internal/util"
)

type UploadHandler struct {
	uploads *service.UploadService
}

func RegisterUploads(e *echo.Echo, uploads *service.UploadService, guards Guards) {
	handler := &UploadHandler{uploads: uploads}

	e.POST("/api/admin/uploads/images", handler.uploadImage, guards.AdminKey, guards.Write)
}

func (h *UploadHandler) uploadImage(c echo.Context) error {
	var req service.UploadInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	stored, err := h.uploads.Store(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			return c.JSON(http.StatusRequestEntityTooLarge, util.Error(err.Error()))
		case errors.Is(err, service.ErrUploadMissing),
			errors.Is(err, service.ErrUploadInvalid),
			errors.Is(err, service.ErrUploadEmpty),
			errors.Is(err, service.ErrUploadNotImage):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error(err.Error()))
		}
	}
	return c.JSON(http.StatusCreated, util.Data(stored))
}
