package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/util"
)

// RegisterAdminVerify exposes the probe the admin panel calls at login to
// check its stored key before showing any screens.
func RegisterAdminVerify(e *echo.Echo, guards Guards) {
	e.GET("/api/admin/verify", func(c echo.Context) error {
		return c.JSON(http.StatusOK, util.Envelope{"valid": true})
	}, guards.AdminKey)
}
