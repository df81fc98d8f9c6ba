package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/service"
	"github.com/tripveda/agency-backend/internal/util"
)

// Guards bundles the middleware every admin route chain needs. The key check
// runs on the whole admin group; the write guard only wraps mutating routes so
// a read-only database role can still browse the panel.
type Guards struct {
	AdminKey echo.MiddlewareFunc
	Write    echo.MiddlewareFunc
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case service.IsValidation(err):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, service.ErrDestinationNotFound),
		errors.Is(err, service.ErrPackageNotFound),
		errors.Is(err, service.ErrHotelNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	default:
		// Store failures surface with their own message so callers can tell a
		// constraint violation apart from an outage.
		return c.JSON(http.StatusInternalServerError, util.Error(err.Error()))
	}
}

func parseIDParam(c echo.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
