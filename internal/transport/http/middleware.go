package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/util"
)

const adminKeyHeader = "x-admin-key"

// WriteAccess mirrors what the startup privilege probe reported about the
// database role the server connected with.
type WriteAccess struct {
	Role     string
	Writable bool
}

// RequireAdminKey gates the admin surface behind the shared panel secret.
// A server without the secret configured refuses admin requests outright
// rather than letting the panel run unauthenticated.
func RequireAdminKey(adminKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if adminKey == "" {
				return c.JSON(http.StatusInternalServerError, util.Error("Server misconfiguration. ADMIN_PANEL_KEY is missing."))
			}
			provided := c.Request().Header.Get(adminKeyHeader)
			if provided == "" || provided != adminKey {
				return c.JSON(http.StatusUnauthorized, util.Error("Unauthorized admin request."))
			}
			return next(c)
		}
	}
}

// RequireWriteAccess rejects mutating admin calls when the database role the
// server runs under cannot actually write the catalog tables. Failing loudly
// here beats surfacing a permission error from deep inside a repository.
func RequireWriteAccess(access WriteAccess) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !access.Writable {
				msg := fmt.Sprintf("Write operations require a database role with INSERT, UPDATE and DELETE privileges. Current role is '%s'.", access.Role)
				return c.JSON(http.StatusInternalServerError, util.Error(msg))
			}
			return next(c)
		}
	}
}
