package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/service"
	"github.com/tripveda/agency-backend/internal/util"
)

type LeadHandler struct {
	leads *service.LeadService
	admin *service.AdminService
}

func RegisterLeads(e *echo.Echo, leads *service.LeadService, admin *service.AdminService, guards Guards) {
	handler := &LeadHandler{leads: leads, admin: admin}

	// Lead submission is public but still writes, so it carries the same
	// database write guard as the admin mutations.
	e.POST("/api/leads", handler.submit, guards.Write)
	e.GET("/api/admin/leads", handler.adminList, guards.AdminKey)
}

func (h *LeadHandler) submit(c echo.Context) error {
	var req service.LeadSubmission
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	result, err := h.leads.Submit(c.Request().Context(), req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data(result))
}

func (h *LeadHandler) adminList(c echo.Context) error {
	rows, err := h.admin.ListLeads(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.List(rows, len(rows)))
}
