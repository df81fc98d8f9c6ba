package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/service"
	"github.com/tripveda/agency-backend/internal/util"
)

type DestinationHandler struct {
	catalog *service.CatalogService
	admin   *service.AdminService
}

func RegisterDestinations(e *echo.Echo, catalog *service.CatalogService, admin *service.AdminService, guards Guards) {
	handler := &DestinationHandler{catalog: catalog, admin: admin}

	public := e.Group("/api/destinations")
	public.GET("", handler.list)
	public.GET("/:idOrSlug", handler.get)

	adm := e.Group("/api/admin/destinations", guards.AdminKey)
	adm.GET("", handler.adminList)
	adm.POST("", handler.create, guards.Write)
	adm.PUT("/:id", handler.update, guards.Write)
	adm.DELETE("/:id", handler.remove, guards.Write)
}

type destinationPayload struct {
	Name             *string `json:"name"`
	Slug             *string `json:"slug"`
	State            *string `json:"state"`
	HeroImage        *string `json:"hero_image"`
	ShortDescription *string `json:"short_description"`
	LongDescription  *string `json:"long_description"`
	BestTime         *string `json:"best_time"`
}

func (p destinationPayload) toNew() domain.NewDestination {
	input := domain.NewDestination{
		State:            p.State,
		HeroImage:        p.HeroImage,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		BestTime:         p.BestTime,
	}
	if p.Name != nil {
		input.Name = *p.Name
	}
	if p.Slug != nil {
		input.Slug = *p.Slug
	}
	return input
}

func (p destinationPayload) toPatch() domain.DestinationPatch {
	return domain.DestinationPatch{
		Name:             p.Name,
		Slug:             p.Slug,
		State:            p.State,
		HeroImage:        p.HeroImage,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		BestTime:         p.BestTime,
	}
}

func (h *DestinationHandler) list(c echo.Context) error {
	rows, err := h.catalog.ListDestinations(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.List(rows, len(rows)))
}

func (h *DestinationHandler) get(c echo.Context) error {
	details, err := h.catalog.GetDestination(c.Request().Context(), c.Param("idOrSlug"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data(details))
}

func (h *DestinationHandler) adminList(c echo.Context) error {
	rows, err := h.admin.ListDestinations(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.List(rows, len(rows)))
}

func (h *DestinationHandler) create(c echo.Context) error {
	var req destinationPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	created, err := h.admin.CreateDestination(c.Request().Context(), req.toNew())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data(created))
}

func (h *DestinationHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid destination id."))
	}

	var req destinationPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	updated, err := h.admin.UpdateDestination(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data(updated))
}

func (h *DestinationHandler) remove(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid destination id."))
	}

	if err := h.admin.DeleteDestination(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
