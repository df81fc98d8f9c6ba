package http

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/service"
	"github.com/tripveda/agency-backend/internal/util"
)

type PackageHandler struct {
	catalog *service.CatalogService
	admin   *service.AdminService
}

func RegisterPackages(e *echo.Echo, catalog *service.CatalogService, admin *service.AdminService, guards Guards) {
	handler := &PackageHandler{catalog: catalog, admin: admin}

	public := e.Group("/api/packages")
	public.GET("", handler.list)
	public.GET("/:id", handler.get)

	adm := e.Group("/api/admin/packages", guards.AdminKey)
	adm.GET("", handler.adminList)
	adm.POST("", handler.create, guards.Write)
	adm.PUT("/:id", handler.update, guards.Write)
	adm.DELETE("/:id", handler.remove, guards.Write)
}

type packagePayload struct {
	DestinationID *domain.OptionalNumber `json:"destination_id"`
	Name          *string                `json:"name"`
	Slug          *string                `json:"slug"`
	DurationDays  *domain.OptionalNumber `json:"duration_days"`
	PriceFrom     *domain.OptionalNumber `json:"price_from"`
	Summary       *string                `json:"summary"`
	Highlights    *domain.StringList     `json:"highlights"`
	CoverImage    *string                `json:"cover_image"`
	IsFeatured    *bool                  `json:"is_featured"`

	// Hotel links ride along with the scalar fields. A present hotel_ids key
	// replaces the whole set, so nil and empty list mean different things.
	HotelIDs *domain.IDList `json:"hotel_ids"`
}

func (p packagePayload) toNew() (domain.NewPackage, string) {
	input := domain.NewPackage{
		Summary:    p.Summary,
		CoverImage: p.CoverImage,
	}
	if p.Name != nil {
		input.Name = *p.Name
	}
	if p.Slug != nil {
		input.Slug = *p.Slug
	}
	if p.DestinationID != nil {
		input.DestinationID, _ = p.DestinationID.PositiveInt()
	}
	if p.Highlights != nil {
		input.Highlights = *p.Highlights
	}
	if p.IsFeatured != nil {
		input.IsFeatured = *p.IsFeatured
	}

	if p.DurationDays != nil && !p.DurationDays.IsNull() {
		v, ok := p.DurationDays.PositiveInt()
		if !ok {
			return input, "duration_days must be a positive integer."
		}
		input.DurationDays = &v
	}
	if p.PriceFrom != nil && !p.PriceFrom.IsNull() {
		v, ok := p.PriceFrom.NonNegative()
		if !ok {
			return input, "price_from must be a non-negative number."
		}
		input.PriceFrom = &v
	}
	return input, ""
}

func (p packagePayload) toPatch() (domain.PackagePatch, string) {
	patch := domain.PackagePatch{
		Name:       p.Name,
		Slug:       p.Slug,
		Summary:    p.Summary,
		Highlights: p.Highlights,
		CoverImage: p.CoverImage,
		IsFeatured: p.IsFeatured,
	}

	if p.DestinationID != nil {
		id, ok := p.DestinationID.PositiveInt()
		if !ok {
			return patch, "destination_id must be a positive integer."
		}
		patch.DestinationID = &id
	}
	if p.DurationDays != nil {
		value := sql.NullInt64{}
		if !p.DurationDays.IsNull() {
			v, ok := p.DurationDays.PositiveInt()
			if !ok {
				return patch, "duration_days must be a positive integer."
			}
			value = sql.NullInt64{Int64: v, Valid: true}
		}
		patch.DurationDays = &value
	}
	if p.PriceFrom != nil {
		value := sql.NullFloat64{}
		if !p.PriceFrom.IsNull() {
			v, ok := p.PriceFrom.NonNegative()
			if !ok {
				return patch, "price_from must be a non-negative number."
			}
			value = sql.NullFloat64{Float64: v, Valid: true}
		}
		patch.PriceFrom = &value
	}
	return patch, ""
}

func (p packagePayload) hotelIDs() []int64 {
	if p.HotelIDs == nil {
		return nil
	}
	return []int64(*p.HotelIDs)
}

func (h *PackageHandler) list(c echo.Context) error {
	destinationID, ok := optionalIDQuery(c, "destinationId")
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("destinationId must be a positive integer."))
	}

	rows, err := h.catalog.ListPackages(c.Request().Context(), destinationID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.List(rows, len(rows)))
}

func (h *PackageHandler) get(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid package id."))
	}

	details, err := h.catalog.GetPackage(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data(details))
}

func (h *PackageHandler) adminList(c echo.Context) error {
	rows, err := h.admin.ListPackages(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.List(rows, len(rows)))
}

func (h *PackageHandler) create(c echo.Context) error {
	var req packagePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	input, problem := req.toNew()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, util.Error(problem))
	}

	created, err := h.admin.CreatePackage(c.Request().Context(), input, req.hotelIDs())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data(created))
}

func (h *PackageHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid package id."))
	}

	var req packagePayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	patch, problem := req.toPatch()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, util.Error(problem))
	}

	updated, err := h.admin.UpdatePackage(c.Request().Context(), id, patch, req.hotelIDs(), req.HotelIDs != nil)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data(updated))
}

func (h *PackageHandler) remove(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid package id."))
	}

	if err := h.admin.DeletePackage(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
