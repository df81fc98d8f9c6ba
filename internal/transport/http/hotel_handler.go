package http

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/service"
	"github.com/tripveda/agency-backend/internal/util"
)

type HotelHandler struct {
	catalog *service.CatalogService
	admin   *service.AdminService
}

func RegisterHotels(e *echo.Echo, catalog *service.CatalogService, admin *service.AdminService, guards Guards) {
	handler := &HotelHandler{catalog: catalog, admin: admin}

	e.GET("/api/hotels", handler.list)

	adm := e.Group("/api/admin/hotels", guards.AdminKey)
	adm.GET("", handler.adminList)
	adm.POST("", handler.create, guards.Write)
	adm.PUT("/:id", handler.update, guards.Write)
	adm.DELETE("/:id", handler.remove, guards.Write)
}

type hotelPayload struct {
	DestinationID *domain.OptionalNumber `json:"destination_id"`
	Name          *string                `json:"name"`
	Slug          *string                `json:"slug"`
	StarRating    *domain.OptionalNumber `json:"star_rating"`
	PricePerNight *domain.OptionalNumber `json:"price_per_night"`
	Summary       *string                `json:"summary"`
	Amenities     *domain.StringList     `json:"amenities"`
	Address       *string                `json:"address"`
	CoverImage    *string                `json:"cover_image"`
}

func (p hotelPayload) toNew() (domain.NewHotel, string) {
	input := domain.NewHotel{
		Summary:    p.Summary,
		Address:    p.Address,
		CoverImage: p.CoverImage,
	}
	if p.Name != nil {
		input.Name = *p.Name
	}
	if p.Slug != nil {
		input.Slug = *p.Slug
	}
	if p.DestinationID != nil {
		// A malformed id falls through as zero and trips the required check.
		input.DestinationID, _ = p.DestinationID.PositiveInt()
	}
	if p.Amenities != nil {
		input.Amenities = *p.Amenities
	}

	if p.StarRating != nil && !p.StarRating.IsNull() {
		v, ok := p.StarRating.Float()
		if !ok {
			return input, "star_rating must be a number."
		}
		input.StarRating = &v
	}
	if p.PricePerNight != nil && !p.PricePerNight.IsNull() {
		v, ok := p.PricePerNight.Float()
		if !ok {
			return input, "price_per_night must be a number."
		}
		input.PricePerNight = &v
	}
	return input, ""
}

func (p hotelPayload) toPatch() (domain.HotelPatch, string) {
	patch := domain.HotelPatch{
		Name:       p.Name,
		Slug:       p.Slug,
		Summary:    p.Summary,
		Amenities:  p.Amenities,
		Address:    p.Address,
		CoverImage: p.CoverImage,
	}

	if p.DestinationID != nil {
		id, ok := p.DestinationID.PositiveInt()
		if !ok {
			return patch, "destination_id must be a positive integer."
		}
		patch.DestinationID = &id
	}
	if p.StarRating != nil {
		value := sql.NullFloat64{}
		if !p.StarRating.IsNull() {
			v, ok := p.StarRating.Float()
			if !ok {
				return patch, "star_rating must be a number."
			}
			value = sql.NullFloat64{Float64: v, Valid: true}
		}
		patch.StarRating = &value
	}
	if p.PricePerNight != nil {
		value := sql.NullFloat64{}
		if !p.PricePerNight.IsNull() {
			v, ok := p.PricePerNight.Float()
			if !ok {
				return patch, "price_per_night must be a number."
			}
			value = sql.NullFloat64{Float64: v, Valid: true}
		}
		patch.PricePerNight = &value
	}
	return patch, ""
}

func (h *HotelHandler) list(c echo.Context) error {
	destinationID, ok := optionalIDQuery(c, "destinationId")
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("destinationId must be a positive integer."))
	}

	rows, err := h.catalog.ListHotels(c.Request().Context(), destinationID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.List(rows, len(rows)))
}

func (h *HotelHandler) adminList(c echo.Context) error {
	rows, err := h.admin.ListHotels(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.List(rows, len(rows)))
}

func (h *HotelHandler) create(c echo.Context) error {
	var req hotelPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	input, problem := req.toNew()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, util.Error(problem))
	}

	created, err := h.admin.CreateHotel(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, util.Data(created))
}

func (h *HotelHandler) update(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid hotel id."))
	}

	var req hotelPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	patch, problem := req.toPatch()
	if problem != "" {
		return c.JSON(http.StatusBadRequest, util.Error(problem))
	}

	updated, err := h.admin.UpdateHotel(c.Request().Context(), id, patch)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data(updated))
}

func (h *HotelHandler) remove(c echo.Context) error {
	id, ok := parseIDParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid hotel id."))
	}

	if err := h.admin.DeleteHotel(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// optionalIDQuery parses a positive integer query parameter. The second
// return is false only when the parameter is present but malformed.
func optionalIDQuery(c echo.Context, name string) (*int64, bool) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}
