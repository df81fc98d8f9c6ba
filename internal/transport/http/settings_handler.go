package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tripveda/agency-backend/internal/domain"
	"github.com/tripveda/agency-backend/internal/service"
	"github.com/tripveda/agency-backend/internal/util"
)

type SettingsHandler struct {
	catalog *service.CatalogService
	admin   *service.AdminService
}

func RegisterSettings(e *echo.Echo, catalog *service.CatalogService, admin *service.AdminService, guards Guards) {
	handler := &SettingsHandler{catalog: catalog, admin: admin}

	e.GET("/api/settings", handler.get)
	e.PUT("/api/admin/settings", handler.update, guards.AdminKey, guards.Write)
}

type settingsPayload struct {
	AgencyName     *string `json:"agency_name"`
	LogoURL        *string `json:"logo_url"`
	ContactPhone   *string `json:"contact_phone"`
	WhatsappNumber *string `json:"whatsapp_number"`
	SupportEmail   *string `json:"support_email"`
	Address        *string `json:"address"`
	InstagramURL   *string `json:"instagram_url"`
	FacebookURL    *string `json:"facebook_url"`
	TwitterURL     *string `json:"twitter_url"`
	YoutubeURL     *string `json:"youtube_url"`
}

func (h *SettingsHandler) get(c echo.Context) error {
	settings, err := h.catalog.GetSettings(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	// Branding may change at any moment, so clients must not cache it.
	c.Response().Header().Set("Cache-Control", "no-store")
	if settings == nil {
		return c.JSON(http.StatusOK, util.Data(util.Envelope{}))
	}
	return c.JSON(http.StatusOK, util.Data(settings))
}

func (h *SettingsHandler) update(c echo.Context) error {
	var req settingsPayload
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid request body."))
	}

	updated, err := h.admin.UpdateSettings(c.Request().Context(), domain.SettingsPatch{
		AgencyName:     req.AgencyName,
		LogoURL:        req.LogoURL,
		ContactPhone:   req.ContactPhone,
		WhatsappNumber: req.WhatsappNumber,
		SupportEmail:   req.SupportEmail,
		Address:        req.Address,
		InstagramURL:   req.InstagramURL,
		FacebookURL:    req.FacebookURL,
		TwitterURL:     req.TwitterURL,
		YoutubeURL:     req.YoutubeURL,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data(updated))
}
