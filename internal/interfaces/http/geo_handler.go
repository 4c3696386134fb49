package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/geo"
)

// GeoHandler expone la caché de coordenadas y el disparo del refresco.
type GeoHandler struct {
	cache     *geo.Cache
	refresher *geo.Refresher
	// baseCtx es el contexto de vida de la aplicación: el ciclo de refresco
	// sobrevive a la petición que lo dispara pero cae con el shutdown.
	baseCtx context.Context
}

// NewGeoHandler construye el handler de geolocalización.
func NewGeoHandler(baseCtx context.Context, cache *geo.Cache, refresher *geo.Refresher) *GeoHandler {
	return &GeoHandler{cache: cache, refresher: refresher, baseCtx: baseCtx}
}

// Coordinates godoc
// @Summary      Coordenadas cacheadas de empresas
// @Description  Mapa empresaID → [lat, lng]. Un blob vencido (más de 30 días)
// @Description  se devuelve vacío.
// @Tags         geo
// @Produce      json
// @Success      200  {object}  dto.CoordinatesResponse
// @Router       /api/geo/coordenadas [get]
func (h *GeoHandler) Coordinates(c *fiber.Ctx) error {
	data, ts, err := h.cache.Snapshot(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CoordinatesResponse{Data: data, Timestamp: ts})
}

// Refresh godoc
// @Summary      Disparar un ciclo de geocodificación en segundo plano
// @Description  Sondea cada 30 s las empresas sin coordenadas, con tope de
// @Description  10 min por ciclo. Si ya hay un ciclo en curso no arranca otro.
// @Tags         geo
// @Success      202
// @Router       /api/geo/refrescar [post]
func (h *GeoHandler) Refresh(c *fiber.Ctx) error {
	h.refresher.Start(h.baseCtx)
	return c.SendStatus(fiber.StatusAccepted)
}
