package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/pipeline"
)

// CatalogHandler expone los catálogos fijos (fases, estados, puestos, regímenes).
type CatalogHandler struct{}

// NewCatalogHandler construye el handler de catálogos.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Phases godoc
// @Summary      Catálogo de fases del pipeline (las 10 columnas, en orden)
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  dto.PhaseResponse
// @Router       /api/catalogos/fases [get]
func (h *CatalogHandler) Phases(c *fiber.Ctx) error {
	out := make([]dto.PhaseResponse, 0, len(pipeline.Phases))
	for _, p := range pipeline.Phases {
		out = append(out, dto.PhaseResponse{
			Codigo:   p.Code,
			Slug:     p.Slug,
			Etiqueta: p.Label,
			Color:    p.Color,
		})
	}
	return c.JSON(out)
}

// CompanyStatuses godoc
// @Summary      Catálogo de estados de empresa
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/catalogos/estados [get]
func (h *CatalogHandler) CompanyStatuses(c *fiber.Ctx) error {
	return c.JSON(entity.CompanyStatuses)
}

// ContactRoles godoc
// @Summary      Catálogo de puestos de contacto (código → etiqueta)
// @Tags         catalogos
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/catalogos/puestos [get]
func (h *CatalogHandler) ContactRoles(c *fiber.Ctx) error {
	return c.JSON(entity.ContactRoles)
}

// TaxRegimes godoc
// @Summary      Catálogo de regímenes fiscales (claves SAT)
// @Tags         catalogos
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/catalogos/regimenes [get]
func (h *CatalogHandler) TaxRegimes(c *fiber.Ctx) error {
	return c.JSON(entity.TaxRegimes)
}
