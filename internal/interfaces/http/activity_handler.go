package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// ActivityHandler maneja las peticiones HTTP para actividades de un trato.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler inyectando el caso de uso.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar actividad sobre un trato
// @Description  Registrar una actividad actualiza la marca de última actividad
// @Description  del trato y despeja su estado de descuido.
// @Tags         actividades
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del trato"
// @Param        body  body  dto.CreateActivityRequest  true  "Datos de la actividad"
// @Success      201   {object}  dto.ActivityResponse
// @Router       /api/tratos/{id}/actividades [post]
func (h *ActivityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActivityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Params("id"), in)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByDeal godoc
// @Summary      Listar actividades de un trato
// @Tags         actividades
// @Produce      json
// @Param        id  path  string  true  "ID del trato"
// @Success      200  {array}  dto.ActivityResponse
// @Router       /api/tratos/{id}/actividades [get]
func (h *ActivityHandler) ListByDeal(c *fiber.Ctx) error {
	out, err := h.uc.ListByDeal(c.Params("id"))
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Marcar actividad como realizada
// @Tags         actividades
// @Param        id  path  string  true  "ID de la actividad"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actividades/{id}/realizar [post]
func (h *ActivityHandler) Complete(c *fiber.Ctx) error {
	if err := h.uc.Complete(c.Params("id")); err != nil {
		return respondUseCaseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
