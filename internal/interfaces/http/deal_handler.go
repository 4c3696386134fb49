package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	apppipeline "github.com/tu-usuario/crm-pro/internal/application/pipeline"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// DealHandler maneja las peticiones HTTP para tratos, el tablero kanban y el
// flujo de confirmación de la fase ganado.
type DealHandler struct {
	uc     *usecase.DealUseCase
	moveUC *apppipeline.MoveUseCase
}

// NewDealHandler construye el handler inyectando los casos de uso.
func NewDealHandler(uc *usecase.DealUseCase, moveUC *apppipeline.MoveUseCase) *DealHandler {
	return &DealHandler{uc: uc, moveUC: moveUC}
}

// Create godoc
// @Summary      Crear trato (nace en clasificación)
// @Tags         tratos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDealRequest  true  "Datos del trato"
// @Success      201   {object}  dto.DealResponse
// @Router       /api/tratos [post]
func (h *DealHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ctx := usecase.WithOwner(c.Context(), GetUserID(c))
	out, err := h.uc.Create(ctx, in)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener trato por ID
// @Tags         tratos
// @Produce      json
// @Param        id  path  string  true  "ID del trato"
// @Success      200  {object}  dto.DealResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tratos/{id} [get]
func (h *DealHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondUseCaseError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trato no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar trato (la fase se mueve por /mover)
// @Tags         tratos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del trato"
// @Param        body  body  dto.UpdateDealRequest  true  "Datos a editar"
// @Success      200   {object}  dto.DealResponse
// @Router       /api/tratos/{id} [put]
func (h *DealHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tratos (vista de lista)
// @Tags         tratos
// @Produce      json
// @Success      200  {array}  dto.DealResponse
// @Router       /api/tratos [get]
func (h *DealHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Board godoc
// @Summary      Tablero kanban completo (10 columnas, recarga total)
// @Tags         tratos
// @Produce      json
// @Success      200  {object}  dto.BoardResponse
// @Router       /api/tratos/tablero [get]
func (h *DealHandler) Board(c *fiber.Ctx) error {
	out, err := h.uc.Board(time.Now())
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Move godoc
// @Summary      Mover trato de columna (drag & drop)
// @Description  Si el destino es la fase ganado, no se escribe nada todavía:
// @Description  la respuesta trae requiresConfirmation=true y la empresa
// @Description  precargada en modo cliente para el formulario de confirmación.
// @Tags         tratos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del trato"
// @Param        body  body  dto.MoveDealRequest  true  "Slug de la columna destino"
// @Success      200   {object}  dto.MoveDealResponse
// @Failure      400   {object}  dto.ErrorResponse  "columna destino desconocida"
// @Router       /api/tratos/{id}/mover [post]
func (h *DealHandler) Move(c *fiber.Ctx) error {
	var in dto.MoveDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.moveUC.AttemptMove(c.Context(), c.Params("id"), in.ColumnaDestino)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(out)
}

// ConfirmWon godoc
// @Summary      Confirmar trato ganado
// @Description  Valida el formulario de la empresa en modo cliente y commitea,
// @Description  en una sola transacción, la fase ganado y la promoción.
// @Tags         tratos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del trato"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Formulario de la empresa"
// @Success      200   {object}  dto.MoveDealResponse
// @Failure      409   {object}  dto.ErrorResponse  "sin promoción pendiente"
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/tratos/{id}/ganar/confirmar [post]
func (h *DealHandler) ConfirmWon(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.moveUC.ConfirmWon(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(out)
}

// CancelWon godoc
// @Summary      Cancelar trato ganado pendiente
// @Description  Descarta la promoción en staging; el trato permanece en su
// @Description  fase de origen y no se escribe nada.
// @Tags         tratos
// @Param        id  path  string  true  "ID del trato"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "sin promoción pendiente"
// @Router       /api/tratos/{id}/ganar/cancelar [post]
func (h *DealHandler) CancelWon(c *fiber.Ctx) error {
	if err := h.moveUC.CancelWon(c.Params("id")); err != nil {
		return respondUseCaseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar trato
// @Tags         tratos
// @Param        id  path  string  true  "ID del trato"
// @Success      204
// @Router       /api/tratos/{id} [delete]
func (h *DealHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondUseCaseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
