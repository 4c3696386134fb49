package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
)

// ContactHandler maneja las peticiones HTTP para contactos de empresa.
type ContactHandler struct {
	uc *usecase.ContactUseCase
}

// NewContactHandler construye el handler inyectando el caso de uso.
func NewContactHandler(uc *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar contacto a una empresa
// @Tags         contactos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la empresa"
// @Param        body  body  dto.CreateContactRequest  true  "Datos del contacto"
// @Success      201   {object}  dto.ContactResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/empresas/{id}/contactos [post]
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Params("id"), in)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany godoc
// @Summary      Listar contactos de una empresa
// @Tags         contactos
// @Produce      json
// @Param        id  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.ContactResponse
// @Router       /api/empresas/{id}/contactos [get]
func (h *ContactHandler) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.Params("id"))
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar contacto
// @Tags         contactos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del contacto"
// @Param        body  body  dto.UpdateContactRequest  true  "Datos a editar"
// @Success      200   {object}  dto.ContactResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/contactos/{id} [put]
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondUseCaseError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar contacto
// @Tags         contactos
// @Param        id  path  string  true  "ID del contacto"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "último contacto de la empresa"
// @Router       /api/contactos/{id} [delete]
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondUseCaseError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
