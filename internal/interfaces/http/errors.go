package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/validation"
)

// respondUseCaseError mapea errores de casos de uso a respuestas HTTP:
//   - validation.Errors → 422 con el mapa campo → mensaje
//   - errores de dominio conocidos → su código HTTP
//   - cualquier otro → 500
func respondUseCaseError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ValidationErrorResponse{Errors: verrs})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	case errors.Is(err, domain.ErrInvalidPhase):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PHASE", Message: "columna destino desconocida"})
	case errors.Is(err, domain.ErrStatusLocked):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STATUS_LOCKED", Message: "el estado no puede cambiar: la empresa tiene tratos asociados"})
	case errors.Is(err, domain.ErrLastContact):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LAST_CONTACT", Message: "el último contacto de una empresa no puede eliminarse"})
	case errors.Is(err, domain.ErrNoPendingWin):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_PENDING_WIN", Message: "el trato no tiene promoción pendiente de confirmación"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
