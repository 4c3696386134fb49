package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInvalidPhase       = errors.New("fase inválida")
	ErrStatusLocked       = errors.New("el estado no se puede editar: la empresa tiene tratos asociados")
	ErrLastContact        = errors.New("la empresa debe conservar al menos un contacto")
	ErrNoPendingWin       = errors.New("no hay promoción pendiente para el trato")
)
