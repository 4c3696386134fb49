package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDealRequest entrada para crear un trato. La fase no se captura: todo
// trato nace en clasificación.
type CreateDealRequest struct {
	Nombre          string          `json:"nombre" validate:"required,min=1,max=200"`
	EmpresaID       string          `json:"empresaId" validate:"required"`
	ContactoID      string          `json:"contactoId"`
	IngresoEsperado decimal.Decimal `json:"ingresoEsperado"`
	Unidades        int             `json:"unidades"`
	Descripcion     string          `json:"descripcion"`
	FechaCierre     *time.Time      `json:"fechaCierre"`
}

// UpdateDealRequest entrada para editar un trato (la fase se mueve solo por
// el endpoint de movimiento).
type UpdateDealRequest struct {
	Nombre          string          `json:"nombre"`
	ContactoID      string          `json:"contactoId"`
	IngresoEsperado decimal.Decimal `json:"ingresoEsperado"`
	Unidades        int             `json:"unidades"`
	Descripcion     string          `json:"descripcion"`
	FechaCierre     *time.Time      `json:"fechaCierre"`
}

// MoveDealRequest entrada para mover un trato de columna (drag & drop).
type MoveDealRequest struct {
	ColumnaDestino string `json:"columnaDestino" validate:"required"`
	ColumnaOrigen  string `json:"columnaOrigen"`
}

// DealResponse salida de un trato.
type DealResponse struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	EmpresaID       string          `json:"empresaId"`
	ContactoID      string          `json:"contactoId"`
	IngresoEsperado decimal.Decimal `json:"ingresoEsperado"`
	Unidades        int             `json:"unidades"`
	Descripcion     string          `json:"descripcion"`
	Fase            string          `json:"fase"`
	PropietarioID   string          `json:"propietarioId"`
	FechaCierre     *time.Time      `json:"fechaCierre,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	UltimaActividad time.Time       `json:"ultimaActividad"`
}

// MoveDealResponse resultado de un intento de movimiento. Cuando el destino
// es la fase ganado, el movimiento queda pendiente de confirmación y se
// devuelve la empresa precargada en modo cliente.
type MoveDealResponse struct {
	Committed            bool             `json:"committed"`
	RequiresConfirmation bool             `json:"requiresConfirmation"`
	Empresa              *CompanyResponse `json:"empresa,omitempty"`
}

// CardResponse tarjeta del tablero: trato + estado derivado.
type CardResponse struct {
	Trato         DealResponse      `json:"trato"`
	Descuidado    bool              `json:"descuidado"`
	TieneActiv    bool              `json:"tieneActividades"`
	ProximaActiv  *ActivityResponse `json:"proximaActividad,omitempty"`
	Icono         string            `json:"icono"`
	Decoracion    string            `json:"decoracion,omitempty"`
}

// ColumnResponse columna del tablero kanban.
type ColumnResponse struct {
	Codigo   string         `json:"codigo"`
	Slug     string         `json:"slug"`
	Etiqueta string         `json:"etiqueta"`
	Color    string         `json:"color"`
	Tarjetas []CardResponse `json:"tarjetas"`
}

// BoardResponse tablero completo: las 10 columnas en orden.
type BoardResponse struct {
	Columnas []ColumnResponse `json:"columnas"`
}
