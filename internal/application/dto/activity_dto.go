package dto

import "time"

// CreateActivityRequest entrada para agendar una actividad sobre un trato.
type CreateActivityRequest struct {
	Tipo          string     `json:"tipo" validate:"required,oneof=llamada reunion tarea"`
	ResponsableID string     `json:"responsableId"`
	ContactoID    string     `json:"contactoId"`
	FechaLimite   *time.Time `json:"fechaLimite"`
	Proposito     string     `json:"proposito"`
	DuracionMin   int        `json:"duracionMin"`
	Modalidad     string     `json:"modalidad"`
	Lugar         string     `json:"lugar"`
	Subtipo       string     `json:"subtipo"`
}

// ActivityResponse salida de una actividad.
type ActivityResponse struct {
	ID            string     `json:"id"`
	TratoID       string     `json:"tratoId"`
	Tipo          string     `json:"tipo"`
	ResponsableID string     `json:"responsableId"`
	ContactoID    string     `json:"contactoId"`
	FechaLimite   *time.Time `json:"fechaLimite,omitempty"`
	Proposito     string     `json:"proposito"`
	DuracionMin   int        `json:"duracionMin,omitempty"`
	Modalidad     string     `json:"modalidad,omitempty"`
	Lugar         string     `json:"lugar,omitempty"`
	Subtipo       string     `json:"subtipo,omitempty"`
	Realizada     *time.Time `json:"realizada,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
