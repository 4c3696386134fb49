package dto

import "time"

// CreateContactRequest entrada para crear un contacto.
type CreateContactRequest struct {
	Nombre    string   `json:"nombre"`
	Emails    []string `json:"emails"`
	Telefonos []string `json:"telefonos"`
	Celular   string   `json:"celular"`
	Puesto    string   `json:"puesto" validate:"required"`
}

// UpdateContactRequest entrada para editar un contacto.
type UpdateContactRequest struct {
	Nombre    string   `json:"nombre"`
	Emails    []string `json:"emails"`
	Telefonos []string `json:"telefonos"`
	Celular   string   `json:"celular"`
	Puesto    string   `json:"puesto"`
}

// ContactResponse salida de un contacto.
type ContactResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresaId"`
	Nombre    string    `json:"nombre"`
	Emails    []string  `json:"emails"`
	Telefonos []string  `json:"telefonos"`
	Celular   string    `json:"celular"`
	Puesto    string    `json:"puesto"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
