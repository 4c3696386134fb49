package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa. Toda empresa nace con
// un contacto inicial (invariante: al menos un contacto siempre).
type CreateCompanyRequest struct {
	Nombre          string               `json:"nombre" validate:"required,min=1,max=200"`
	Estado          string               `json:"estado"`
	SitioWeb        string               `json:"sitioWeb"`
	Giro            string               `json:"giro"`
	DomicilioFisico string               `json:"domicilioFisico"`
	DomicilioFiscal string               `json:"domicilioFiscal"`
	RFC             string               `json:"rfc"`
	RazonSocial     string               `json:"razonSocial"`
	RegimenFiscal   string               `json:"regimenFiscal"`
	Contacto        CreateContactRequest `json:"contacto"`
}

// UpdateCompanyRequest entrada para editar una empresa.
type UpdateCompanyRequest struct {
	Nombre          string `json:"nombre"`
	Estado          string `json:"estado"`
	SitioWeb        string `json:"sitioWeb"`
	Giro            string `json:"giro"`
	DomicilioFisico string `json:"domicilioFisico"`
	DomicilioFiscal string `json:"domicilioFiscal"`
	RFC             string `json:"rfc"`
	RazonSocial     string `json:"razonSocial"`
	RegimenFiscal   string `json:"regimenFiscal"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID              string     `json:"id"`
	Nombre          string     `json:"nombre"`
	Estado          string     `json:"estado"`
	SitioWeb        string     `json:"sitioWeb"`
	Giro            string     `json:"giro"`
	DomicilioFisico string     `json:"domicilioFisico"`
	DomicilioFiscal string     `json:"domicilioFiscal"`
	RFC             string     `json:"rfc"`
	RazonSocial     string     `json:"razonSocial"`
	RegimenFiscal   string     `json:"regimenFiscal"`
	PropietarioID   string     `json:"propietarioId"`
	Latitud         *float64   `json:"latitud,omitempty"`
	Longitud        *float64   `json:"longitud,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	UltimaActividad time.Time  `json:"ultimaActividad"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
