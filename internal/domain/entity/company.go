package entity

import (
	"strings"
	"time"
)

// Estados de ciclo de vida de una empresa. "cliente" es terminal y exige los
// campos fiscales (domicilio fiscal, RFC, razón social, régimen fiscal).
const (
	CompanyStatusToContact    = "porContactar"
	CompanyStatusInProgress   = "enProceso"
	CompanyStatusContactLater = "contactarDespues"
	CompanyStatusLost         = "perdido"
	CompanyStatusClient       = "cliente"
)

// CompanyStatuses catálogo de estados válidos, en orden de presentación.
var CompanyStatuses = []string{
	CompanyStatusToContact,
	CompanyStatusInProgress,
	CompanyStatusContactLater,
	CompanyStatusLost,
	CompanyStatusClient,
}

// TaxRegimes catálogo de regímenes fiscales (claves SAT).
var TaxRegimes = []string{"601", "603", "605", "606", "612", "620", "621", "626"}

// Company representa una empresa prospecto o cliente del CRM.
type Company struct {
	ID             string
	Name           string
	Status         string // ver constantes CompanyStatus*
	Website        string
	Sector         string
	Address        string // domicilio físico, canonicalizado con sufijo ", México"
	FiscalAddress  string // obligatorio solo cuando Status = cliente
	RFC            string
	LegalName      string
	TaxRegime      string
	OwnerID        string
	Latitude       *float64 // nil mientras no se geocodifica
	Longitude      *float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastActivityAt time.Time
}

// IsValidCompanyStatus informa si el código de estado pertenece al catálogo.
func IsValidCompanyStatus(s string) bool {
	for _, v := range CompanyStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidTaxRegime informa si la clave de régimen pertenece al catálogo SAT.
func IsValidTaxRegime(s string) bool {
	for _, v := range TaxRegimes {
		if v == s {
			return true
		}
	}
	return false
}

// CanonicalAddress normaliza un domicilio: recorta espacios y agrega el
// sufijo ", México" si aún no termina en "México". Es idempotente.
func CanonicalAddress(addr string) string {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return trimmed
	}
	lower := strings.ToLower(trimmed)
	if strings.HasSuffix(lower, "méxico") || strings.HasSuffix(lower, "mexico") {
		return trimmed
	}
	return trimmed + ", México"
}

// HasCoordinates informa si la empresa ya fue geocodificada.
func (c *Company) HasCoordinates() bool {
	return c.Latitude != nil && c.Longitude != nil
}
