package entity

import "time"

// Puestos de contacto (catálogo fijo de 8 códigos).
const (
	ContactRoleDirector       = "director"
	ContactRoleGerente        = "gerente"
	ContactRoleCompras        = "compras"
	ContactRoleVentas         = "ventas"
	ContactRoleAdministracion = "administracion"
	ContactRoleFinanzas       = "finanzas"
	ContactRoleOperaciones    = "operaciones"
	ContactRoleOtro           = "otro"
)

// ContactRoles código → etiqueta de presentación.
var ContactRoles = map[string]string{
	ContactRoleDirector:       "Director general",
	ContactRoleGerente:        "Gerente",
	ContactRoleCompras:        "Compras",
	ContactRoleVentas:         "Ventas",
	ContactRoleAdministracion: "Administración",
	ContactRoleFinanzas:       "Finanzas",
	ContactRoleOperaciones:    "Operaciones",
	ContactRoleOtro:           "Otro",
}

// Contact representa una persona de contacto dentro de una empresa.
// Toda empresa conserva al menos un contacto; el último no puede eliminarse.
type Contact struct {
	ID        string
	CompanyID string
	Name      string // si viene vacío se asigna "Contacto de <puesto>"
	Emails    []string
	Phones    []string
	Mobile    string
	Role      string // ver constantes ContactRole*
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidContactRole informa si el código de puesto pertenece al catálogo.
func IsValidContactRole(s string) bool {
	_, ok := ContactRoles[s]
	return ok
}

// DefaultContactName nombre por defecto cuando el formulario no lo captura.
func DefaultContactName(role string) string {
	label, ok := ContactRoles[role]
	if !ok {
		label = role
	}
	return "Contacto de " + label
}
