// Package validation implementa el motor de validación de formularios de
// empresa y contacto. Las funciones son puras: reciben los valores del
// formulario y devuelven un mapa campo → mensaje (mapa vacío = válido).
// Los mensajes se muestran tal cual al usuario, por eso van en español.
package validation

// Mode distingue alta de edición: el chequeo de nombre duplicado solo aplica
// en alta.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// Errors mapa campo → mensaje. Implementa error para poder devolverse desde
// los usecases y mapearse a HTTP 422 en los handlers.
type Errors map[string]string

func (e Errors) Error() string {
	for field, msg := range e {
		return field + ": " + msg
	}
	return "validación fallida"
}

// Mensajes de validación.
const (
	MsgRequired        = "Este campo es obligatorio"
	MsgDuplicateName   = "Ya existe una empresa con un nombre similar"
	MsgInvalidURL      = "Ingresa una URL válida"
	MsgInvalidAddress  = "El domicilio contiene caracteres no permitidos"
	MsgInvalidRFC      = "El RFC admite máximo 13 caracteres: mayúsculas, dígitos y &"
	MsgInvalidName     = "Este campo solo admite letras y espacios"
	MsgInvalidRegime   = "Selecciona un régimen fiscal válido"
	MsgInvalidEmail    = "Ingresa un correo válido"
	MsgPhoneHasLetters = "El teléfono no debe contener letras"
	MsgPhoneLength     = "El teléfono debe tener 10 dígitos"
	MsgInvalidRole     = "Selecciona un puesto válido"
)
