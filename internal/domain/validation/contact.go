package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ContactInput valores del formulario de contacto.
type ContactInput struct {
	Name   string
	Emails []string
	Phones []string
	Mobile string
	Role   string
}

var (
	emailRe   = regexp.MustCompile(`^[\w.+\-]+@([A-Za-z0-9-]+\.)+[A-Za-z]{2,}$`)
	digitsRe  = regexp.MustCompile(`^[0-9]+$`)
	anyLetter = regexp.MustCompile(`[A-Za-zÁÉÍÓÚÜÑáéíóúüñ]`)
)

// ValidateContact valida el formulario de contacto. El nombre es opcional
// (el usecase asigna "Contacto de <puesto>" si viene vacío).
func ValidateContact(in ContactInput) Errors {
	errs := Errors{}

	if name := strings.TrimSpace(in.Name); name != "" && !lettersRe.MatchString(name) {
		errs["nombre"] = MsgInvalidName
	}

	for i, email := range in.Emails {
		if e := strings.TrimSpace(email); e != "" && !emailRe.MatchString(e) {
			errs[fmt.Sprintf("emails[%d]", i)] = MsgInvalidEmail
		}
	}

	for i, phone := range in.Phones {
		if msg := validatePhone(phone); msg != "" {
			errs[fmt.Sprintf("telefonos[%d]", i)] = msg
		}
	}

	if msg := validatePhone(in.Mobile); msg != "" {
		errs["celular"] = msg
	}

	switch {
	case strings.TrimSpace(in.Role) == "":
		errs["puesto"] = MsgRequired
	case !entity.IsValidContactRole(in.Role):
		errs["puesto"] = MsgInvalidRole
	}

	return errs
}

// validatePhone aplica la regla de 10 dígitos exactos. Devuelve mensaje vacío
// si el valor es válido o viene en blanco (los teléfonos son opcionales).
// Distingue "contiene letras" de "longitud incorrecta".
func validatePhone(phone string) string {
	p := strings.TrimSpace(phone)
	if p == "" {
		return ""
	}
	if anyLetter.MatchString(p) {
		return MsgPhoneHasLetters
	}
	if !digitsRe.MatchString(p) || len(p) != 10 {
		return MsgPhoneLength
	}
	return ""
}
