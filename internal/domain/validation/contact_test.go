package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/validation"
)

func TestValidateContact_Valido(t *testing.T) {
	errs := validation.ValidateContact(validation.ContactInput{
		Name:   "María López",
		Emails: []string{"maria@acme.com.mx"},
		Phones: []string{"5512345678"},
		Mobile: "5598765432",
		Role:   entity.ContactRoleCompras,
	})
	assert.Empty(t, errs)
}

func TestValidateContact_NombreOpcional(t *testing.T) {
	errs := validation.ValidateContact(validation.ContactInput{Role: entity.ContactRoleVentas})
	assert.NotContains(t, errs, "nombre")
}

func TestValidateContact_NombreConDigitos(t *testing.T) {
	errs := validation.ValidateContact(validation.ContactInput{
		Name: "María 123",
		Role: entity.ContactRoleVentas,
	})
	assert.Equal(t, validation.MsgInvalidName, errs["nombre"])
}

func TestValidateContact_EmailInvalido(t *testing.T) {
	errs := validation.ValidateContact(validation.ContactInput{
		Emails: []string{"ok@acme.mx", "sin-arroba", ""},
		Role:   entity.ContactRoleVentas,
	})
	assert.NotContains(t, errs, "emails[0]")
	assert.Equal(t, validation.MsgInvalidEmail, errs["emails[1]"])
	assert.NotContains(t, errs, "emails[2]", "email vacío no se valida")
}

func TestValidateContact_TelefonoConLetras(t *testing.T) {
	errs := validation.ValidateContact(validation.ContactInput{
		Phones: []string{"55ABC45678"},
		Role:   entity.ContactRoleVentas,
	})
	assert.Equal(t, validation.MsgPhoneHasLetters, errs["telefonos[0]"])
}

func TestValidateContact_TelefonoLongitudIncorrecta(t *testing.T) {
	errs := validation.ValidateContact(validation.ContactInput{
		Phones: []string{"12345"},
		Role:   entity.ContactRoleVentas,
	})
	assert.Equal(t, validation.MsgPhoneLength, errs["telefonos[0]"])
}

func TestValidateContact_CelularOpcionalPeroValidado(t *testing.T) {
	errs := validation.ValidateContact(validation.ContactInput{Role: entity.ContactRoleVentas})
	assert.NotContains(t, errs, "celular")

	errs = validation.ValidateContact(validation.ContactInput{
		Mobile: "551234567",
		Role:   entity.ContactRoleVentas,
	})
	assert.Equal(t, validation.MsgPhoneLength, errs["celular"])
}

func TestValidateContact_PuestoObligatorioYDeCatalogo(t *testing.T) {
	errs := validation.ValidateContact(validation.ContactInput{})
	assert.Equal(t, validation.MsgRequired, errs["puesto"])

	errs = validation.ValidateContact(validation.ContactInput{Role: "becario"})
	assert.Equal(t, validation.MsgInvalidRole, errs["puesto"])
}

func TestDefaultContactName(t *testing.T) {
	assert.Equal(t, "Contacto de Compras", entity.DefaultContactName(entity.ContactRoleCompras))
}
