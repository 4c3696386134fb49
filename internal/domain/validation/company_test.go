package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/validation"
)

func validInput() validation.CompanyInput {
	return validation.CompanyInput{
		Name:    "Acme Corporativo",
		Status:  entity.CompanyStatusToContact,
		Address: "Av. Insurgentes Sur 1234, Col. Del Valle",
	}
}

func TestValidateCompany_Valida(t *testing.T) {
	errs := validation.ValidateCompany(validInput(), validation.ModeCreate, nil)
	assert.Empty(t, errs)
}

func TestValidateCompany_NombreObligatorio(t *testing.T) {
	in := validInput()
	in.Name = "   "
	errs := validation.ValidateCompany(in, validation.ModeCreate, nil)
	assert.Equal(t, validation.MsgRequired, errs["nombre"])
}

func TestValidateCompany_DomicilioObligatorio(t *testing.T) {
	in := validInput()
	in.Address = ""
	errs := validation.ValidateCompany(in, validation.ModeCreate, nil)
	assert.Equal(t, validation.MsgRequired, errs["domicilioFisico"])
}

func TestValidateCompany_DomicilioCaracteresInvalidos(t *testing.T) {
	in := validInput()
	in.Address = "Calle #5 @centro"
	errs := validation.ValidateCompany(in, validation.ModeCreate, nil)
	assert.Equal(t, validation.MsgInvalidAddress, errs["domicilioFisico"])
}

func TestValidateCompany_DuplicadoSoloEnAlta(t *testing.T) {
	existing := []string{"Acme Corporativo SA de CV"}

	errs := validation.ValidateCompany(validInput(), validation.ModeCreate, existing)
	assert.Equal(t, validation.MsgDuplicateName, errs["nombre"],
		"en alta, un nombre con similitud >= 0.60 debe rechazarse")

	errs = validation.ValidateCompany(validInput(), validation.ModeEdit, existing)
	assert.Empty(t, errs, "en edición no aplica el chequeo de duplicados")
}

func TestValidateCompany_SinExistentesNuncaDuplica(t *testing.T) {
	errs := validation.ValidateCompany(validInput(), validation.ModeCreate, []string{})
	assert.NotContains(t, errs, "nombre")
}

func TestValidateCompany_SitioWeb(t *testing.T) {
	cases := map[string]bool{
		"":                          true,
		"acme.com.mx":               true,
		"https://acme.mx/contacto":  true,
		"http://www.acme.com":       true,
		"no es una url":             false,
		"http://":                   false,
		"acme":                      false,
	}
	for website, ok := range cases {
		in := validInput()
		in.Website = website
		errs := validation.ValidateCompany(in, validation.ModeCreate, nil)
		if ok {
			assert.NotContains(t, errs, "sitioWeb", "sitio %q debería aceptarse", website)
		} else {
			assert.Equal(t, validation.MsgInvalidURL, errs["sitioWeb"], "sitio %q debería rechazarse", website)
		}
	}
}

func TestValidateCompany_FiscalesSoloParaCliente(t *testing.T) {
	// Estado distinto de cliente: los cuatro campos fiscales pueden ir vacíos.
	in := validInput()
	in.Status = entity.CompanyStatusInProgress
	errs := validation.ValidateCompany(in, validation.ModeCreate, nil)
	require.Empty(t, errs)

	// Mismo formulario con estado cliente: los cuatro son obligatorios.
	in.Status = entity.CompanyStatusClient
	errs = validation.ValidateCompany(in, validation.ModeCreate, nil)
	assert.Equal(t, validation.MsgRequired, errs["domicilioFiscal"])
	assert.Equal(t, validation.MsgRequired, errs["rfc"])
	assert.Equal(t, validation.MsgRequired, errs["razonSocial"])
	assert.Equal(t, validation.MsgRequired, errs["regimenFiscal"])
}

func TestValidateCompany_ClienteCompleto(t *testing.T) {
	in := validInput()
	in.Status = entity.CompanyStatusClient
	in.FiscalAddress = "Av. Reforma 100, CDMX"
	in.RFC = "ACM010101AB1"
	in.LegalName = "Acme Corporativo"
	in.TaxRegime = "601"
	errs := validation.ValidateCompany(in, validation.ModeCreate, nil)
	assert.Empty(t, errs)
}

func TestValidateCompany_RFCInvalido(t *testing.T) {
	in := validInput()
	in.Status = entity.CompanyStatusClient
	in.FiscalAddress = "Av. Reforma 100"
	in.LegalName = "Acme Corporativo"
	in.TaxRegime = "601"

	for _, rfc := range []string{"acm010101ab1", "ACM-010101", "ACM010101AB12X"} {
		in.RFC = rfc
		errs := validation.ValidateCompany(in, validation.ModeCreate, nil)
		assert.Equal(t, validation.MsgInvalidRFC, errs["rfc"], "rfc %q debería rechazarse", rfc)
	}
}

func TestValidateCompany_RegimenFueraDeCatalogo(t *testing.T) {
	in := validInput()
	in.Status = entity.CompanyStatusClient
	in.FiscalAddress = "Av. Reforma 100"
	in.RFC = "ACM010101AB1"
	in.LegalName = "Acme Corporativo"
	in.TaxRegime = "999"
	errs := validation.ValidateCompany(in, validation.ModeCreate, nil)
	assert.Equal(t, validation.MsgInvalidRegime, errs["regimenFiscal"])
}

func TestCanonicalAddress_Idempotente(t *testing.T) {
	cases := []string{
		"Av. Insurgentes Sur 1234",
		"Av. Insurgentes Sur 1234, México",
		"  Calle 5 de Mayo 10  ",
		"",
	}
	for _, addr := range cases {
		once := entity.CanonicalAddress(addr)
		twice := entity.CanonicalAddress(once)
		assert.Equal(t, once, twice, "canonicalizar %q debe ser idempotente", addr)
	}
	assert.Equal(t, "Av. Insurgentes Sur 1234, México", entity.CanonicalAddress("Av. Insurgentes Sur 1234"))
}
