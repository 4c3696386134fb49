package validation

import (
	"regexp"
	"strings"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/similarity"
)

// CompanyInput valores del formulario de empresa tal como se capturan.
type CompanyInput struct {
	Name          string
	Status        string
	Website       string
	Address       string
	FiscalAddress string
	RFC           string
	LegalName     string
	TaxRegime     string
}

var (
	// URL convencional: esquema opcional, dominio, TLD de 2 a 6, path opcional.
	websiteRe = regexp.MustCompile(`^(https?://)?([A-Za-z0-9-]+\.)+[A-Za-z]{2,6}(/\S*)?$`)
	// Domicilios: letras (con acentos y ñ), dígitos, espacios, coma, punto y guion.
	addressRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ0-9\s,.\-]+$`)
	// RFC: mayúsculas, dígitos y &, máximo 13.
	rfcRe = regexp.MustCompile(`^[A-Z0-9&]{1,13}$`)
	// Razón social y nombres de persona: letras con acentos y espacios.
	lettersRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ\s]+$`)
)

// ValidateCompany valida el formulario de empresa. existingNames son los
// nombres de empresas ya registradas; solo se consultan en ModeCreate para
// el chequeo de duplicados por similitud.
func ValidateCompany(in CompanyInput, mode Mode, existingNames []string) Errors {
	errs := Errors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["nombre"] = MsgRequired
	} else if mode == ModeCreate {
		if similarity.MaxScore(name, existingNames) >= similarity.DuplicateThreshold {
			errs["nombre"] = MsgDuplicateName
		}
	}

	if w := strings.TrimSpace(in.Website); w != "" && !websiteRe.MatchString(w) {
		errs["sitioWeb"] = MsgInvalidURL
	}

	addr := strings.TrimSpace(in.Address)
	switch {
	case addr == "":
		errs["domicilioFisico"] = MsgRequired
	case !addressRe.MatchString(addr):
		errs["domicilioFisico"] = MsgInvalidAddress
	}

	// Los campos fiscales son obligatorios si y solo si el estado es cliente.
	if in.Status == entity.CompanyStatusClient {
		fiscal := strings.TrimSpace(in.FiscalAddress)
		switch {
		case fiscal == "":
			errs["domicilioFiscal"] = MsgRequired
		case !addressRe.MatchString(fiscal):
			errs["domicilioFiscal"] = MsgInvalidAddress
		}

		rfc := strings.TrimSpace(in.RFC)
		switch {
		case rfc == "":
			errs["rfc"] = MsgRequired
		case !rfcRe.MatchString(rfc):
			errs["rfc"] = MsgInvalidRFC
		}

		legal := strings.TrimSpace(in.LegalName)
		switch {
		case legal == "":
			errs["razonSocial"] = MsgRequired
		case !lettersRe.MatchString(legal):
			errs["razonSocial"] = MsgInvalidName
		}

		switch {
		case strings.TrimSpace(in.TaxRegime) == "":
			errs["regimenFiscal"] = MsgRequired
		case !entity.IsValidTaxRegime(in.TaxRegime):
			errs["regimenFiscal"] = MsgInvalidRegime
		}
	}

	return errs
}
