package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/domain/validation"
)

// ContactUseCase casos de uso para contactos de empresa.
type ContactUseCase struct {
	contactRepo repository.ContactRepository
	companyRepo repository.CompanyRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(contactRepo repository.ContactRepository, companyRepo repository.CompanyRepository) *ContactUseCase {
	return &ContactUseCase{contactRepo: contactRepo, companyRepo: companyRepo}
}

// Create agrega un contacto a una empresa existente. Si el nombre viene vacío
// se asigna "Contacto de <puesto>".
func (uc *ContactUseCase) Create(companyID string, in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	errs := validation.ValidateContact(contactInput(in.Nombre, in.Emails, in.Telefonos, in.Celular, in.Puesto))
	if len(errs) > 0 {
		return nil, errs
	}

	contact := newContactEntity(companyID, in, time.Now())
	if err := uc.contactRepo.Create(contact); err != nil {
		return nil, err
	}
	return entityToContactResponse(contact), nil
}

// ListByCompany lista los contactos de una empresa.
func (uc *ContactUseCase) ListByCompany(companyID string) ([]*dto.ContactResponse, error) {
	list, err := uc.contactRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContactResponse, 0, len(list))
	for _, c := range list {
		out = append(out, entityToContactResponse(c))
	}
	return out, nil
}

// Update edita un contacto existente.
func (uc *ContactUseCase) Update(id string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	contact, err := uc.contactRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}

	errs := validation.ValidateContact(contactInput(in.Nombre, in.Emails, in.Telefonos, in.Celular, in.Puesto))
	if len(errs) > 0 {
		return nil, errs
	}

	contact.Name = contactNameOrDefault(in.Nombre, in.Puesto)
	contact.Emails = in.Emails
	contact.Phones = in.Telefonos
	contact.Mobile = in.Celular
	contact.Role = in.Puesto
	contact.UpdatedAt = time.Now()

	if err := uc.contactRepo.Update(contact); err != nil {
		return nil, err
	}
	return entityToContactResponse(contact), nil
}

// Delete elimina un contacto. El último contacto de una empresa no puede
// eliminarse (invariante: toda empresa conserva al menos uno).
func (uc *ContactUseCase) Delete(id string) error {
	contact, err := uc.contactRepo.GetByID(id)
	if err != nil {
		return err
	}
	if contact == nil {
		return domain.ErrNotFound
	}
	count, err := uc.contactRepo.CountByCompany(contact.CompanyID)
	if err != nil {
		return err
	}
	if count <= 1 {
		return domain.ErrLastContact
	}
	return uc.contactRepo.Delete(id)
}

func contactInput(name string, emails, phones []string, mobile, role string) validation.ContactInput {
	return validation.ContactInput{
		Name:   name,
		Emails: emails,
		Phones: phones,
		Mobile: mobile,
		Role:   role,
	}
}

func contactNameOrDefault(name, role string) string {
	if strings.TrimSpace(name) == "" {
		return entity.DefaultContactName(role)
	}
	return strings.TrimSpace(name)
}

func newContactEntity(companyID string, in dto.CreateContactRequest, now time.Time) *entity.Contact {
	return &entity.Contact{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      contactNameOrDefault(in.Nombre, in.Puesto),
		Emails:    in.Emails,
		Phones:    in.Telefonos,
		Mobile:    in.Celular,
		Role:      in.Puesto,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func entityToContactResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:        c.ID,
		EmpresaID: c.CompanyID,
		Nombre:    c.Name,
		Emails:    c.Emails,
		Telefonos: c.Phones,
		Celular:   c.Mobile,
		Puesto:    c.Role,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
