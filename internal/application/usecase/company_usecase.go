package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/domain/validation"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	txRunner    CRMTxRunner
	companyRepo repository.CompanyRepository
	dealRepo    repository.DealRepository
}

// NewCompanyUseCase construye el caso de uso con sus puertos de persistencia.
func NewCompanyUseCase(txRunner CRMTxRunner, companyRepo repository.CompanyRepository, dealRepo repository.DealRepository) *CompanyUseCase {
	return &CompanyUseCase{txRunner: txRunner, companyRepo: companyRepo, dealRepo: dealRepo}
}

// Create crea una empresa junto con su contacto inicial, en una sola
// transacción. Devuelve validation.Errors si el formulario no pasa las reglas
// (incluido el chequeo de nombre duplicado por similitud, solo en alta);
// en ese caso no se toca la persistencia.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	status := in.Estado
	if status == "" {
		status = entity.CompanyStatusToContact
	}
	if !entity.IsValidCompanyStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	names, err := uc.companyRepo.ListNames()
	if err != nil {
		return nil, err
	}

	errs := validation.ValidateCompany(validation.CompanyInput{
		Name:          in.Nombre,
		Status:        status,
		Website:       in.SitioWeb,
		Address:       in.DomicilioFisico,
		FiscalAddress: in.DomicilioFiscal,
		RFC:           in.RFC,
		LegalName:     in.RazonSocial,
		TaxRegime:     in.RegimenFiscal,
	}, validation.ModeCreate, names)

	for field, msg := range validation.ValidateContact(contactInput(in.Contacto.Nombre, in.Contacto.Emails, in.Contacto.Telefonos, in.Contacto.Celular, in.Contacto.Puesto)) {
		errs["contacto."+field] = msg
	}
	if len(errs) > 0 {
		return nil, errs
	}

	now := time.Now()
	company := &entity.Company{
		ID:             uuid.New().String(),
		Name:           in.Nombre,
		Status:         status,
		Website:        in.SitioWeb,
		Sector:         in.Giro,
		Address:        entity.CanonicalAddress(in.DomicilioFisico),
		FiscalAddress:  entity.CanonicalAddress(in.DomicilioFiscal),
		RFC:            in.RFC,
		LegalName:      in.RazonSocial,
		TaxRegime:      in.RegimenFiscal,
		OwnerID:        OwnerFromContext(ctx),
		CreatedAt:      now,
		UpdatedAt:      now,
		LastActivityAt: now,
	}
	contact := newContactEntity(company.ID, in.Contacto, now)

	err = uc.txRunner.RunCRM(ctx, func(companyRepo repository.CompanyRepository, contactRepo repository.ContactRepository) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		return contactRepo.Create(contact)
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// Update edita una empresa. El estado no puede cambiar si la empresa tiene
// tratos asociados (la promoción a cliente del flujo "ganado" usa otra vía).
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	status := in.Estado
	if status == "" {
		status = company.Status
	}
	if !entity.IsValidCompanyStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if status != company.Status {
		count, err := uc.dealRepo.CountByCompany(id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, domain.ErrStatusLocked
		}
	}

	errs := validation.ValidateCompany(validation.CompanyInput{
		Name:          in.Nombre,
		Status:        status,
		Website:       in.SitioWeb,
		Address:       in.DomicilioFisico,
		FiscalAddress: in.DomicilioFiscal,
		RFC:           in.RFC,
		LegalName:     in.RazonSocial,
		TaxRegime:     in.RegimenFiscal,
	}, validation.ModeEdit, nil)
	if len(errs) > 0 {
		return nil, errs
	}

	company.Name = in.Nombre
	company.Status = status
	company.Website = in.SitioWeb
	company.Sector = in.Giro
	company.Address = entity.CanonicalAddress(in.DomicilioFisico)
	company.FiscalAddress = entity.CanonicalAddress(in.DomicilioFiscal)
	company.RFC = in.RFC
	company.LegalName = in.RazonSocial
	company.TaxRegime = in.RegimenFiscal
	company.UpdatedAt = time.Now()

	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación.
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.companyRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una empresa por ID.
func (uc *CompanyUseCase) Delete(id string) error {
	return uc.companyRepo.Delete(id)
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:              c.ID,
		Nombre:          c.Name,
		Estado:          c.Status,
		SitioWeb:        c.Website,
		Giro:            c.Sector,
		DomicilioFisico: c.Address,
		DomicilioFiscal: c.FiscalAddress,
		RFC:             c.RFC,
		RazonSocial:     c.LegalName,
		RegimenFiscal:   c.TaxRegime,
		PropietarioID:   c.OwnerID,
		Latitud:         c.Latitude,
		Longitud:        c.Longitude,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		UltimaActividad: c.LastActivityAt,
	}
}
