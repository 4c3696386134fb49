package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/domain/validation"
)

// ──────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────

type memCompanyRepo struct {
	companies map[string]*entity.Company
	creates   int
}

func (r *memCompanyRepo) Create(c *entity.Company) error {
	r.companies[c.ID] = c
	r.creates++
	return nil
}

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) UpdateStatus(id, status string) error {
	r.companies[id].Status = status
	return nil
}

func (r *memCompanyRepo) UpdateCoordinates(string, float64, float64) error { return nil }

func (r *memCompanyRepo) List(int, int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memCompanyRepo) ListNames() ([]string, error) {
	names := make([]string, 0, len(r.companies))
	for _, c := range r.companies {
		names = append(names, c.Name)
	}
	return names, nil
}

func (r *memCompanyRepo) Delete(id string) error { delete(r.companies, id); return nil }

type memContactRepo struct {
	contacts map[string]*entity.Contact
	creates  int
}

func (r *memContactRepo) Create(c *entity.Contact) error {
	r.contacts[c.ID] = c
	r.creates++
	return nil
}

func (r *memContactRepo) GetByID(id string) (*entity.Contact, error) {
	c, ok := r.contacts[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *memContactRepo) ListByCompany(companyID string) ([]*entity.Contact, error) {
	var out []*entity.Contact
	for _, c := range r.contacts {
		if c.CompanyID == companyID {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memContactRepo) CountByCompany(companyID string) (int, error) {
	n := 0
	for _, c := range r.contacts {
		if c.CompanyID == companyID {
			n++
		}
	}
	return n, nil
}

func (r *memContactRepo) Update(c *entity.Contact) error { r.contacts[c.ID] = c; return nil }

func (r *memContactRepo) Delete(id string) error { delete(r.contacts, id); return nil }

type memDealCounter struct {
	byCompany map[string]int
}

func (r *memDealCounter) Create(*entity.Deal) error             { return nil }
func (r *memDealCounter) GetByID(string) (*entity.Deal, error)  { return nil, nil }
func (r *memDealCounter) Update(*entity.Deal) error             { return nil }
func (r *memDealCounter) UpdatePhase(string, string) error      { return nil }
func (r *memDealCounter) TouchActivity(string, time.Time) error { return nil }
func (r *memDealCounter) ListAll() ([]*entity.Deal, error)      { return nil, nil }
func (r *memDealCounter) Delete(string) error                   { return nil }

func (r *memDealCounter) CountByCompany(companyID string) (int, error) {
	return r.byCompany[companyID], nil
}

// memCRMTxRunner pasa los repos reales al callback; sin rollback porque los
// tests de validación verifican que ni siquiera se llega a escribir.
type memCRMTxRunner struct {
	companyRepo *memCompanyRepo
	contactRepo *memContactRepo
}

func (r *memCRMTxRunner) RunCRM(_ context.Context, fn func(
	companyRepo repository.CompanyRepository,
	contactRepo repository.ContactRepository,
) error) error {
	return fn(r.companyRepo, r.contactRepo)
}

func newTestCompanyUC() (*CompanyUseCase, *memCompanyRepo, *memContactRepo, *memDealCounter) {
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	contactRepo := &memContactRepo{contacts: map[string]*entity.Contact{}}
	dealRepo := &memDealCounter{byCompany: map[string]int{}}
	tx := &memCRMTxRunner{companyRepo: companyRepo, contactRepo: contactRepo}
	return NewCompanyUseCase(tx, companyRepo, dealRepo), companyRepo, contactRepo, dealRepo
}

func validCompanyForm() dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Nombre:          "Distribuidora del Norte",
		DomicilioFisico: "Av. Constitución 400, Monterrey",
		Contacto: dto.CreateContactRequest{
			Nombre: "Laura Méndez",
			Puesto: entity.ContactRoleCompras,
		},
	}
}

// ──────────────────────────────────────────────
// Tests de alta de empresa
// ──────────────────────────────────────────────

func TestCompanyCreate_AltaConContactoInicial(t *testing.T) {
	uc, companyRepo, contactRepo, _ := newTestCompanyUC()

	out, err := uc.Create(context.Background(), validCompanyForm())

	require.NoError(t, err)
	assert.Equal(t, entity.CompanyStatusToContact, out.Estado, "sin estado capturado nace porContactar")
	assert.Equal(t, "Av. Constitución 400, Monterrey, México", out.DomicilioFisico,
		"el domicilio se canonicaliza con el sufijo de país")
	assert.Equal(t, 1, companyRepo.creates)
	assert.Equal(t, 1, contactRepo.creates, "el contacto inicial se crea en la misma operación")
}

func TestCompanyCreate_DomicilioVacioNoTocaPersistencia(t *testing.T) {
	uc, companyRepo, contactRepo, _ := newTestCompanyUC()

	form := validCompanyForm()
	form.DomicilioFisico = "   "

	_, err := uc.Create(context.Background(), form)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.MsgRequired, verrs["domicilioFisico"])
	assert.Equal(t, 0, companyRepo.creates, "un formulario inválido no escribe nada")
	assert.Equal(t, 0, contactRepo.creates)
}

func TestCompanyCreate_NombreSimilarRechazadoSoloEnAlta(t *testing.T) {
	uc, companyRepo, _, _ := newTestCompanyUC()
	companyRepo.companies["existente"] = &entity.Company{
		ID:   "existente",
		Name: "Distribuidora del Norte SA de CV",
	}

	_, err := uc.Create(context.Background(), validCompanyForm())

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "nombre", "el duplicado por similitud bloquea el alta")
	assert.Equal(t, 0, companyRepo.creates)
}

func TestCompanyCreate_ContactoInvalidoConPrefijo(t *testing.T) {
	uc, _, _, _ := newTestCompanyUC()

	form := validCompanyForm()
	form.Contacto.Puesto = "astronauta"

	_, err := uc.Create(context.Background(), form)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "contacto.puesto",
		"los errores del contacto inicial van con prefijo contacto.")
}

func TestCompanyCreate_ClienteExigeCamposFiscales(t *testing.T) {
	uc, companyRepo, _, _ := newTestCompanyUC()

	form := validCompanyForm()
	form.Estado = entity.CompanyStatusClient

	_, err := uc.Create(context.Background(), form)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.MsgRequired, verrs["domicilioFiscal"])
	assert.Equal(t, validation.MsgRequired, verrs["rfc"])
	assert.Equal(t, validation.MsgRequired, verrs["razonSocial"])
	assert.Equal(t, validation.MsgRequired, verrs["regimenFiscal"])
	assert.Equal(t, 0, companyRepo.creates)
}

// ──────────────────────────────────────────────
// Tests de edición de empresa
// ──────────────────────────────────────────────

func TestCompanyUpdate_EstadoBloqueadoConTratos(t *testing.T) {
	uc, companyRepo, _, dealRepo := newTestCompanyUC()
	companyRepo.companies["emp-1"] = &entity.Company{
		ID:      "emp-1",
		Name:    "Acme",
		Status:  entity.CompanyStatusInProgress,
		Address: "Calle 1, México",
	}
	dealRepo.byCompany["emp-1"] = 2

	_, err := uc.Update("emp-1", dto.UpdateCompanyRequest{
		Nombre:          "Acme",
		Estado:          entity.CompanyStatusLost,
		DomicilioFisico: "Calle 1, México",
	})

	assert.ErrorIs(t, err, domain.ErrStatusLocked)
	assert.Equal(t, entity.CompanyStatusInProgress, companyRepo.companies["emp-1"].Status)
}

func TestCompanyUpdate_SinTratosPuedeCambiarEstado(t *testing.T) {
	uc, companyRepo, _, _ := newTestCompanyUC()
	companyRepo.companies["emp-1"] = &entity.Company{
		ID:      "emp-1",
		Name:    "Acme",
		Status:  entity.CompanyStatusInProgress,
		Address: "Calle 1, México",
	}

	out, err := uc.Update("emp-1", dto.UpdateCompanyRequest{
		Nombre:          "Acme",
		Estado:          entity.CompanyStatusContactLater,
		DomicilioFisico: "Calle 1, México",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CompanyStatusContactLater, out.Estado)
}

func TestCompanyUpdate_MismoNombreNoDisparaDuplicado(t *testing.T) {
	// En edición no corre el chequeo de similitud: conservar el propio nombre
	// no puede marcar duplicado.
	uc, companyRepo, _, _ := newTestCompanyUC()
	companyRepo.companies["emp-1"] = &entity.Company{
		ID:      "emp-1",
		Name:    "Distribuidora del Norte",
		Status:  entity.CompanyStatusInProgress,
		Address: "Calle 1, México",
	}

	_, err := uc.Update("emp-1", dto.UpdateCompanyRequest{
		Nombre:          "Distribuidora del Norte",
		DomicilioFisico: "Calle 1, México",
	})

	require.NoError(t, err)
}

// ──────────────────────────────────────────────
// Tests de contactos
// ──────────────────────────────────────────────

func newTestContactUC() (*ContactUseCase, *memCompanyRepo, *memContactRepo) {
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	contactRepo := &memContactRepo{contacts: map[string]*entity.Contact{}}
	companyRepo.companies["emp-1"] = &entity.Company{ID: "emp-1", Name: "Acme"}
	return NewContactUseCase(contactRepo, companyRepo), companyRepo, contactRepo
}

func TestContactCreate_NombreVacioRecibePorDefecto(t *testing.T) {
	uc, _, _ := newTestContactUC()

	out, err := uc.Create("emp-1", dto.CreateContactRequest{
		Puesto: entity.ContactRoleFinanzas,
	})

	require.NoError(t, err)
	assert.Equal(t, "Contacto de Finanzas", out.Nombre)
}

func TestContactCreate_EmpresaInexistente(t *testing.T) {
	uc, _, _ := newTestContactUC()

	_, err := uc.Create("emp-fantasma", dto.CreateContactRequest{
		Puesto: entity.ContactRoleVentas,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactDelete_UltimoContactoNoSeElimina(t *testing.T) {
	uc, _, contactRepo := newTestContactUC()
	contactRepo.contacts["c-1"] = &entity.Contact{ID: "c-1", CompanyID: "emp-1"}

	err := uc.Delete("c-1")

	assert.ErrorIs(t, err, domain.ErrLastContact)
	assert.Len(t, contactRepo.contacts, 1, "el último contacto permanece")
}

func TestContactDelete_ConOtroContactoSiProcede(t *testing.T) {
	uc, _, contactRepo := newTestContactUC()
	contactRepo.contacts["c-1"] = &entity.Contact{ID: "c-1", CompanyID: "emp-1"}
	contactRepo.contacts["c-2"] = &entity.Contact{ID: "c-2", CompanyID: "emp-1"}

	err := uc.Delete("c-1")

	require.NoError(t, err)
	assert.Len(t, contactRepo.contacts, 1)
}
