package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	dompipeline "github.com/tu-usuario/crm-pro/internal/domain/pipeline"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────

type memDealRepo struct {
	deals map[string]*entity.Deal
}

func (r *memDealRepo) Create(d *entity.Deal) error { r.deals[d.ID] = d; return nil }

func (r *memDealRepo) GetByID(id string) (*entity.Deal, error) {
	d, ok := r.deals[id]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (r *memDealRepo) Update(d *entity.Deal) error { r.deals[d.ID] = d; return nil }

func (r *memDealRepo) UpdatePhase(id, phase string) error {
	d, ok := r.deals[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Phase = phase
	return nil
}

func (r *memDealRepo) TouchActivity(id string, at time.Time) error { return nil }

func (r *memDealRepo) ListAll() ([]*entity.Deal, error) { return nil, nil }

func (r *memDealRepo) CountByCompany(string) (int, error) { return 0, nil }

func (r *memDealRepo) Delete(id string) error { delete(r.deals, id); return nil }

type memCompanyRepo struct {
	companies map[string]*entity.Company
	updateErr error
}

func (r *memCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }

func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *memCompanyRepo) Update(c *entity.Company) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.companies[c.ID] = c
	return nil
}

func (r *memCompanyRepo) UpdateStatus(id, status string) error {
	r.companies[id].Status = status
	return nil
}

func (r *memCompanyRepo) UpdateCoordinates(string, float64, float64) error { return nil }

func (r *memCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }

func (r *memCompanyRepo) ListNames() ([]string, error) { return nil, nil }

func (r *memCompanyRepo) Delete(id string) error { delete(r.companies, id); return nil }

// memTxRunner simula la transacción: si el callback falla, revierte los
// cambios restaurando el snapshot previo de ambos repos.
type memTxRunner struct {
	dealRepo    *memDealRepo
	companyRepo *memCompanyRepo
}

func (r *memTxRunner) RunPromotion(_ context.Context, fn func(
	companyRepo repository.CompanyRepository,
	dealRepo repository.DealRepository,
) error) error {
	companySnap := make(map[string]*entity.Company, len(r.companyRepo.companies))
	for k, v := range r.companyRepo.companies {
		copied := *v
		companySnap[k] = &copied
	}
	dealSnap := make(map[string]*entity.Deal, len(r.dealRepo.deals))
	for k, v := range r.dealRepo.deals {
		copied := *v
		dealSnap[k] = &copied
	}
	if err := fn(r.companyRepo, r.dealRepo); err != nil {
		r.companyRepo.companies = companySnap
		r.dealRepo.deals = dealSnap
		return err
	}
	return nil
}

// ──────────────────────────────────────────────
// Armado
// ──────────────────────────────────────────────

func newTestMove() (*MoveUseCase, *memDealRepo, *memCompanyRepo) {
	dealRepo := &memDealRepo{deals: map[string]*entity.Deal{}}
	companyRepo := &memCompanyRepo{companies: map[string]*entity.Company{}}
	now := time.Now()

	companyRepo.companies["emp-1"] = &entity.Company{
		ID:        "emp-1",
		Name:      "Acme Corporativo",
		Status:    entity.CompanyStatusInProgress,
		Address:   "Av. Reforma 123, CDMX, México",
		CreatedAt: now,
		UpdatedAt: now,
	}
	dealRepo.deals["trato-1"] = &entity.Deal{
		ID:        "trato-1",
		Name:      "Licencias anuales",
		CompanyID: "emp-1",
		Phase:     dompipeline.PhaseNegotiation,
		CreatedAt: now,
		UpdatedAt: now,
	}

	uc := NewMoveUseCase(dealRepo, companyRepo, &memTxRunner{dealRepo: dealRepo, companyRepo: companyRepo})
	return uc, dealRepo, companyRepo
}

func clientForm() dto.UpdateCompanyRequest {
	return dto.UpdateCompanyRequest{
		Nombre:          "Acme Corporativo",
		DomicilioFisico: "Av. Reforma 123, CDMX, México",
		DomicilioFiscal: "Av. Reforma 123, CDMX, México",
		RFC:             "ACM010101AB1",
		RazonSocial:     "Acme Corporativo SA de CV",
		RegimenFiscal:   "601",
	}
}

// ──────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────

func TestAttemptMove_SlugDesconocidoNoMutaNada(t *testing.T) {
	uc, dealRepo, _ := newTestMove()

	_, err := uc.AttemptMove(context.Background(), "trato-1", "columna-inventada")

	assert.ErrorIs(t, err, domain.ErrInvalidPhase)
	assert.Equal(t, dompipeline.PhaseNegotiation, dealRepo.deals["trato-1"].Phase,
		"un slug desconocido no debe mover el trato")
}

func TestAttemptMove_TratoInexistente(t *testing.T) {
	uc, _, _ := newTestMove()

	_, err := uc.AttemptMove(context.Background(), "trato-fantasma", dompipeline.Phases[0].Slug)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttemptMove_MismaColumnaEsNoOp(t *testing.T) {
	uc, dealRepo, _ := newTestMove()
	slug, _ := dompipeline.ByCode(dompipeline.PhaseNegotiation)

	out, err := uc.AttemptMove(context.Background(), "trato-1", slug.Slug)

	require.NoError(t, err)
	assert.True(t, out.Committed)
	assert.False(t, out.RequiresConfirmation)
	assert.Equal(t, dompipeline.PhaseNegotiation, dealRepo.deals["trato-1"].Phase)
}

func TestAttemptMove_FaseOrdinariaCommiteaDirecto(t *testing.T) {
	uc, dealRepo, _ := newTestMove()
	target, _ := dompipeline.ByCode(dompipeline.PhaseProposalSent)

	out, err := uc.AttemptMove(context.Background(), "trato-1", target.Slug)

	require.NoError(t, err)
	assert.True(t, out.Committed)
	assert.Equal(t, dompipeline.PhaseProposalSent, dealRepo.deals["trato-1"].Phase)
}

func TestAttemptMove_GanadoQuedaEnStagingSinEscribir(t *testing.T) {
	uc, dealRepo, companyRepo := newTestMove()
	won, _ := dompipeline.ByCode(dompipeline.PhaseWon)

	out, err := uc.AttemptMove(context.Background(), "trato-1", won.Slug)

	require.NoError(t, err)
	assert.False(t, out.Committed)
	assert.True(t, out.RequiresConfirmation)
	require.NotNil(t, out.Empresa)
	assert.Equal(t, entity.CompanyStatusClient, out.Empresa.Estado,
		"el formulario precargado va en modo cliente")

	// Staging puro: ni el trato ni la empresa cambiaron en persistencia.
	assert.Equal(t, dompipeline.PhaseNegotiation, dealRepo.deals["trato-1"].Phase)
	assert.Equal(t, entity.CompanyStatusInProgress, companyRepo.companies["emp-1"].Status)
}

func TestConfirmWon_CommiteaFaseYPromocionJuntas(t *testing.T) {
	uc, dealRepo, companyRepo := newTestMove()
	won, _ := dompipeline.ByCode(dompipeline.PhaseWon)
	_, err := uc.AttemptMove(context.Background(), "trato-1", won.Slug)
	require.NoError(t, err)

	out, err := uc.ConfirmWon(context.Background(), "trato-1", clientForm())

	require.NoError(t, err)
	assert.True(t, out.Committed)
	assert.Equal(t, dompipeline.PhaseWon, dealRepo.deals["trato-1"].Phase)
	assert.Equal(t, entity.CompanyStatusClient, companyRepo.companies["emp-1"].Status)
	assert.Equal(t, "601", companyRepo.companies["emp-1"].TaxRegime)
}

func TestConfirmWon_FormularioInvalidoNoCommitea(t *testing.T) {
	uc, dealRepo, companyRepo := newTestMove()
	won, _ := dompipeline.ByCode(dompipeline.PhaseWon)
	_, err := uc.AttemptMove(context.Background(), "trato-1", won.Slug)
	require.NoError(t, err)

	form := clientForm()
	form.RFC = "" // cliente exige RFC

	_, err = uc.ConfirmWon(context.Background(), "trato-1", form)

	require.Error(t, err)
	assert.Equal(t, dompipeline.PhaseNegotiation, dealRepo.deals["trato-1"].Phase)
	assert.Equal(t, entity.CompanyStatusInProgress, companyRepo.companies["emp-1"].Status)

	// El staging sigue vivo: un segundo intento con formulario válido funciona.
	out, err := uc.ConfirmWon(context.Background(), "trato-1", clientForm())
	require.NoError(t, err)
	assert.True(t, out.Committed)
}

func TestConfirmWon_FalloDeEscrituraRevierteTodo(t *testing.T) {
	uc, dealRepo, companyRepo := newTestMove()
	won, _ := dompipeline.ByCode(dompipeline.PhaseWon)
	_, err := uc.AttemptMove(context.Background(), "trato-1", won.Slug)
	require.NoError(t, err)

	companyRepo.updateErr = errors.New("conexión perdida")
	_, err = uc.ConfirmWon(context.Background(), "trato-1", clientForm())

	require.Error(t, err)
	// Commit-o-nada: la fase del trato tampoco cambió.
	assert.Equal(t, dompipeline.PhaseNegotiation, dealRepo.deals["trato-1"].Phase)
	assert.Equal(t, entity.CompanyStatusInProgress, companyRepo.companies["emp-1"].Status)
}

func TestConfirmWon_SinStagingPrevio(t *testing.T) {
	uc, _, _ := newTestMove()

	_, err := uc.ConfirmWon(context.Background(), "trato-1", clientForm())

	assert.ErrorIs(t, err, domain.ErrNoPendingWin)
}

func TestCancelWon_DescartaSinEscribirNada(t *testing.T) {
	uc, dealRepo, companyRepo := newTestMove()
	won, _ := dompipeline.ByCode(dompipeline.PhaseWon)
	_, err := uc.AttemptMove(context.Background(), "trato-1", won.Slug)
	require.NoError(t, err)

	require.NoError(t, uc.CancelWon("trato-1"))

	// Nada que revertir: el estado original nunca se tocó.
	assert.Equal(t, dompipeline.PhaseNegotiation, dealRepo.deals["trato-1"].Phase)
	assert.Equal(t, entity.CompanyStatusInProgress, companyRepo.companies["emp-1"].Status)

	// Tras cancelar, confirmar exige un nuevo intento de movimiento.
	_, err = uc.ConfirmWon(context.Background(), "trato-1", clientForm())
	assert.ErrorIs(t, err, domain.ErrNoPendingWin)
}
