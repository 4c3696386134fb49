// Package pipeline (application) implementa el controlador de transiciones de
// fase de los tratos, incluido el flujo en dos pasos de la fase "ganado":
// mover a ganado deja la transición en staging y exige confirmar el formulario
// de la empresa en modo cliente; confirmar commitea fase y promoción
// atómicamente, cancelar descarta sin haber escrito nada.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	dompipeline "github.com/tu-usuario/crm-pro/internal/domain/pipeline"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/internal/domain/validation"
)

// pendingWin una promoción a cliente en staging, a la espera de confirmación.
type pendingWin struct {
	dealID      string
	companyID   string
	sourcePhase string
	stagedAt    time.Time
}

// MoveUseCase valida y ejecuta el movimiento de un trato entre columnas.
type MoveUseCase struct {
	dealRepo    repository.DealRepository
	companyRepo repository.CompanyRepository
	txRunner    PromotionTxRunner

	mu      sync.Mutex
	pending map[string]pendingWin // dealID → staging
}

// NewMoveUseCase construye el controlador de movimientos.
func NewMoveUseCase(dealRepo repository.DealRepository, companyRepo repository.CompanyRepository, txRunner PromotionTxRunner) *MoveUseCase {
	return &MoveUseCase{
		dealRepo:    dealRepo,
		companyRepo: companyRepo,
		txRunner:    txRunner,
		pending:     make(map[string]pendingWin),
	}
}

// AttemptMove intenta mover el trato a la columna destino (por slug).
//   - Slug desconocido: domain.ErrInvalidPhase, sin mutación alguna.
//   - Mismo slug de origen: no-op (committed sin escritura).
//   - Destino "ganado": no se escribe nada todavía; la transición queda en
//     staging y la respuesta trae la empresa precargada en modo cliente.
//   - Cualquier otro destino: cambio de fase directo.
func (uc *MoveUseCase) AttemptMove(ctx context.Context, dealID, targetSlug string) (*dto.MoveDealResponse, error) {
	phase, ok := dompipeline.BySlug(targetSlug)
	if !ok {
		return nil, domain.ErrInvalidPhase
	}

	deal, err := uc.dealRepo.GetByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrNotFound
	}

	if deal.Phase == phase.Code {
		return &dto.MoveDealResponse{Committed: true}, nil
	}

	if phase.Code == dompipeline.PhaseWon {
		company, err := uc.companyRepo.GetByID(deal.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrNotFound
		}

		uc.mu.Lock()
		uc.pending[dealID] = pendingWin{
			dealID:      dealID,
			companyID:   company.ID,
			sourcePhase: deal.Phase,
			stagedAt:    time.Now(),
		}
		uc.mu.Unlock()

		// Empresa precargada y bloqueada en modo cliente para el formulario
		// de confirmación. El estado solo cambia en memoria de la respuesta.
		prefilled := companyToResponse(company)
		prefilled.Estado = entity.CompanyStatusClient
		return &dto.MoveDealResponse{RequiresConfirmation: true, Empresa: prefilled}, nil
	}

	if err := uc.dealRepo.UpdatePhase(dealID, phase.Code); err != nil {
		return nil, err
	}
	return &dto.MoveDealResponse{Committed: true}, nil
}

// ConfirmWon confirma la promoción pendiente del trato: valida el formulario
// de empresa en modo cliente y commitea, en una sola transacción, el estado
// de la empresa y la fase "ganado" del trato.
func (uc *MoveUseCase) ConfirmWon(ctx context.Context, dealID string, in dto.UpdateCompanyRequest) (*dto.MoveDealResponse, error) {
	uc.mu.Lock()
	staged, ok := uc.pending[dealID]
	uc.mu.Unlock()
	if !ok {
		return nil, domain.ErrNoPendingWin
	}

	company, err := uc.companyRepo.GetByID(staged.companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	errs := validation.ValidateCompany(validation.CompanyInput{
		Name:          in.Nombre,
		Status:        entity.CompanyStatusClient,
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
	company.Status = entity.CompanyStatusClient
	company.Website = in.SitioWeb
	company.Sector = in.Giro
	company.Address = entity.CanonicalAddress(in.DomicilioFisico)
	company.FiscalAddress = entity.CanonicalAddress(in.DomicilioFiscal)
	company.RFC = in.RFC
	company.LegalName = in.RazonSocial
	company.TaxRegime = in.RegimenFiscal
	company.UpdatedAt = time.Now()

	err = uc.txRunner.RunPromotion(ctx, func(companyRepo repository.CompanyRepository, dealRepo repository.DealRepository) error {
		if err := companyRepo.Update(company); err != nil {
			return err
		}
		return dealRepo.UpdatePhase(dealID, dompipeline.PhaseWon)
	})
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	delete(uc.pending, dealID)
	uc.mu.Unlock()

	return &dto.MoveDealResponse{Committed: true, Empresa: companyToResponse(company)}, nil
}

// CancelWon descarta la promoción pendiente. El trato permanece en su fase de
// origen; como el staging nunca escribió, no hay nada que revertir.
func (uc *MoveUseCase) CancelWon(dealID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.pending[dealID]; !ok {
		return domain.ErrNoPendingWin
	}
	delete(uc.pending, dealID)
	return nil
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
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
