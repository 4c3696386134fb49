package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/pipeline"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// DealUseCase casos de uso para tratos y el tablero kanban.
type DealUseCase struct {
	dealRepo     repository.DealRepository
	activityRepo repository.ActivityRepository
	companyRepo  repository.CompanyRepository
}

// NewDealUseCase construye el caso de uso.
func NewDealUseCase(dealRepo repository.DealRepository, activityRepo repository.ActivityRepository, companyRepo repository.CompanyRepository) *DealUseCase {
	return &DealUseCase{dealRepo: dealRepo, activityRepo: activityRepo, companyRepo: companyRepo}
}

// Create crea un trato. Todo trato nace en la fase de clasificación.
func (uc *DealUseCase) Create(ctx context.Context, in dto.CreateDealRequest) (*dto.DealResponse, error) {
	if strings.TrimSpace(in.Nombre) == "" || in.EmpresaID == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	deal := &entity.Deal{
		ID:              uuid.New().String(),
		Name:            strings.TrimSpace(in.Nombre),
		CompanyID:       in.EmpresaID,
		ContactID:       in.ContactoID,
		ExpectedRevenue: in.IngresoEsperado,
		Units:           in.Unidades,
		Description:     in.Descripcion,
		Phase:           pipeline.PhaseClassification,
		OwnerID:         OwnerFromContext(ctx),
		CloseDate:       in.FechaCierre,
		CreatedAt:       now,
		UpdatedAt:       now,
		LastActivityAt:  now,
	}
	if err := uc.dealRepo.Create(deal); err != nil {
		return nil, err
	}
	return entityToDealResponse(deal), nil
}

// GetByID obtiene un trato por ID.
func (uc *DealUseCase) GetByID(id string) (*dto.DealResponse, error) {
	deal, err := uc.dealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, nil
	}
	return entityToDealResponse(deal), nil
}

// Update edita los datos capturables de un trato. La fase solo cambia por el
// controlador de movimientos.
func (uc *DealUseCase) Update(id string, in dto.UpdateDealRequest) (*dto.DealResponse, error) {
	deal, err := uc.dealRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrNotFound
	}
	if strings.TrimSpace(in.Nombre) == "" {
		return nil, domain.ErrInvalidInput
	}

	deal.Name = strings.TrimSpace(in.Nombre)
	deal.ContactID = in.ContactoID
	deal.ExpectedRevenue = in.IngresoEsperado
	deal.Units = in.Unidades
	deal.Description = in.Descripcion
	deal.CloseDate = in.FechaCierre
	deal.UpdatedAt = time.Now()

	if err := uc.dealRepo.Update(deal); err != nil {
		return nil, err
	}
	return entityToDealResponse(deal), nil
}

// List lista todos los tratos (vista de lista, sin columnas).
func (uc *DealUseCase) List() ([]*dto.DealResponse, error) {
	deals, err := uc.dealRepo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, entityToDealResponse(d))
	}
	return out, nil
}

// Board arma el tablero completo: recarga todos los tratos y actividades y
// agrupa en las 10 columnas con el estado derivado de cada tarjeta. Siempre
// es una recarga completa, no un parche incremental, para que la membresía
// de columnas y los contadores queden consistentes tras cada mutación.
func (uc *DealUseCase) Board(now time.Time) (*dto.BoardResponse, error) {
	list, err := uc.dealRepo.ListAll()
	if err != nil {
		return nil, err
	}
	deals := make([]entity.Deal, 0, len(list))
	ids := make([]string, 0, len(list))
	for _, d := range list {
		deals = append(deals, *d)
		ids = append(ids, d.ID)
	}

	activities, err := uc.activityRepo.ListByDeals(ids)
	if err != nil {
		return nil, err
	}

	columns := pipeline.BuildBoard(deals, activities, now)
	out := &dto.BoardResponse{Columnas: make([]dto.ColumnResponse, 0, len(columns))}
	for _, col := range columns {
		cr := dto.ColumnResponse{
			Codigo:   col.Phase.Code,
			Slug:     col.Phase.Slug,
			Etiqueta: col.Phase.Label,
			Color:    col.Phase.Color,
			Tarjetas: make([]dto.CardResponse, 0, len(col.Cards)),
		}
		for _, card := range col.Cards {
			cr.Tarjetas = append(cr.Tarjetas, cardToResponse(card))
		}
		out.Columnas = append(out.Columnas, cr)
	}
	return out, nil
}

// Delete elimina un trato.
func (uc *DealUseCase) Delete(id string) error {
	return uc.dealRepo.Delete(id)
}

func cardToResponse(card pipeline.Card) dto.CardResponse {
	out := dto.CardResponse{
		Trato:      *entityToDealResponse(&card.Deal),
		Descuidado: card.State.Neglected,
		TieneActiv: card.State.HasActivities,
		Icono:      card.State.Glyph,
		Decoracion: card.State.Decoration,
	}
	if card.State.Nearest != nil {
		out.ProximaActiv = entityToActivityResponse(card.State.Nearest)
	}
	return out
}

func entityToDealResponse(d *entity.Deal) *dto.DealResponse {
	if d == nil {
		return nil
	}
	return &dto.DealResponse{
		ID:              d.ID,
		Nombre:          d.Name,
		EmpresaID:       d.CompanyID,
		ContactoID:      d.ContactID,
		IngresoEsperado: d.ExpectedRevenue,
		Unidades:        d.Units,
		Descripcion:     d.Description,
		Fase:            d.Phase,
		PropietarioID:   d.OwnerID,
		FechaCierre:     d.CloseDate,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		UltimaActividad: d.LastActivityAt,
	}
}
