package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// ActivityUseCase casos de uso para actividades de un trato.
type ActivityUseCase struct {
	activityRepo repository.ActivityRepository
	dealRepo     repository.DealRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(activityRepo repository.ActivityRepository, dealRepo repository.DealRepository) *ActivityUseCase {
	return &ActivityUseCase{activityRepo: activityRepo, dealRepo: dealRepo}
}

// Create agenda una actividad sobre un trato y actualiza su marca de última
// actividad, lo que despeja cualquier estado de descuido.
func (uc *ActivityUseCase) Create(dealID string, in dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if !entity.IsValidActivityKind(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	deal, err := uc.dealRepo.GetByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	activity := &entity.Activity{
		ID:          uuid.New().String(),
		DealID:      dealID,
		Kind:        in.Tipo,
		AssigneeID:  in.ResponsableID,
		ContactID:   in.ContactoID,
		DueAt:       in.FechaLimite,
		Purpose:     in.Proposito,
		DurationMin: in.DuracionMin,
		Modality:    in.Modalidad,
		Location:    in.Lugar,
		TaskType:    in.Subtipo,
		CreatedAt:   now,
	}
	if err := uc.activityRepo.Create(activity); err != nil {
		return nil, err
	}
	if err := uc.dealRepo.TouchActivity(dealID, now); err != nil {
		return nil, err
	}
	return entityToActivityResponse(activity), nil
}

// ListByDeal lista las actividades de un trato.
func (uc *ActivityUseCase) ListByDeal(dealID string) ([]*dto.ActivityResponse, error) {
	list, err := uc.activityRepo.ListByDeal(dealID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, entityToActivityResponse(a))
	}
	return out, nil
}

// Complete marca una actividad como realizada.
func (uc *ActivityUseCase) Complete(id string) error {
	activity, err := uc.activityRepo.GetByID(id)
	if err != nil {
		return err
	}
	if activity == nil {
		return domain.ErrNotFound
	}
	return uc.activityRepo.Complete(id, time.Now())
}

func entityToActivityResponse(a *entity.Activity) *dto.ActivityResponse {
	if a == nil {
		return nil
	}
	return &dto.ActivityResponse{
		ID:            a.ID,
		TratoID:       a.DealID,
		Tipo:          a.Kind,
		ResponsableID: a.AssigneeID,
		ContactoID:    a.ContactID,
		FechaLimite:   a.DueAt,
		Proposito:     a.Purpose,
		DuracionMin:   a.DurationMin,
		Modalidad:     a.Modality,
		Lugar:         a.Location,
		Subtipo:       a.TaskType,
		Realizada:     a.CompletedAt,
		CreatedAt:     a.CreatedAt,
	}
}
