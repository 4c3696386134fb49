package repository

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// DealRepository define el puerto de persistencia para Deal.
type DealRepository interface {
	Create(deal *entity.Deal) error
	GetByID(id string) (*entity.Deal, error)
	Update(deal *entity.Deal) error
	// UpdatePhase cambia solo el código de fase del trato.
	UpdatePhase(id, phase string) error
	// TouchActivity actualiza la marca de última actividad (despeja descuido).
	TouchActivity(id string, at time.Time) error
	ListAll() ([]*entity.Deal, error)
	CountByCompany(companyID string) (int, error)
	Delete(id string) error
}
