package repository

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// ActivityRepository define el puerto de persistencia para Activity.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	GetByID(id string) (*entity.Activity, error)
	ListByDeal(dealID string) ([]*entity.Activity, error)
	// ListByDeals carga las actividades de varios tratos en una sola consulta
	// (armado del tablero).
	ListByDeals(dealIDs []string) (map[string][]entity.Activity, error)
	// Complete registra la fecha de realización de la actividad.
	Complete(id string, at time.Time) error
	Delete(id string) error
}
