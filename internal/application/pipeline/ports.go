package pipeline

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// PromotionTxRunner ejecuta una función dentro de una transacción de BD con
// repositorios de empresa y trato atados a esa tx. Garantiza que el cambio de
// fase a "ganado" y la promoción de la empresa a cliente se confirmen juntos
// o ninguno.
type PromotionTxRunner interface {
	RunPromotion(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		dealRepo repository.DealRepository,
	) error) error
}
