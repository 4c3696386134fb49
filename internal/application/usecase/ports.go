package usecase

import (
	"context"

	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CRMTxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que empresa y contacto inicial se
// creen juntos (toda empresa conserva al menos un contacto).
type CRMTxRunner interface {
	RunCRM(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		contactRepo repository.ContactRepository,
	) error) error
}
