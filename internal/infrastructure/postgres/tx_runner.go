package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	apppipeline "github.com/tu-usuario/crm-pro/internal/application/pipeline"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Ensure TxRunner implements usecase.CRMTxRunner and pipeline.PromotionTxRunner.
var _ usecase.CRMTxRunner = (*TxRunner)(nil)
var _ apppipeline.PromotionTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCRM inicia una transacción con repos de empresa y contacto atados a la tx
// (alta de empresa con su contacto inicial) y hace Commit o Rollback.
func (r *TxRunner) RunCRM(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	contactRepo repository.ContactRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	contactRepo := NewContactRepository(tx)

	if err := fn(companyRepo, contactRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPromotion inicia una transacción con repos de empresa y trato (promoción
// a cliente al confirmar un trato ganado): ambos cambios se confirman juntos
// o ninguno.
func (r *TxRunner) RunPromotion(ctx context.Context, fn func(
	companyRepo repository.CompanyRepository,
	dealRepo repository.DealRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	companyRepo := NewCompanyRepository(tx)
	dealRepo := NewDealRepository(tx)

	if err := fn(companyRepo, dealRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
