package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.DealRepository = (*DealRepo)(nil)

// DealRepo implementación de DealRepository (usable con pool o tx).
type DealRepo struct {
	q Querier
}

// NewDealRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDealRepository(q Querier) *DealRepo {
	return &DealRepo{q: q}
}

const dealColumns = `id, name, company_id, contact_id, expected_revenue, units,
	description, phase, owner_id, close_date, created_at, updated_at, last_activity_at`

// Create persiste un nuevo trato.
func (r *DealRepo) Create(deal *entity.Deal) error {
	query := `
		INSERT INTO deals (` + dealColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		deal.ID, deal.Name, deal.CompanyID, deal.ContactID, deal.ExpectedRevenue,
		deal.Units, deal.Description, deal.Phase, deal.OwnerID, deal.CloseDate,
		deal.CreatedAt, deal.UpdatedAt, deal.LastActivityAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert deal: %w", err)
	}
	return nil
}

// GetByID obtiene un trato por ID.
func (r *DealRepo) GetByID(id string) (*entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals WHERE id = $1`
	d, err := scanDeal(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deal: %w", err)
	}
	return d, nil
}

// Update actualiza los campos editables del trato.
func (r *DealRepo) Update(deal *entity.Deal) error {
	query := `
		UPDATE deals SET name = $2, contact_id = $3, expected_revenue = $4, units = $5,
			description = $6, close_date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		deal.ID, deal.Name, deal.ContactID, deal.ExpectedRevenue, deal.Units,
		deal.Description, deal.CloseDate, deal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update deal: %w", err)
	}
	return nil
}

// UpdatePhase cambia solo el código de fase del trato.
func (r *DealRepo) UpdatePhase(id, phase string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE deals SET phase = $2, updated_at = NOW() WHERE id = $1`, id, phase)
	if err != nil {
		return fmt.Errorf("update deal phase: %w", err)
	}
	return nil
}

// TouchActivity actualiza la marca de última actividad (despeja descuido).
func (r *DealRepo) TouchActivity(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE deals SET last_activity_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("touch deal activity: %w", err)
	}
	return nil
}

// ListAll lista todos los tratos (armado del tablero).
func (r *DealRepo) ListAll() ([]*entity.Deal, error) {
	query := `SELECT ` + dealColumns + ` FROM deals ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list deals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Deal
	for rows.Next() {
		d, err := scanDeal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deal: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// CountByCompany cuenta los tratos de una empresa (bloqueo de cambio de estado).
func (r *DealRepo) CountByCompany(companyID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM deals WHERE company_id = $1`, companyID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count deals: %w", err)
	}
	return n, nil
}

// Delete elimina un trato por ID.
func (r *DealRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM deals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deal: %w", err)
	}
	return nil
}

func scanDeal(row pgx.Row) (*entity.Deal, error) {
	var d entity.Deal
	err := row.Scan(
		&d.ID, &d.Name, &d.CompanyID, &d.ContactID, &d.ExpectedRevenue, &d.Units,
		&d.Description, &d.Phase, &d.OwnerID, &d.CloseDate, &d.CreatedAt, &d.UpdatedAt,
		&d.LastActivityAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
