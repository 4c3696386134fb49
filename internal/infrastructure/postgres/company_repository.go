package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, status, website, sector, address, fiscal_address,
	rfc, legal_name, tax_regime, owner_id, latitude, longitude,
	created_at, updated_at, last_activity_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Status, company.Website, company.Sector,
		company.Address, company.FiscalAddress, company.RFC, company.LegalName,
		company.TaxRegime, company.OwnerID, company.Latitude, company.Longitude,
		company.CreatedAt, company.UpdatedAt, company.LastActivityAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// Update actualiza todos los campos editables de la empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, status = $3, website = $4, sector = $5,
			address = $6, fiscal_address = $7, rfc = $8, legal_name = $9,
			tax_regime = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.Status, company.Website, company.Sector,
		company.Address, company.FiscalAddress, company.RFC, company.LegalName,
		company.TaxRegime, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado de la empresa.
func (r *CompanyRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE companies SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update company status: %w", err)
	}
	return nil
}

// UpdateCoordinates persiste el resultado de la geocodificación.
func (r *CompanyRepo) UpdateCoordinates(id string, lat, lng float64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE companies SET latitude = $2, longitude = $3 WHERE id = $1`, id, lat, lng)
	if err != nil {
		return fmt.Errorf("update company coordinates: %w", err)
	}
	return nil
}

// List lista empresas ordenadas por nombre. Con limit <= 0 no pagina.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY name`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListNames devuelve los nombres de todas las empresas (chequeo de duplicados).
func (r *CompanyRepo) ListNames() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT name FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("list company names: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan company name: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Delete elimina una empresa por ID (contactos y tratos caen por ON DELETE CASCADE).
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Status, &c.Website, &c.Sector, &c.Address, &c.FiscalAddress,
		&c.RFC, &c.LegalName, &c.TaxRegime, &c.OwnerID, &c.Latitude, &c.Longitude,
		&c.CreatedAt, &c.UpdatedAt, &c.LastActivityAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
