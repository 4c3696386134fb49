package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación de ActivityRepository (usable con pool o tx).
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

const activityColumns = `id, deal_id, kind, assignee_id, contact_id, due_at, purpose,
	duration_min, modality, location, task_type, completed_at, created_at`

// Create persiste una nueva actividad.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	query := `
		INSERT INTO activities (` + activityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		activity.ID, activity.DealID, activity.Kind, activity.AssigneeID, activity.ContactID,
		activity.DueAt, activity.Purpose, activity.DurationMin, activity.Modality,
		activity.Location, activity.TaskType, activity.CompletedAt, activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// GetByID obtiene una actividad por ID.
func (r *ActivityRepo) GetByID(id string) (*entity.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`
	var a entity.Activity
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.DealID, &a.Kind, &a.AssigneeID, &a.ContactID, &a.DueAt, &a.Purpose,
		&a.DurationMin, &a.Modality, &a.Location, &a.TaskType, &a.CompletedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return &a, nil
}

// ListByDeal lista las actividades de un trato, próximas primero.
func (r *ActivityRepo) ListByDeal(dealID string) ([]*entity.Activity, error) {
	query := `
		SELECT ` + activityColumns + `
		FROM activities WHERE deal_id = $1 ORDER BY due_at NULLS LAST, created_at`
	rows, err := r.q.Query(context.Background(), query, dealID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// ListByDeals carga las actividades de varios tratos en una sola consulta
// (armado del tablero). Devuelve un mapa dealID → actividades.
func (r *ActivityRepo) ListByDeals(dealIDs []string) (map[string][]entity.Activity, error) {
	byDeal := make(map[string][]entity.Activity, len(dealIDs))
	if len(dealIDs) == 0 {
		return byDeal, nil
	}
	query := `
		SELECT ` + activityColumns + `
		FROM activities WHERE deal_id = ANY($1) ORDER BY due_at NULLS LAST, created_at`
	rows, err := r.q.Query(context.Background(), query, dealIDs)
	if err != nil {
		return nil, fmt.Errorf("list activities by deals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a entity.Activity
		if err := scanActivity(rows, &a); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		byDeal[a.DealID] = append(byDeal[a.DealID], a)
	}
	return byDeal, rows.Err()
}

// Complete registra la fecha de realización de la actividad.
func (r *ActivityRepo) Complete(id string, at time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE activities SET completed_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("complete activity: %w", err)
	}
	return nil
}

// Delete elimina una actividad por ID.
func (r *ActivityRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func scanActivity(row pgx.Row, a *entity.Activity) error {
	return row.Scan(
		&a.ID, &a.DealID, &a.Kind, &a.AssigneeID, &a.ContactID, &a.DueAt, &a.Purpose,
		&a.DurationMin, &a.Modality, &a.Location, &a.TaskType, &a.CompletedAt, &a.CreatedAt,
	)
}
