package pipeline

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// NeglectAfter tiempo sin actividad tras el cual un trato sin actividades se
// marca como descuidado (7 días = 10080 minutos).
const NeglectAfter = 7 * 24 * time.Hour

// NearDeadline ventana (inclusive) en la que una actividad pendiente se
// decora como próxima a vencer.
const NearDeadline = 48 * time.Hour

// Glifos de tarjeta, en orden de prioridad de selección.
const (
	GlyphNeglected   = "descuidado"
	GlyphAddActivity = "agregar-actividad"
	GlyphCall        = "llamada"
	GlyphMeeting     = "reunion"
	GlyphTask        = "tarea"
)

// Decoraciones del glifo de actividad.
const (
	DecorationOverdue = "vencida"
	DecorationNear    = "proxima"
)

// CardState estado derivado de un trato para pintar su tarjeta. Se recalcula
// sobre datos ya cargados; no consulta la red.
type CardState struct {
	HasActivities bool
	Neglected     bool
	Nearest       *entity.Activity
	Glyph         string
	Decoration    string
}

// HasActivities informa si el trato tiene al menos una actividad.
func HasActivities(activities []entity.Activity) bool {
	return len(activities) > 0
}

// NearestActivity devuelve la actividad con fecha límite más próxima entre
// las que no tienen fecha de realización. Actividades sin fecha límite no
// cuentan; si ninguna aplica devuelve nil.
func NearestActivity(activities []entity.Activity) *entity.Activity {
	var nearest *entity.Activity
	for i := range activities {
		a := &activities[i]
		if a.CompletedAt != nil || a.DueAt == nil {
			continue
		}
		if nearest == nil || a.DueAt.Before(*nearest.DueAt) {
			nearest = a
		}
	}
	return nearest
}

// IsNeglected informa si el trato está descuidado: sin actividades y con más
// de NeglectAfter transcurrido desde su última actividad (o creación).
// Es monótono en el tiempo: una vez true solo vuelve a false al registrar
// una actividad.
func IsNeglected(deal *entity.Deal, activities []entity.Activity, now time.Time) bool {
	if HasActivities(activities) {
		return false
	}
	since := deal.LastActivityAt
	if since.IsZero() {
		since = deal.CreatedAt
	}
	return now.Sub(since) > NeglectAfter
}

// ComputeCardState deriva el estado completo de la tarjeta de un trato.
// Prioridad del glifo: descuidado > agregar actividad > glifo por tipo de la
// actividad más próxima, con decoración vencida o próxima según su fecha.
func ComputeCardState(deal *entity.Deal, activities []entity.Activity, now time.Time) CardState {
	st := CardState{
		HasActivities: HasActivities(activities),
		Neglected:     IsNeglected(deal, activities, now),
		Nearest:       NearestActivity(activities),
	}

	switch {
	case st.Neglected:
		st.Glyph = GlyphNeglected
	case st.Nearest == nil:
		st.Glyph = GlyphAddActivity
	default:
		st.Glyph = kindGlyph(st.Nearest.Kind)
		due := *st.Nearest.DueAt
		switch {
		case due.Before(now):
			st.Decoration = DecorationOverdue
		case !due.After(now.Add(NearDeadline)):
			st.Decoration = DecorationNear
		}
	}
	return st
}

func kindGlyph(kind string) string {
	switch kind {
	case entity.ActivityCall:
		return GlyphCall
	case entity.ActivityMeeting:
		return GlyphMeeting
	case entity.ActivityTask:
		return GlyphTask
	default:
		return GlyphAddActivity
	}
}
