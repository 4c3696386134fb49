package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/pipeline"
)

func tm(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(t time.Time) *time.Time { return &t }

func TestNearestActivity(t *testing.T) {
	acts := []entity.Activity{
		{ID: "a1", Kind: entity.ActivityCall, DueAt: ptr(tm("2026-03-10T10:00:00Z"))},
		{ID: "a2", Kind: entity.ActivityTask, DueAt: ptr(tm("2026-03-05T10:00:00Z"))},
		{ID: "a3", Kind: entity.ActivityMeeting, DueAt: ptr(tm("2026-03-01T10:00:00Z")), CompletedAt: ptr(tm("2026-03-01T11:00:00Z"))},
		{ID: "a4", Kind: entity.ActivityCall}, // sin fecha límite: no cuenta
	}
	nearest := pipeline.NearestActivity(acts)
	require.NotNil(t, nearest)
	assert.Equal(t, "a2", nearest.ID, "la realizada y la sin fecha no compiten")
}

func TestNearestActivity_SinCandidatas(t *testing.T) {
	assert.Nil(t, pipeline.NearestActivity(nil))
	assert.Nil(t, pipeline.NearestActivity([]entity.Activity{
		{ID: "a1", CompletedAt: ptr(tm("2026-01-01T00:00:00Z"))},
		{ID: "a2"},
	}))
}

func TestIsNeglected_UmbralSieteDias(t *testing.T) {
	deal := &entity.Deal{LastActivityAt: tm("2026-03-01T00:00:00Z")}

	assert.False(t, pipeline.IsNeglected(deal, nil, tm("2026-03-07T23:59:00Z")))
	assert.True(t, pipeline.IsNeglected(deal, nil, tm("2026-03-08T00:01:00Z")))
}

func TestIsNeglected_UsaCreacionSinUltimaActividad(t *testing.T) {
	deal := &entity.Deal{CreatedAt: tm("2026-01-01T00:00:00Z")}
	assert.True(t, pipeline.IsNeglected(deal, nil, tm("2026-02-01T00:00:00Z")))
}

func TestIsNeglected_MonotonoHastaNuevaActividad(t *testing.T) {
	deal := &entity.Deal{LastActivityAt: tm("2026-03-01T00:00:00Z")}
	first := tm("2026-03-09T00:00:00Z")

	require.True(t, pipeline.IsNeglected(deal, nil, first))
	// Ticks posteriores: sigue descuidado mientras no haya actividades.
	for _, later := range []time.Time{first.Add(10 * time.Second), first.Add(time.Hour), first.Add(72 * time.Hour)} {
		assert.True(t, pipeline.IsNeglected(deal, nil, later))
	}
	// Registrar una actividad lo despeja de inmediato.
	acts := []entity.Activity{{ID: "a1", Kind: entity.ActivityCall}}
	assert.False(t, pipeline.IsNeglected(deal, acts, first.Add(time.Hour)))
}

func TestComputeCardState_PrioridadDescuidado(t *testing.T) {
	// Trato descuidado por cualquier vía muestra el glifo de descuido aunque
	// tuviera una actividad vencida (aquí no puede tenerlas por definición,
	// así que se simula el caso límite: sin actividades y muy viejo).
	deal := &entity.Deal{LastActivityAt: tm("2026-01-01T00:00:00Z")}
	st := pipeline.ComputeCardState(deal, nil, tm("2026-02-01T00:00:00Z"))
	assert.True(t, st.Neglected)
	assert.Equal(t, pipeline.GlyphNeglected, st.Glyph)
	assert.Empty(t, st.Decoration)
}

func TestComputeCardState_AgregarActividad(t *testing.T) {
	deal := &entity.Deal{LastActivityAt: tm("2026-03-01T00:00:00Z")}

	// Sin actividades pero aún no descuidado.
	st := pipeline.ComputeCardState(deal, nil, tm("2026-03-02T00:00:00Z"))
	assert.Equal(t, pipeline.GlyphAddActivity, st.Glyph)

	// Con actividades pero ninguna próxima resoluble (todas realizadas).
	acts := []entity.Activity{{ID: "a1", CompletedAt: ptr(tm("2026-03-01T12:00:00Z"))}}
	st = pipeline.ComputeCardState(deal, acts, tm("2026-03-02T00:00:00Z"))
	assert.True(t, st.HasActivities)
	assert.Equal(t, pipeline.GlyphAddActivity, st.Glyph)
}

func TestComputeCardState_GlifoPorTipoYDecoraciones(t *testing.T) {
	now := tm("2026-03-10T00:00:00Z")
	deal := &entity.Deal{LastActivityAt: now}

	// Vencida: fecha en el pasado sin realizar.
	acts := []entity.Activity{{ID: "a1", Kind: entity.ActivityCall, DueAt: ptr(tm("2026-03-09T00:00:00Z"))}}
	st := pipeline.ComputeCardState(deal, acts, now)
	assert.Equal(t, pipeline.GlyphCall, st.Glyph)
	assert.Equal(t, pipeline.DecorationOverdue, st.Decoration)

	// Próxima: dentro de 2 días inclusive.
	acts = []entity.Activity{{ID: "a2", Kind: entity.ActivityMeeting, DueAt: ptr(tm("2026-03-12T00:00:00Z"))}}
	st = pipeline.ComputeCardState(deal, acts, now)
	assert.Equal(t, pipeline.GlyphMeeting, st.Glyph)
	assert.Equal(t, pipeline.DecorationNear, st.Decoration)

	// Lejana: sin decoración.
	acts = []entity.Activity{{ID: "a3", Kind: entity.ActivityTask, DueAt: ptr(tm("2026-03-20T00:00:00Z"))}}
	st = pipeline.ComputeCardState(deal, acts, now)
	assert.Equal(t, pipeline.GlyphTask, st.Glyph)
	assert.Empty(t, st.Decoration)
}
