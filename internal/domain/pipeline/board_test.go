package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/pipeline"
)

func TestPhases_TablaBidireccional(t *testing.T) {
	require.Len(t, pipeline.Phases, 10)
	for _, p := range pipeline.Phases {
		byCode, ok := pipeline.ByCode(p.Code)
		require.True(t, ok)
		assert.Equal(t, p, byCode)

		bySlug, ok := pipeline.BySlug(p.Slug)
		require.True(t, ok)
		assert.Equal(t, p, bySlug)
	}
	_, ok := pipeline.BySlug("no-existe")
	assert.False(t, ok)
}

func TestBuildBoard_AgrupaPorFase(t *testing.T) {
	now := time.Now()
	deals := []entity.Deal{
		{ID: "d1", Phase: pipeline.PhaseClassification, LastActivityAt: now},
		{ID: "d2", Phase: pipeline.PhaseNegotiation, LastActivityAt: now},
		{ID: "d3", Phase: pipeline.PhaseClassification, LastActivityAt: now},
	}
	board := pipeline.BuildBoard(deals, nil, now)

	require.Len(t, board, 10)
	assert.Equal(t, pipeline.PhaseClassification, board[0].Phase.Code)
	require.Len(t, board[0].Cards, 2)
	assert.Equal(t, "d1", board[0].Cards[0].Deal.ID)
	assert.Equal(t, "d3", board[0].Cards[1].Deal.ID)

	neg, _ := pipeline.BySlug("negociacion")
	for _, col := range board {
		if col.Phase.Code == neg.Code {
			require.Len(t, col.Cards, 1)
			assert.Equal(t, "d2", col.Cards[0].Deal.ID)
		}
	}
}

func TestBuildBoard_DescartaFaseDesconocida(t *testing.T) {
	now := time.Now()
	deals := []entity.Deal{
		{ID: "d1", Phase: "faseFantasma", LastActivityAt: now},
		{ID: "d2", Phase: pipeline.PhaseWon, LastActivityAt: now},
	}
	board := pipeline.BuildBoard(deals, nil, now)

	total := 0
	for _, col := range board {
		total += len(col.Cards)
	}
	assert.Equal(t, 1, total, "el trato con fase desconocida no aparece en ninguna columna")
}

func TestBuildBoard_AdjuntaEstadoDerivado(t *testing.T) {
	now := time.Now()
	due := now.Add(24 * time.Hour)
	deals := []entity.Deal{{ID: "d1", Phase: pipeline.PhaseFirstContact, LastActivityAt: now}}
	acts := map[string][]entity.Activity{
		"d1": {{ID: "a1", DealID: "d1", Kind: entity.ActivityCall, DueAt: &due}},
	}
	board := pipeline.BuildBoard(deals, acts, now)

	card := board[1].Cards[0]
	assert.True(t, card.State.HasActivities)
	assert.Equal(t, pipeline.GlyphCall, card.State.Glyph)
	assert.Equal(t, pipeline.DecorationNear, card.State.Decoration)
}
