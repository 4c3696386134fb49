package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/crm-pro/internal/domain/similarity"
)

func TestScore_Identicos(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Score("Acme", "Acme"))
}

func TestScore_CaseInsensitive(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Score("ACME Corporativo", "acme corporativo"))
}

func TestScore_IgnoraAcentos(t *testing.T) {
	assert.Equal(t, 1.0, similarity.Score("Compañía México", "Compania Mexico"))
}

func TestScore_SinParecido(t *testing.T) {
	s := similarity.Score("Acme", "Zyxwvut")
	assert.Equal(t, 0.0, s)
}

func TestScore_ParcialEnRango(t *testing.T) {
	s := similarity.Score("Distribuidora del Norte", "Distribuidora del Sur")
	assert.Greater(t, s, 0.6, "variantes del mismo nombre deben superar el umbral")
	assert.Less(t, s, 1.0)
}

func TestScore_CadenasVacias(t *testing.T) {
	assert.Equal(t, 0.0, similarity.Score("", ""))
	assert.Equal(t, 0.0, similarity.Score("Acme", ""))
}

func TestScore_UnaSolaRuna(t *testing.T) {
	// sin bigramas no hay evidencia de similitud
	assert.Equal(t, 0.0, similarity.Score("A", "B"))
}

func TestMaxScore_ListaVacia(t *testing.T) {
	assert.Equal(t, 0.0, similarity.MaxScore("Acme", nil))
	assert.Equal(t, 0.0, similarity.MaxScore("Acme", []string{}))
}

func TestMaxScore_TomaElMayor(t *testing.T) {
	existing := []string{"Ferretería López", "Acme Corporativo", "Transportes Díaz"}
	s := similarity.MaxScore("Acme Corporativo SA", existing)
	assert.GreaterOrEqual(t, s, similarity.DuplicateThreshold)
}

func TestMaxScore_Simetrico(t *testing.T) {
	a, b := "Grupo Industrial Monterrey", "Grupo Industrial de Monterrey"
	assert.InDelta(t, similarity.Score(a, b), similarity.Score(b, a), 1e-12)
}
