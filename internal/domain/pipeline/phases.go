// Package pipeline define el tablero de 10 fases de los tratos y el estado
// derivado de cada tarjeta (descuido, próxima actividad, icono). Es la única
// fuente de verdad del mapeo código ↔ slug ↔ etiqueta ↔ color.
package pipeline

// Códigos de fase, en el orden fijo del tablero.
const (
	PhaseClassification = "clasificacion"
	PhaseFirstContact   = "primerContacto"
	PhaseMeetingSet     = "citaAgendada"
	PhaseNeedsAnalysis  = "deteccionNecesidades"
	PhaseProposalSent   = "propuestaEnviada"
	PhaseNegotiation    = "negociacion"
	PhaseInternalOK     = "aprobacionInterna"
	PhaseClosing        = "cierre"
	PhaseWon            = "ganado"
	PhaseLost           = "perdido"
)

// Phase describe una fase del pipeline: código persistido, slug de columna,
// etiqueta y color de presentación.
type Phase struct {
	Code  string
	Slug  string
	Label string
	Color string
}

// Phases las 10 fases en orden. El orden define las columnas del tablero.
var Phases = []Phase{
	{Code: PhaseClassification, Slug: "clasificacion", Label: "Clasificación", Color: "#9E9E9E"},
	{Code: PhaseFirstContact, Slug: "primer-contacto", Label: "Primer contacto", Color: "#03A9F4"},
	{Code: PhaseMeetingSet, Slug: "cita-agendada", Label: "Cita agendada", Color: "#00BCD4"},
	{Code: PhaseNeedsAnalysis, Slug: "deteccion-necesidades", Label: "Detección de necesidades", Color: "#009688"},
	{Code: PhaseProposalSent, Slug: "propuesta-enviada", Label: "Propuesta enviada", Color: "#8BC34A"},
	{Code: PhaseNegotiation, Slug: "negociacion", Label: "Negociación", Color: "#FFC107"},
	{Code: PhaseInternalOK, Slug: "aprobacion-interna", Label: "Aprobación interna", Color: "#FF9800"},
	{Code: PhaseClosing, Slug: "cierre", Label: "Cierre", Color: "#FF5722"},
	{Code: PhaseWon, Slug: "ganado", Label: "Ganado", Color: "#4CAF50"},
	{Code: PhaseLost, Slug: "perdido", Label: "Perdido", Color: "#F44336"},
}

var (
	byCode = map[string]Phase{}
	bySlug = map[string]Phase{}
)

func init() {
	for _, p := range Phases {
		byCode[p.Code] = p
		bySlug[p.Slug] = p
	}
}

// ByCode resuelve una fase por su código persistido.
func ByCode(code string) (Phase, bool) {
	p, ok := byCode[code]
	return p, ok
}

// BySlug resuelve una fase por el slug de su columna.
func BySlug(slug string) (Phase, bool) {
	p, ok := bySlug[slug]
	return p, ok
}

// IsValidCode informa si el código pertenece a las 10 fases.
func IsValidCode(code string) bool {
	_, ok := byCode[code]
	return ok
}
