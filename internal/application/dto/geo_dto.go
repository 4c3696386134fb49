package dto

// CoordinatesResponse mapa empresaID → [latitud, longitud].
type CoordinatesResponse struct {
	Data map[string][2]float64 `json:"data"`
	// Timestamp epoch-ms del momento en que se escribió el blob de caché.
	Timestamp int64 `json:"timestamp"`
}

// PhaseResponse entrada del catálogo de fases.
type PhaseResponse struct {
	Codigo   string `json:"codigo"`
	Slug     string `json:"slug"`
	Etiqueta string `json:"etiqueta"`
	Color    string `json:"color"`
}
