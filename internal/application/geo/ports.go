package geo

import "context"

// Blob es el contenido persistido de la caché de coordenadas: el mapa
// completo empresaID → [lat, lng] más el momento de escritura del blob
// entero (epoch-ms). La expiración se mide sobre ese timestamp único, no
// por entrada.
type Blob struct {
	Data      map[string][2]float64 `json:"data"`
	Timestamp int64                 `json:"timestamp"`
}

// BlobStore puerto de persistencia del blob de caché (Redis en producción).
type BlobStore interface {
	Load(ctx context.Context) (*Blob, error) // nil si no existe
	Save(ctx context.Context, blob *Blob) error
}

// Geocoder puerto del servicio externo de geocodificación.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}
