// Package geo mantiene la caché de coordenadas de empresas y su ciclo de
// refresco en segundo plano contra el geocodificador externo.
package geo

import (
	"context"
	"time"
)

// Cache caché de coordenadas con expiración por blob completo.
type Cache struct {
	store BlobStore
	ttl   time.Duration
	now   func() time.Time
}

// NewCache construye la caché. ttlDays es la vigencia del blob completo
// desde su última escritura (30 días en producción).
func NewCache(store BlobStore, ttlDays int) *Cache {
	return &Cache{
		store: store,
		ttl:   time.Duration(ttlDays) * 24 * time.Hour,
		now:   time.Now,
	}
}

// Load lee el mapa de coordenadas. Si el blob no existe o su antigüedad
// supera la vigencia, se trata como vacío (mapa sin entradas, no nil).
func (c *Cache) Load(ctx context.Context) (map[string][2]float64, error) {
	blob, err := c.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return map[string][2]float64{}, nil
	}
	writtenAt := time.UnixMilli(blob.Timestamp)
	if c.now().Sub(writtenAt) > c.ttl {
		return map[string][2]float64{}, nil
	}
	if blob.Data == nil {
		return map[string][2]float64{}, nil
	}
	return blob.Data, nil
}

// Snapshot lee el mapa junto con el timestamp del blob (epoch-ms). Para un
// blob vencido o inexistente devuelve mapa vacío y timestamp cero.
func (c *Cache) Snapshot(ctx context.Context) (map[string][2]float64, int64, error) {
	blob, err := c.store.Load(ctx)
	if err != nil {
		return nil, 0, err
	}
	if blob == nil || c.now().Sub(time.UnixMilli(blob.Timestamp)) > c.ttl {
		return map[string][2]float64{}, 0, nil
	}
	data := blob.Data
	if data == nil {
		data = map[string][2]float64{}
	}
	return data, blob.Timestamp, nil
}

// Save reemplaza el blob completo con el mapa actual y timestamp fresco.
func (c *Cache) Save(ctx context.Context, data map[string][2]float64) error {
	return c.store.Save(ctx, &Blob{
		Data:      data,
		Timestamp: c.now().UnixMilli(),
	})
}
