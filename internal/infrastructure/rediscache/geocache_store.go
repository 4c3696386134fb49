// Package rediscache implementa la persistencia en Redis de la caché de
// coordenadas: un único blob JSON bajo una clave fija.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/tu-usuario/crm-pro/internal/application/geo"
	"github.com/tu-usuario/crm-pro/pkg/config"
)

const geoCacheKey = "crm:geo:coordenadas"

var _ geo.BlobStore = (*GeoCacheStore)(nil)

// GeoCacheStore adaptador Redis del puerto geo.BlobStore.
type GeoCacheStore struct {
	client *redis.Client
}

// NewClient crea el cliente Redis desde la configuración y verifica conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NewGeoCacheStore construye el adaptador sobre un cliente ya conectado.
func NewGeoCacheStore(client *redis.Client) *GeoCacheStore {
	return &GeoCacheStore{client: client}
}

// Load lee el blob completo. Devuelve nil si la clave no existe.
func (s *GeoCacheStore) Load(ctx context.Context) (*geo.Blob, error) {
	raw, err := s.client.Get(ctx, geoCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get geo cache: %w", err)
	}
	var blob geo.Blob
	if err := json.Unmarshal(raw, &blob); err != nil {
		// Blob corrupto: se trata como inexistente y la siguiente escritura lo repone.
		return nil, nil
	}
	return &blob, nil
}

// Save reemplaza el blob completo. La vigencia se evalúa por timestamp al
// leer, así que la clave no lleva TTL propio.
func (s *GeoCacheStore) Save(ctx context.Context, blob *geo.Blob) error {
	raw, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("marshal geo cache: %w", err)
	}
	if err := s.client.Set(ctx, geoCacheKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("set geo cache: %w", err)
	}
	return nil
}
