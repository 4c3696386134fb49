// Package geocoding implementa el cliente del servicio externo de
// geocodificación (API compatible con Nominatim).
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tu-usuario/crm-pro/internal/application/geo"
	"github.com/tu-usuario/crm-pro/pkg/config"
)

// Verificar en tiempo de compilación que Client implementa geo.Geocoder.
var _ geo.Geocoder = (*Client)(nil)

// Client adaptador HTTP del geocodificador. Usa net/http de la librería
// estándar; el servicio no tiene SDK.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient construye el cliente desde la configuración.
func NewClient(cfg config.GeoConfig) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			// Timeout de red por petición; el refresher acota además el ciclo completo.
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructura de respuesta del API de búsqueda ───────────────────────────────

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resuelve un domicilio a coordenadas. Si el servicio no devuelve
// resultados, retorna error (el refresher lo reintenta en el siguiente sondeo).
func (c *Client) Geocode(ctx context.Context, address string) (float64, float64, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s", c.baseURL, url.QueryEscape(address))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("crear request de geocodificación: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("llamar geocodificador: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, 0, fmt.Errorf("leer respuesta del geocodificador: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocodificador respondió %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return 0, 0, fmt.Errorf("decodificar respuesta del geocodificador: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("sin resultados para el domicilio")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitud inválida: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitud inválida: %w", err)
	}
	return lat, lng, nil
}
