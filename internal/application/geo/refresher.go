package geo

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// Refresher tarea de fondo que resuelve coordenadas faltantes de empresas
// contra el geocodificador y las vuelca a la caché. Cada ronda sondea el
// estado actual; el ciclo termina cuando todas las empresas con domicilio
// tienen coordenadas, al vencer el tope de tiempo o al cancelarse.
type Refresher struct {
	cache       *Cache
	geocoder    Geocoder
	companyRepo repository.CompanyRepository
	interval    time.Duration
	deadline    time.Duration
	log         zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher construye el refresher. interval es el periodo de sondeo
// (30 s en producción) y deadline el tope total por ciclo (10 min).
func NewRefresher(cache *Cache, geocoder Geocoder, companyRepo repository.CompanyRepository, interval, deadline time.Duration, log zerolog.Logger) *Refresher {
	return &Refresher{
		cache:       cache,
		geocoder:    geocoder,
		companyRepo: companyRepo,
		interval:    interval,
		deadline:    deadline,
		log:         log.With().Str("component", "geo_refresher").Logger(),
	}
}

// Start lanza un ciclo de refresco en una goroutine. Si ya hay un ciclo en
// curso no arranca otro. El ciclo hereda la cancelación de ctx y además se
// acota con el tope configurado.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		select {
		case <-r.done:
		default:
			return // ciclo en curso
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, r.deadline)
	done := make(chan struct{})
	r.cancel = cancel
	r.done = done

	go func() {
		defer cancel()
		defer close(done)
		r.run(runCtx)
	}()
}

// Stop cancela el ciclo en curso (si lo hay) y espera a que termine.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (r *Refresher) run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		complete, err := r.refreshOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				r.log.Debug().Msg("ciclo de geocodificación cancelado")
				return
			}
			r.log.Warn().Err(err).Msg("ronda de geocodificación fallida, se reintenta")
		}
		if complete {
			r.log.Info().Msg("caché de coordenadas completa")
			return
		}

		select {
		case <-ctx.Done():
			r.log.Debug().Msg("ciclo de geocodificación terminado por cancelación o tope")
			return
		case <-ticker.C:
		}
	}
}

// refreshOnce resuelve las coordenadas pendientes de una ronda. Devuelve
// true cuando ya no queda ninguna empresa con domicilio sin resolver.
// Solo re-persiste el blob si la ronda resolvió entradas nuevas.
func (r *Refresher) refreshOnce(ctx context.Context) (bool, error) {
	companies, err := r.companyRepo.List(0, 0) // limit <= 0: sin paginar
	if err != nil {
		return false, err
	}
	cached, err := r.cache.Load(ctx)
	if err != nil {
		return false, err
	}

	resolved := 0
	pending := 0
	for _, c := range companies {
		if c.Address == "" {
			continue
		}
		if _, ok := cached[c.ID]; ok {
			continue
		}
		if c.HasCoordinates() {
			cached[c.ID] = [2]float64{*c.Latitude, *c.Longitude}
			resolved++
			continue
		}
		lat, lng, err := r.geocoder.Geocode(ctx, entity.CanonicalAddress(c.Address))
		if err != nil {
			if ctx.Err() != nil {
				return false, ctx.Err()
			}
			pending++
			continue
		}
		cached[c.ID] = [2]float64{lat, lng}
		if err := r.companyRepo.UpdateCoordinates(c.ID, lat, lng); err != nil {
			r.log.Warn().Err(err).Str("empresa_id", c.ID).Msg("no se pudieron persistir coordenadas")
		}
		resolved++
	}

	if resolved > 0 {
		if err := r.cache.Save(ctx, cached); err != nil {
			return false, err
		}
		r.log.Info().Int("resueltas", resolved).Int("pendientes", pending).Msg("caché de coordenadas actualizada")
	}
	return pending == 0, nil
}
