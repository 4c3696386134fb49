package pipeline

import (
	"time"

	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// Card un trato con su estado derivado, listo para pintarse en una columna.
type Card struct {
	Deal  entity.Deal
	State CardState
}

// Column una columna del tablero: la fase y sus tarjetas en orden de llegada.
type Column struct {
	Phase Phase
	Cards []Card
}

// BuildBoard agrupa los tratos en las 10 columnas fijas según su código de
// fase. Un trato cuyo código no corresponde a ninguna fase conocida se
// descarta de todas las columnas sin error; el original aplicaba esta misma
// política de descarte silencioso y los consumidores dependen de ella.
func BuildBoard(deals []entity.Deal, activitiesByDeal map[string][]entity.Activity, now time.Time) []Column {
	columns := make([]Column, len(Phases))
	index := make(map[string]int, len(Phases))
	for i, p := range Phases {
		columns[i] = Column{Phase: p}
		index[p.Code] = i
	}

	for _, d := range deals {
		i, ok := index[d.Phase]
		if !ok {
			continue // fase desconocida: el trato no se muestra
		}
		acts := activitiesByDeal[d.ID]
		columns[i].Cards = append(columns[i].Cards, Card{
			Deal:  d,
			State: ComputeCardState(&d, acts, now),
		})
	}
	return columns
}
