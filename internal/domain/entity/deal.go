package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deal representa un trato (oportunidad de venta) dentro del pipeline.
// Nace en la fase de clasificación y se mueve entre las 10 fases sin
// restricción de dirección; solo la fase "ganado" tiene efecto colateral
// (promoción de la empresa a cliente).
type Deal struct {
	ID              string
	Name            string
	CompanyID       string
	ContactID       string
	ExpectedRevenue decimal.Decimal
	Units           int
	Description     string
	Phase           string // código de fase del pipeline
	OwnerID         string
	CloseDate       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastActivityAt  time.Time // se actualiza al crear actividades; base del cálculo de descuido
}
