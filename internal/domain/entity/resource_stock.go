package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResourceStock es la foto de disponibilidad por (producto, bodega):
// cantidad física menos lo ya comprometido por salidas pendientes que reservan.
// Este motor nunca la muta; solo lee un valor puntual al validar. La lectura es
// eventualmente consistente: no hay bloqueo entre la lectura y el commit del
// movimiento (ver DESIGN.md).
type ResourceStock struct {
	ProductID         string
	LocationID        string
	AvailableQuantity decimal.Decimal
	UpdatedAt         time.Time
}
