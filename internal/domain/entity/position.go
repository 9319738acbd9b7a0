package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position representa una línea (posición) de un documento de movimiento:
// producto + cantidad + atributos de trazabilidad opcionales.
//
// ID vacío marca una posición aún no persistida; el chequeo de disponibilidad
// solo aplica a posiciones nuevas (ver movement.PositionValidator).
type Position struct {
	ID             string
	DocumentID     string
	ProductID      string
	Quantity       decimal.Decimal
	Price          *decimal.Decimal // opcional; exigible según política de la bodega destino
	Batch          *string          // lote, opcional
	ProductionDate *time.Time       // opcional
	ExpirationDate *time.Time       // opcional; si ambas fechas existen, expiración >= producción
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsNew indica si la posición todavía no fue persistida.
func (p *Position) IsNew() bool {
	return p.ID == ""
}
