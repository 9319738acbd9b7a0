package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ResourceStockRepository define el puerto de lectura del índice de
// disponibilidad por (producto, bodega). AvailableQuantity retorna exactamente
// cero cuando no hay registro: ausencia significa sin stock, no "desconocido".
//
// Upsert existe solo para herramientas de carga (cmd/seed); el motor de
// validación nunca muta este agregado.
type ResourceStockRepository interface {
	AvailableQuantity(productID, locationID string) (decimal.Decimal, error)
	Get(productID, locationID string) (*entity.ResourceStock, error)
	Upsert(stock *entity.ResourceStock) error
}
