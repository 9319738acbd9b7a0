package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// StockIndex es el puerto de consulta de disponibilidad que expone esta capa.
// Lo satisface tanto el repositorio Postgres como el decorador con caché Redis.
type StockIndex interface {
	AvailableQuantity(productID, locationID string) (decimal.Decimal, error)
}

// StockUseCase consulta de disponibilidad neta por (producto, bodega).
type StockUseCase struct {
	index StockIndex
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(index StockIndex) *StockUseCase {
	return &StockUseCase{index: index}
}

// Available devuelve la disponibilidad neta; sin registro es cero.
func (uc *StockUseCase) Available(productID, locationID string) (*dto.StockResponse, error) {
	if productID == "" || locationID == "" {
		return nil, domain.ErrInvalidInput
	}
	qty, err := uc.index.AvailableQuantity(productID, locationID)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{
		ProductID:         productID,
		LocationID:        locationID,
		AvailableQuantity: qty,
	}, nil
}
