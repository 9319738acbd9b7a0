package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/movement"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ResourceStockRepository = (*ResourceStockRepo)(nil)
var _ movement.StockIndex = (*ResourceStockRepo)(nil)

// ResourceStockRepo lectura del índice de disponibilidad sobre PostgreSQL.
// El agregado lo mantiene el proceso externo que confirma movimientos; aquí
// solo se lee una foto puntual, sin bloqueo (ver DESIGN.md sobre la carrera
// lectura-decisión).
type ResourceStockRepo struct {
	pool *pgxpool.Pool
}

// NewResourceStockRepository construye el adaptador.
func NewResourceStockRepository(pool *pgxpool.Pool) *ResourceStockRepo {
	return &ResourceStockRepo{pool: pool}
}

// AvailableQuantity devuelve la disponibilidad neta; sin registro retorna cero.
func (r *ResourceStockRepo) AvailableQuantity(productID, locationID string) (decimal.Decimal, error) {
	query := `
		SELECT available_quantity
		FROM resource_stock WHERE product_id = $1 AND location_id = $2`
	var qty decimal.Decimal
	err := r.pool.QueryRow(context.Background(), query, productID, locationID).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Ausencia = cero stock, no "desconocido"
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get available quantity: %w", err)
	}
	return qty, nil
}

// Get obtiene la foto completa; nil si no existe registro.
func (r *ResourceStockRepo) Get(productID, locationID string) (*entity.ResourceStock, error) {
	query := `
		SELECT product_id, location_id, available_quantity, updated_at
		FROM resource_stock WHERE product_id = $1 AND location_id = $2`
	var s entity.ResourceStock
	err := r.pool.QueryRow(context.Background(), query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.AvailableQuantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get resource stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza la disponibilidad (solo herramientas de carga).
func (r *ResourceStockRepo) Upsert(stock *entity.ResourceStock) error {
	query := `
		INSERT INTO resource_stock (product_id, location_id, available_quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET available_quantity = EXCLUDED.available_quantity, updated_at = now()`
	_, err := r.pool.Exec(context.Background(), query,
		stock.ProductID, stock.LocationID, stock.AvailableQuantity,
	)
	if err != nil {
		return fmt.Errorf("upsert resource stock: %w", err)
	}
	return nil
}
