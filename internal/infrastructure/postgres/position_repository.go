package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.PositionRepository = (*PositionRepo)(nil)

// PositionRepo implementación de PositionRepository sobre PostgreSQL (usable con pool o tx).
type PositionRepo struct {
	q Querier
}

// NewPositionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPositionRepository(q Querier) *PositionRepo {
	return &PositionRepo{q: q}
}

// Create persiste una posición nueva.
func (r *PositionRepo) Create(pos *entity.Position) error {
	query := `
		INSERT INTO positions (id, document_id, product_id, quantity, price, batch, production_date, expiration_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		pos.ID, pos.DocumentID, pos.ProductID, pos.Quantity,
		pos.Price, pos.Batch, pos.ProductionDate, pos.ExpirationDate,
		pos.CreatedAt, pos.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

// GetByID obtiene una posición por ID; nil si no existe.
func (r *PositionRepo) GetByID(id string) (*entity.Position, error) {
	query := `
		SELECT id, document_id, product_id, quantity, price, batch, production_date, expiration_date, created_at, updated_at
		FROM positions WHERE id = $1`
	var p entity.Position
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.DocumentID, &p.ProductID, &p.Quantity,
		&p.Price, &p.Batch, &p.ProductionDate, &p.ExpirationDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get position: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos editables de una posición.
func (r *PositionRepo) Update(pos *entity.Position) error {
	query := `
		UPDATE positions
		SET product_id = $2, quantity = $3, price = $4, batch = $5,
		    production_date = $6, expiration_date = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		pos.ID, pos.ProductID, pos.Quantity, pos.Price, pos.Batch,
		pos.ProductionDate, pos.ExpirationDate, pos.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update position: %w", err)
	}
	return nil
}

// ListByDocument lista las posiciones de un documento en orden de creación.
func (r *PositionRepo) ListByDocument(documentID string) ([]*entity.Position, error) {
	query := `
		SELECT id, document_id, product_id, quantity, price, batch, production_date, expiration_date, created_at, updated_at
		FROM positions WHERE document_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, documentID)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Position
	for rows.Next() {
		var p entity.Position
		if err := rows.Scan(
			&p.ID, &p.DocumentID, &p.ProductID, &p.Quantity,
			&p.Price, &p.Batch, &p.ProductionDate, &p.ExpirationDate,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
