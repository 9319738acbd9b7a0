package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// PositionRepository define el puerto de persistencia para posiciones de documento.
type PositionRepository interface {
	Create(pos *entity.Position) error
	GetByID(id string) (*entity.Position, error)
	Update(pos *entity.Position) error
	ListByDocument(documentID string) ([]*entity.Position, error)
}
