package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para documentos de movimiento.
// Usado dentro de transacciones para la aceptación (DRAFT→ACCEPTED).
type DocumentRepository interface {
	Create(doc *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	Update(doc *entity.Document) error
	List(limit, offset int) ([]*entity.Document, error)
}
