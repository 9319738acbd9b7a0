package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación de DocumentRepository sobre PostgreSQL (usable con pool o tx).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create persiste un documento nuevo.
func (r *DocumentRepo) Create(doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, number, type, state, location_from_id, location_to_id, in_buffer, notes, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.Number, doc.Type, doc.State,
		nullIfEmpty(doc.LocationFromID), nullIfEmpty(doc.LocationToID),
		doc.InBuffer, doc.Notes, nullIfEmpty(doc.CreatedBy),
		doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID obtiene un documento por ID; nil si no existe.
func (r *DocumentRepo) GetByID(id string) (*entity.Document, error) {
	query := `
		SELECT id, number, type, state, COALESCE(location_from_id, ''), COALESCE(location_to_id, ''),
		       in_buffer, notes, COALESCE(created_by, ''), created_at, updated_at, accepted_at
		FROM documents WHERE id = $1`
	var d entity.Document
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.ID, &d.Number, &d.Type, &d.State, &d.LocationFromID, &d.LocationToID,
		&d.InBuffer, &d.Notes, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt, &d.AcceptedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// Update actualiza estado y metadatos de un documento.
func (r *DocumentRepo) Update(doc *entity.Document) error {
	query := `
		UPDATE documents
		SET state = $2, notes = $3, in_buffer = $4, updated_at = $5, accepted_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		doc.ID, doc.State, doc.Notes, doc.InBuffer, doc.UpdatedAt, doc.AcceptedAt,
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

// List lista documentos con paginación, los más recientes primero.
func (r *DocumentRepo) List(limit, offset int) ([]*entity.Document, error) {
	query := `
		SELECT id, number, type, state, COALESCE(location_from_id, ''), COALESCE(location_to_id, ''),
		       in_buffer, notes, COALESCE(created_by, ''), created_at, updated_at, accepted_at
		FROM documents ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(
			&d.ID, &d.Number, &d.Type, &d.State, &d.LocationFromID, &d.LocationToID,
			&d.InBuffer, &d.Notes, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt, &d.AcceptedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// nullIfEmpty convierte "" en NULL para columnas con FK opcional.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
