package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDocumentRequest body para POST /api/documents.
// LocationFromID es obligatorio para salidas; LocationToID para entradas.
type CreateDocumentRequest struct {
	Number         string `json:"number,omitempty"`
	Type           string `json:"type"` // RECEIPT, RELEASE, INTERNAL_INBOUND, INTERNAL_OUTBOUND
	LocationFromID string `json:"location_from_id,omitempty"`
	LocationToID   string `json:"location_to_id,omitempty"`
	InBuffer       bool   `json:"in_buffer,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// PositionRequest body para agregar o editar una posición de documento.
type PositionRequest struct {
	ProductID      string           `json:"product_id"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Batch          *string          `json:"batch,omitempty"`
	ProductionDate *time.Time       `json:"production_date,omitempty"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
}

// DocumentResponse representación HTTP de un documento.
type DocumentResponse struct {
	ID             string             `json:"id"`
	Number         string             `json:"number"`
	Type           string             `json:"type"`
	State          string             `json:"state"`
	LocationFromID string             `json:"location_from_id,omitempty"`
	LocationToID   string             `json:"location_to_id,omitempty"`
	InBuffer       bool               `json:"in_buffer"`
	Notes          string             `json:"notes,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	AcceptedAt     *time.Time         `json:"accepted_at,omitempty"`
	Positions      []PositionResponse `json:"positions,omitempty"`
}

// PositionResponse representación HTTP de una posición.
type PositionResponse struct {
	ID             string           `json:"id"`
	DocumentID     string           `json:"document_id"`
	ProductID      string           `json:"product_id"`
	Quantity       decimal.Decimal  `json:"quantity"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	Batch          *string          `json:"batch,omitempty"`
	ProductionDate *time.Time       `json:"production_date,omitempty"`
	ExpirationDate *time.Time       `json:"expiration_date,omitempty"`
}

// StockResponse disponibilidad neta de un producto en una bodega.
type StockResponse struct {
	ProductID         string          `json:"product_id"`
	LocationID        string          `json:"location_id"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
}

// LocationResponse representación HTTP de una bodega.
type LocationResponse struct {
	ID                    string    `json:"id"`
	Number                string    `json:"number"`
	Name                  string    `json:"name"`
	RequirePrice          bool      `json:"require_price"`
	RequireBatch          bool      `json:"require_batch"`
	RequireProductionDate bool      `json:"require_production_date"`
	RequireExpirationDate bool      `json:"require_expiration_date"`
	DraftMakesReservation bool      `json:"draft_makes_reservation"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Name        string    `json:"name"`
	UnitMeasure string    `json:"unit_measure,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationRequest body para crear/editar una bodega con sus banderas de política.
type LocationRequest struct {
	Number                string `json:"number"`
	Name                  string `json:"name"`
	RequirePrice          bool   `json:"require_price"`
	RequireBatch          bool   `json:"require_batch"`
	RequireProductionDate bool   `json:"require_production_date"`
	RequireExpirationDate bool   `json:"require_expiration_date"`
	DraftMakesReservation bool   `json:"draft_makes_reservation"`
}

// ProductRequest body para crear un producto.
type ProductRequest struct {
	Number      string `json:"number"`
	Name        string `json:"name"`
	UnitMeasure string `json:"unit_measure,omitempty"`
}
