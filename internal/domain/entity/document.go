package entity

import "time"

// Tipos de documento de movimiento de almacén.
const (
	DocumentTypeReceipt          = "RECEIPT"           // recepción externa (entrada)
	DocumentTypeRelease          = "RELEASE"           // despacho externo (salida)
	DocumentTypeInternalInbound  = "INTERNAL_INBOUND"  // entrada interna
	DocumentTypeInternalOutbound = "INTERNAL_OUTBOUND" // salida interna
)

// Estados del ciclo de vida de un documento.
// DRAFT → ACCEPTED es la única transición válida; ACCEPTED y DECLINED son terminales.
const (
	DocumentStateDraft    = "DRAFT"
	DocumentStateAccepted = "ACCEPTED"
	DocumentStateDeclined = "DECLINED"
)

// Document representa un documento de movimiento de almacén (recepción, despacho
// o traslado interno). LocationFromID/LocationToID son opcionales según la
// dirección: los documentos de entrada llevan destino, los de salida llevan origen.
type Document struct {
	ID             string
	Number         string // consecutivo legible, único por tipo
	Type           string // RECEIPT, RELEASE, INTERNAL_INBOUND, INTERNAL_OUTBOUND
	State          string // DRAFT, ACCEPTED, DECLINED
	LocationFromID string // bodega origen (salidas)
	LocationToID   string // bodega destino (entradas)
	InBuffer       bool   // movimiento por búfer: exento del chequeo de disponibilidad
	Notes          string
	CreatedBy      string // UserID
	CreatedAt      time.Time
	UpdatedAt      time.Time
	AcceptedAt     *time.Time
}

// IsDraft indica si el documento sigue en borrador (editable).
func (d *Document) IsDraft() bool {
	return d.State == DocumentStateDraft
}
