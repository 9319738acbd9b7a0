package movement

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Direction es la dirección de flujo de un documento, derivada de su tipo.
type Direction string

const (
	DirectionInbound          Direction = "INBOUND"
	DirectionOutbound         Direction = "OUTBOUND"
	DirectionInternalInbound  Direction = "INTERNAL_INBOUND"
	DirectionInternalOutbound Direction = "INTERNAL_OUTBOUND"
)

// IsOutbound indica si la dirección descuenta stock de una bodega origen
// (RELEASE e INTERNAL_OUTBOUND).
func (d Direction) IsOutbound() bool {
	return d == DirectionOutbound || d == DirectionInternalOutbound
}

// IsInbound indica si la dirección ingresa stock a una bodega destino
// (RECEIPT e INTERNAL_INBOUND).
func (d Direction) IsInbound() bool {
	return d == DirectionInbound || d == DirectionInternalInbound
}

// Classify deriva (dirección, estado) del documento. Es función pura del tipo
// declarado; un tipo fuera del catálogo retorna ErrUnknownDocumentType y el
// caller debe abortar la validación del documento, nunca asumir una dirección.
func Classify(doc *entity.Document) (Direction, string, error) {
	switch doc.Type {
	case entity.DocumentTypeReceipt:
		return DirectionInbound, doc.State, nil
	case entity.DocumentTypeRelease:
		return DirectionOutbound, doc.State, nil
	case entity.DocumentTypeInternalInbound:
		return DirectionInternalInbound, doc.State, nil
	case entity.DocumentTypeInternalOutbound:
		return DirectionInternalOutbound, doc.State, nil
	default:
		return "", "", fmt.Errorf("classify documento %q tipo %q: %w", doc.ID, doc.Type, domain.ErrUnknownDocumentType)
	}
}
