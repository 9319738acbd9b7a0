package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/movement"
)

func TestClassify_TiposConocidos(t *testing.T) {
	casos := []struct {
		tipo      string
		direccion movement.Direction
		salida    bool
		entrada   bool
	}{
		{entity.DocumentTypeReceipt, movement.DirectionInbound, false, true},
		{entity.DocumentTypeRelease, movement.DirectionOutbound, true, false},
		{entity.DocumentTypeInternalInbound, movement.DirectionInternalInbound, false, true},
		{entity.DocumentTypeInternalOutbound, movement.DirectionInternalOutbound, true, false},
	}

	for _, c := range casos {
		doc := &entity.Document{ID: "doc-1", Type: c.tipo, State: entity.DocumentStateDraft}
		dir, state, err := movement.Classify(doc)
		require.NoError(t, err, "tipo %s", c.tipo)
		assert.Equal(t, c.direccion, dir)
		assert.Equal(t, entity.DocumentStateDraft, state)
		assert.Equal(t, c.salida, dir.IsOutbound(), "IsOutbound para %s", c.tipo)
		assert.Equal(t, c.entrada, dir.IsInbound(), "IsInbound para %s", c.tipo)
	}
}

// Un tipo fuera del catálogo nunca se clasifica con una dirección permisiva.
func TestClassify_TipoDesconocido_RetornaError(t *testing.T) {
	doc := &entity.Document{ID: "doc-1", Type: "PRESTAMO", State: entity.DocumentStateDraft}
	_, _, err := movement.Classify(doc)
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentType)
}
