package movement

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la transición DRAFT→ACCEPTED
// sea atómica respecto a las posiciones del documento.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		docRepo repository.DocumentRepository,
		posRepo repository.PositionRepository,
	) error) error
}

// PositionForPDF fila de la tabla de posiciones en la remisión impresa.
type PositionForPDF struct {
	ProductNumber string
	ProductName   string
	Quantity      decimal.Decimal
	UnitMeasure   string
	Price         *decimal.Decimal
	Batch         *string
}

// DocumentPDFGenerator genera la representación imprimible (remisión) de un
// documento de movimiento.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(
		ctx context.Context,
		doc *entity.Document,
		positions []PositionForPDF,
		locationFrom, locationTo *entity.Location,
	) ([]byte, error)
}
