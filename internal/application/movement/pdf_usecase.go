package movement

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// PDFUseCase arma los datos de la remisión imprimible de un documento y
// delega el render al generador.
type PDFUseCase struct {
	docRepo      repository.DocumentRepository
	posRepo      repository.PositionRepository
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	generator    DocumentPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	docRepo repository.DocumentRepository,
	posRepo repository.PositionRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	generator DocumentPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		docRepo:      docRepo,
		posRepo:      posRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		generator:    generator,
	}
}

// GenerateDocumentPDF genera los bytes del PDF de la remisión.
func (uc *PDFUseCase) GenerateDocumentPDF(ctx context.Context, documentID string) ([]byte, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}

	positions, err := uc.posRepo.ListByDocument(doc.ID)
	if err != nil {
		return nil, err
	}

	rows := make([]PositionForPDF, 0, len(positions))
	for _, pos := range positions {
		row := PositionForPDF{
			Quantity: pos.Quantity,
			Price:    pos.Price,
			Batch:    pos.Batch,
		}
		product, err := uc.productRepo.GetByID(pos.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			row.ProductNumber = product.Number
			row.ProductName = product.Name
			row.UnitMeasure = product.UnitMeasure
		}
		rows = append(rows, row)
	}

	locationFrom, err := uc.optionalLocation(doc.LocationFromID)
	if err != nil {
		return nil, err
	}
	locationTo, err := uc.optionalLocation(doc.LocationToID)
	if err != nil {
		return nil, err
	}

	return uc.generator.GenerateDocumentPDF(ctx, doc, rows, locationFrom, locationTo)
}

func (uc *PDFUseCase) optionalLocation(id string) (*entity.Location, error) {
	if id == "" {
		return nil, nil
	}
	return uc.locationRepo.GetByID(id)
}
