package movement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/movement"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// DocumentUseCase orquesta el ciclo de vida de documentos de movimiento y sus
// posiciones: creación en borrador, alta/edición de posiciones con validación,
// y aceptación transaccional (DRAFT→ACCEPTED, única transición válida).
type DocumentUseCase struct {
	txRunner     TxRunner
	docRepo      repository.DocumentRepository
	posRepo      repository.PositionRepository
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	validator    *movement.PositionValidator
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	txRunner TxRunner,
	docRepo repository.DocumentRepository,
	posRepo repository.PositionRepository,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	validator *movement.PositionValidator,
) *DocumentUseCase {
	return &DocumentUseCase{
		txRunner:     txRunner,
		docRepo:      docRepo,
		posRepo:      posRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		validator:    validator,
	}
}

// CreateDocument crea un documento en DRAFT. El tipo debe pertenecer al
// catálogo y la bodega acorde a la dirección debe existir: destino para
// entradas, origen para salidas.
func (uc *DocumentUseCase) CreateDocument(ctx context.Context, userID string, in dto.CreateDocumentRequest) (*entity.Document, error) {
	doc := &entity.Document{
		ID:             uuid.New().String(),
		Number:         in.Number,
		Type:           in.Type,
		State:          entity.DocumentStateDraft,
		LocationFromID: in.LocationFromID,
		LocationToID:   in.LocationToID,
		InBuffer:       in.InBuffer,
		Notes:          in.Notes,
		CreatedBy:      userID,
	}

	dir, _, err := movement.Classify(doc)
	if err != nil {
		// En la creación el tipo viene del usuario: entrada inválida, no contrato
		return nil, domain.ErrInvalidInput
	}

	if dir.IsInbound() {
		if err := uc.requireLocation(doc.LocationToID); err != nil {
			return nil, err
		}
	}
	if dir.IsOutbound() {
		if err := uc.requireLocation(doc.LocationFromID); err != nil {
			return nil, err
		}
	}

	if doc.Number == "" {
		doc.Number = nextNumber(doc.Type, doc.ID)
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if err := uc.docRepo.Create(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// AddPosition valida y persiste una posición nueva sobre un documento en
// borrador. Si la validación produce errores de campo, la posición no se
// persiste y los errores se devuelven en el Result para que el caller los
// presente todos juntos.
func (uc *DocumentUseCase) AddPosition(ctx context.Context, documentID string, in dto.PositionRequest) (*entity.Position, movement.Result, error) {
	var res movement.Result

	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, res, err
	}
	if doc == nil {
		return nil, res, domain.ErrNotFound
	}
	if !doc.IsDraft() {
		return nil, res, domain.ErrDocumentNotDraft
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, res, err
	}
	if product == nil {
		return nil, res, domain.ErrNotFound
	}
	if !in.Quantity.IsPositive() {
		return nil, res, domain.ErrInvalidInput
	}

	// ID vacío: posición nueva, sujeta al chequeo de disponibilidad
	pos := positionFromRequest("", doc.ID, in)

	res, err = uc.validator.Validate(doc, pos)
	if err != nil {
		return nil, res, err
	}
	if !res.Valid() {
		return nil, res, nil
	}

	pos.ID = uuid.New().String()
	now := time.Now()
	pos.CreatedAt = now
	pos.UpdatedAt = now
	if err := uc.posRepo.Create(pos); err != nil {
		return nil, res, err
	}
	return pos, res, nil
}

// UpdatePosition valida y persiste la edición de una posición existente.
// Al conservar su ID, el chequeo de disponibilidad no aplica: la foto de
// stock ya descuenta la reserva de esta misma posición.
func (uc *DocumentUseCase) UpdatePosition(ctx context.Context, documentID, positionID string, in dto.PositionRequest) (*entity.Position, movement.Result, error) {
	var res movement.Result

	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, res, err
	}
	if doc == nil {
		return nil, res, domain.ErrNotFound
	}
	if !doc.IsDraft() {
		return nil, res, domain.ErrDocumentNotDraft
	}

	existing, err := uc.posRepo.GetByID(positionID)
	if err != nil {
		return nil, res, err
	}
	if existing == nil || existing.DocumentID != doc.ID {
		return nil, res, domain.ErrNotFound
	}
	if !in.Quantity.IsPositive() {
		return nil, res, domain.ErrInvalidInput
	}

	pos := positionFromRequest(existing.ID, doc.ID, in)
	pos.CreatedAt = existing.CreatedAt

	res, err = uc.validator.Validate(doc, pos)
	if err != nil {
		return nil, res, err
	}
	if !res.Valid() {
		return nil, res, nil
	}

	pos.UpdatedAt = time.Now()
	if err := uc.posRepo.Update(pos); err != nil {
		return nil, res, err
	}
	return pos, res, nil
}

// AcceptDocument intenta la transición DRAFT→ACCEPTED. Revalida todas las
// posiciones contra el estado destino ACCEPTED (ahí se exigen los atributos
// obligatorios de la bodega destino) y agrega los errores de todas antes de
// decidir. Solo si el documento queda limpio se persiste la transición,
// dentro de una transacción. Aceptar es terminal.
func (uc *DocumentUseCase) AcceptDocument(ctx context.Context, documentID string) (movement.Result, error) {
	var res movement.Result

	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return res, err
	}
	if doc == nil {
		return res, domain.ErrNotFound
	}
	if !doc.IsDraft() {
		return res, domain.ErrDocumentNotDraft
	}

	positions, err := uc.posRepo.ListByDocument(doc.ID)
	if err != nil {
		return res, err
	}

	// Validar contra el estado destino, no el actual
	accepted := *doc
	accepted.State = entity.DocumentStateAccepted

	for _, pos := range positions {
		posRes, err := uc.validator.Validate(&accepted, pos)
		if err != nil {
			return res, fmt.Errorf("validar posición %q: %w", pos.ID, err)
		}
		res.Merge(posRes)
	}
	if !res.Valid() {
		return res, nil
	}

	now := time.Now()
	accepted.AcceptedAt = &now
	accepted.UpdatedAt = now

	return res, uc.txRunner.Run(ctx, func(docRepo repository.DocumentRepository, _ repository.PositionRepository) error {
		return docRepo.Update(&accepted)
	})
}

// DeclineDocument marca un borrador como DECLINED (terminal, sin validación).
func (uc *DocumentUseCase) DeclineDocument(ctx context.Context, documentID string) error {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if !doc.IsDraft() {
		return domain.ErrDocumentNotDraft
	}
	doc.State = entity.DocumentStateDeclined
	doc.UpdatedAt = time.Now()
	return uc.docRepo.Update(doc)
}

// GetDocument devuelve un documento con sus posiciones.
func (uc *DocumentUseCase) GetDocument(ctx context.Context, documentID string) (*entity.Document, []*entity.Position, error) {
	doc, err := uc.docRepo.GetByID(documentID)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, domain.ErrNotFound
	}
	positions, err := uc.posRepo.ListByDocument(doc.ID)
	if err != nil {
		return nil, nil, err
	}
	return doc, positions, nil
}

// ListDocuments lista documentos con paginación.
func (uc *DocumentUseCase) ListDocuments(ctx context.Context, limit, offset int) ([]*entity.Document, error) {
	return uc.docRepo.List(limit, offset)
}

func (uc *DocumentUseCase) requireLocation(id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	loc, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return nil
}

func positionFromRequest(id, documentID string, in dto.PositionRequest) *entity.Position {
	return &entity.Position{
		ID:             id,
		DocumentID:     documentID,
		ProductID:      in.ProductID,
		Quantity:       in.Quantity,
		Price:          in.Price,
		Batch:          in.Batch,
		ProductionDate: in.ProductionDate,
		ExpirationDate: in.ExpirationDate,
	}
}

// nextNumber genera un consecutivo legible por tipo (prefijo + sufijo del uuid).
func nextNumber(docType, id string) string {
	prefix := map[string]string{
		entity.DocumentTypeReceipt:          "REC",
		entity.DocumentTypeRelease:          "REL",
		entity.DocumentTypeInternalInbound:  "EIN",
		entity.DocumentTypeInternalOutbound: "SIN",
	}[docType]
	short := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	return prefix + "-" + short
}
