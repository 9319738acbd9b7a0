package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appmovement "github.com/jhoicas/almacen-api/internal/application/movement"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// DocumentHandler maneja documentos de movimiento y sus posiciones.
type DocumentHandler struct {
	uc    *appmovement.DocumentUseCase
	pdfUC *appmovement.PDFUseCase
}

// NewDocumentHandler construye el handler de documentos.
func NewDocumentHandler(uc *appmovement.DocumentUseCase, pdfUC *appmovement.PDFUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc, pdfUC: pdfUC}
}

// Create godoc
// @Summary      Crear documento de movimiento (borrador)
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDocumentRequest  true  "tipo y bodegas"
// @Success      201   {object}  dto.DocumentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/documents [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doc, err := h.uc.CreateDocument(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc, nil))
}

// List godoc
// @Summary      Listar documentos
// @Tags         documents
// @Produce      json
// @Param        limit   query  int  false  "máximo de filas"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.DocumentResponse
// @Router       /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	docs, err := h.uc.ListDocuments(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d, nil))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener documento con posiciones
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "ID de documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id} [get]
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	doc, positions, err := h.uc.GetDocument(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toDocumentResponse(doc, positions))
}

// AddPosition godoc
// @Summary      Agregar posición a un borrador
// @Description  Valida atributos, fechas y disponibilidad. Si hay errores de
// @Description  campo, responde 422 con todos los errores y NO persiste.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de documento"
// @Param        body  body  dto.PositionRequest  true  "posición"
// @Success      201   {object}  dto.PositionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/documents/{id}/positions [post]
func (h *DocumentHandler) AddPosition(c *fiber.Ctx) error {
	var in dto.PositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pos, res, err := h.uc.AddPosition(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if !res.Valid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewValidationErrorResponse(res))
	}
	return c.Status(fiber.StatusCreated).JSON(toPositionResponse(pos))
}

// UpdatePosition godoc
// @Summary      Editar posición de un borrador
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id     path  string               true  "ID de documento"
// @Param        posId  path  string               true  "ID de posición"
// @Param        body   body  dto.PositionRequest  true  "posición"
// @Success      200    {object}  dto.PositionResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ValidationErrorResponse
// @Router       /api/documents/{id}/positions/{posId} [put]
func (h *DocumentHandler) UpdatePosition(c *fiber.Ctx) error {
	var in dto.PositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pos, res, err := h.uc.UpdatePosition(c.Context(), c.Params("id"), c.Params("posId"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if !res.Valid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewValidationErrorResponse(res))
	}
	return c.JSON(toPositionResponse(pos))
}

// Accept godoc
// @Summary      Aceptar documento (DRAFT→ACCEPTED)
// @Description  Revalida todas las posiciones contra el estado aceptado. Si
// @Description  alguna falla, responde 422 con los errores agregados de todas
// @Description  y el documento permanece en borrador.
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "ID de documento"
// @Success      200  {object}  dto.DocumentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Router       /api/documents/{id}/accept [post]
func (h *DocumentHandler) Accept(c *fiber.Ctx) error {
	res, err := h.uc.AcceptDocument(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	if !res.Valid() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewValidationErrorResponse(res))
	}
	doc, positions, err := h.uc.GetDocument(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(toDocumentResponse(doc, positions))
}

// Decline godoc
// @Summary      Rechazar documento (DRAFT→DECLINED)
// @Tags         documents
// @Produce      json
// @Param        id  path  string  true  "ID de documento"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/decline [post]
func (h *DocumentHandler) Decline(c *fiber.Ctx) error {
	if err := h.uc.DeclineDocument(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Descargar la remisión del documento en PDF
// @Tags         documents
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de documento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/documents/{id}/pdf [get]
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, err := h.pdfUC.GenerateDocumentPDF(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="remision.pdf"`)
	return c.Send(pdfBytes)
}

// mapDomainError traduce errores de dominio a HTTP. Las violaciones de
// contrato (referencias rotas, tipos fuera de catálogo sobre documentos ya
// persistidos) son 500: indican datos corruptos, no un error del cliente.
func mapDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrDocumentNotDraft):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_DRAFT", Message: "el documento no está en borrador"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de entrada inválidos"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrMissingReference), errors.Is(err, domain.ErrUnknownDocumentType):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "DATA_CONTRACT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toDocumentResponse(d *entity.Document, positions []*entity.Position) dto.DocumentResponse {
	out := dto.DocumentResponse{
		ID:             d.ID,
		Number:         d.Number,
		Type:           d.Type,
		State:          d.State,
		LocationFromID: d.LocationFromID,
		LocationToID:   d.LocationToID,
		InBuffer:       d.InBuffer,
		Notes:          d.Notes,
		CreatedAt:      d.CreatedAt,
		AcceptedAt:     d.AcceptedAt,
	}
	for _, p := range positions {
		out.Positions = append(out.Positions, toPositionResponse(p))
	}
	return out
}

func toPositionResponse(p *entity.Position) dto.PositionResponse {
	return dto.PositionResponse{
		ID:             p.ID,
		DocumentID:     p.DocumentID,
		ProductID:      p.ProductID,
		Quantity:       p.Quantity,
		Price:          p.Price,
		Batch:          p.Batch,
		ProductionDate: p.ProductionDate,
		ExpirationDate: p.ExpirationDate,
	}
}
