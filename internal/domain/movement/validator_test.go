package movement_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/movement"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de colaboradores
// ──────────────────────────────────────────────────────────────────────────────

type fakeLocations struct {
	byID map[string]*entity.Location
}

func (f *fakeLocations) GetByID(id string) (*entity.Location, error) {
	return f.byID[id], nil
}

type fakeStock struct {
	available map[string]decimal.Decimal // key: productID|locationID
}

func (f *fakeStock) AvailableQuantity(productID, locationID string) (decimal.Decimal, error) {
	q, ok := f.available[productID+"|"+locationID]
	if !ok {
		// Ausencia de registro = cero stock, no error
		return decimal.Zero, nil
	}
	return q, nil
}

func newValidator(locs ...*entity.Location) (*movement.PositionValidator, *fakeStock) {
	byID := make(map[string]*entity.Location)
	for _, l := range locs {
		byID[l.ID] = l
	}
	stock := &fakeStock{available: make(map[string]decimal.Decimal)}
	return movement.NewPositionValidator(&fakeLocations{byID: byID}, stock), stock
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckAttributesRequirement
// ──────────────────────────────────────────────────────────────────────────────

// Recibo ACCEPTED hacia bodega que exige precio y lote: la posición trae precio
// pero no lote → exactamente un error sobre batch.
func TestCheckAtributos_ReciboAceptadoSinLote_FallaSoloEnBatch(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", RequirePrice: true, RequireBatch: true}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeReceipt, State: entity.DocumentStateAccepted, LocationToID: "bod-1"}
	pos := &entity.Position{ID: "pos-1", DocumentID: "doc-1", ProductID: "prod-1", Price: decPtr("10.50")}

	res, err := v.CheckAttributesRequirement(doc, pos)
	require.NoError(t, err)

	assert.False(t, res.Valid())
	require.Len(t, res.Errors(), 1, "debe fallar exactamente un campo")
	assert.Equal(t, movement.FieldBatch, res.Errors()[0].Field)
	assert.Equal(t, movement.MsgBatchRequired, res.Errors()[0].MessageKey)
}

// Las cuatro banderas activas y la posición vacía → cuatro errores, en orden
// precio, lote, fecha de producción, fecha de vencimiento.
func TestCheckAtributos_TodasLasBanderas_FallaEnLosCuatroCampos(t *testing.T) {
	bodega := &entity.Location{
		ID:                    "bod-1",
		RequirePrice:          true,
		RequireBatch:          true,
		RequireProductionDate: true,
		RequireExpirationDate: true,
	}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeInternalInbound, State: entity.DocumentStateAccepted, LocationToID: "bod-1"}
	pos := &entity.Position{ID: "pos-1", ProductID: "prod-1"}

	res, err := v.CheckAttributesRequirement(doc, pos)
	require.NoError(t, err)

	require.Len(t, res.Errors(), 4)
	assert.Equal(t, movement.FieldPrice, res.Errors()[0].Field)
	assert.Equal(t, movement.FieldBatch, res.Errors()[1].Field)
	assert.Equal(t, movement.FieldProductionDate, res.Errors()[2].Field)
	assert.Equal(t, movement.FieldExpirationDate, res.Errors()[3].Field)
}

// Documento en DRAFT → pasa vacío sin importar la política de la bodega.
func TestCheckAtributos_DocumentoEnBorrador_PasaVacio(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", RequirePrice: true, RequireBatch: true, RequireProductionDate: true, RequireExpirationDate: true}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeInternalInbound, State: entity.DocumentStateDraft, LocationToID: "bod-1"}
	pos := &entity.Position{ProductID: "prod-1"}

	res, err := v.CheckAttributesRequirement(doc, pos)
	require.NoError(t, err)
	assert.True(t, res.Valid(), "en borrador no se exigen atributos")
}

// Documento de salida (RELEASE) aceptado → el chequeo no aplica.
func TestCheckAtributos_DocumentoDeSalida_PasaVacio(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", RequireBatch: true}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeRelease, State: entity.DocumentStateAccepted, LocationFromID: "bod-1"}
	pos := &entity.Position{ID: "pos-1", ProductID: "prod-1"}

	res, err := v.CheckAttributesRequirement(doc, pos)
	require.NoError(t, err)
	assert.True(t, res.Valid())
}

// Posición sin documento → pasa vacío (no hay contra qué validar).
func TestCheckAtributos_SinDocumento_PasaVacio(t *testing.T) {
	v, _ := newValidator()
	res, err := v.CheckAttributesRequirement(nil, &entity.Position{ProductID: "prod-1"})
	require.NoError(t, err)
	assert.True(t, res.Valid())
}

// Recibo aceptado sin bodega destino → violación de contrato, no error de campo.
func TestCheckAtributos_SinBodegaDestino_ViolacionDeContrato(t *testing.T) {
	v, _ := newValidator()
	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeReceipt, State: entity.DocumentStateAccepted}
	_, err := v.CheckAttributesRequirement(doc, &entity.Position{ProductID: "prod-1"})
	assert.ErrorIs(t, err, domain.ErrMissingReference)
}

// Tipo de documento desconocido → aborta con ErrUnknownDocumentType.
func TestCheckAtributos_TipoDesconocido_Aborta(t *testing.T) {
	v, _ := newValidator()
	doc := &entity.Document{ID: "doc-1", Type: "TRASTEO", State: entity.DocumentStateAccepted}
	_, err := v.CheckAttributesRequirement(doc, &entity.Position{})
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentType)
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckDates
// ──────────────────────────────────────────────────────────────────────────────

// Vencimiento anterior a producción → error sobre expirationDate.
func TestCheckFechas_VencimientoAnteriorAProduccion_Falla(t *testing.T) {
	v, _ := newValidator()
	pos := &entity.Position{
		ProductionDate: datePtr(2024, time.January, 10),
		ExpirationDate: datePtr(2024, time.January, 5),
	}

	res := v.CheckDates(pos)

	require.Len(t, res.Errors(), 1)
	assert.Equal(t, movement.FieldExpirationDate, res.Errors()[0].Field)
	assert.Equal(t, movement.MsgExpirationBeforeProduction, res.Errors()[0].MessageKey)
}

// Fechas iguales pasan.
func TestCheckFechas_FechasIguales_Pasa(t *testing.T) {
	v, _ := newValidator()
	pos := &entity.Position{
		ProductionDate: datePtr(2024, time.March, 1),
		ExpirationDate: datePtr(2024, time.March, 1),
	}
	assert.True(t, v.CheckDates(pos).Valid())
}

// Si falta alguna de las dos fechas, pasa vacío.
func TestCheckFechas_FaltaUnaFecha_PasaVacio(t *testing.T) {
	v, _ := newValidator()

	assert.True(t, v.CheckDates(&entity.Position{ProductionDate: datePtr(2024, time.March, 1)}).Valid())
	assert.True(t, v.CheckDates(&entity.Position{ExpirationDate: datePtr(2024, time.March, 1)}).Valid())
	assert.True(t, v.CheckDates(&entity.Position{}).Valid())
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckAvailableQuantity
// ──────────────────────────────────────────────────────────────────────────────

// RELEASE en borrador, bodega origen reserva con borradores, disponible 5.0 y
// posición nueva por 7.5 → falla sobre quantity.
func TestCheckCantidad_DisponibleInsuficiente_FallaEnQuantity(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", DraftMakesReservation: true}
	v, stock := newValidator(bodega)
	stock.available["prod-1|bod-1"] = decimal.RequireFromString("5.0")

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeRelease, State: entity.DocumentStateDraft, LocationFromID: "bod-1"}
	pos := &entity.Position{DocumentID: "doc-1", ProductID: "prod-1", Quantity: decimal.RequireFromString("7.5")}

	res, err := v.CheckAvailableQuantity(doc, pos)
	require.NoError(t, err)

	require.Len(t, res.Errors(), 1)
	assert.Equal(t, movement.FieldQuantity, res.Errors()[0].Field)
	assert.Equal(t, movement.MsgNotEnoughResources, res.Errors()[0].MessageKey)
}

// Misma situación pero la posición ya tiene ID (edición) → pasa siempre:
// la foto de disponibilidad ya descuenta su propia reserva.
func TestCheckCantidad_PosicionPersistida_PasaIncondicional(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", DraftMakesReservation: true}
	v, stock := newValidator(bodega)
	stock.available["prod-1|bod-1"] = decimal.RequireFromString("5.0")

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeRelease, State: entity.DocumentStateDraft, LocationFromID: "bod-1"}
	pos := &entity.Position{ID: "pos-9", DocumentID: "doc-1", ProductID: "prod-1", Quantity: decimal.RequireFromString("7.5")}

	res, err := v.CheckAvailableQuantity(doc, pos)
	require.NoError(t, err)
	assert.True(t, res.Valid())
}

// Cantidad igual al disponible pasa; un centavo más falla.
func TestCheckCantidad_LimiteExacto(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", DraftMakesReservation: true}
	v, stock := newValidator(bodega)
	stock.available["prod-1|bod-1"] = decimal.RequireFromString("5.0")

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeInternalOutbound, State: entity.DocumentStateDraft, LocationFromID: "bod-1"}

	exacta := &entity.Position{ProductID: "prod-1", Quantity: decimal.RequireFromString("5.0")}
	res, err := v.CheckAvailableQuantity(doc, exacta)
	require.NoError(t, err)
	assert.True(t, res.Valid(), "cantidad igual al disponible debe pasar")

	excedida := &entity.Position{ProductID: "prod-1", Quantity: decimal.RequireFromString("5.01")}
	res, err = v.CheckAvailableQuantity(doc, excedida)
	require.NoError(t, err)
	assert.False(t, res.Valid())
}

// Sin registro de stock la disponibilidad es cero, no un error.
func TestCheckCantidad_SinRegistroDeStock_DisponibleCero(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", DraftMakesReservation: true}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeRelease, State: entity.DocumentStateDraft, LocationFromID: "bod-1"}
	pos := &entity.Position{ProductID: "prod-1", Quantity: decimal.RequireFromString("0.001")}

	res, err := v.CheckAvailableQuantity(doc, pos)
	require.NoError(t, err)
	assert.False(t, res.Valid(), "cualquier cantidad positiva excede cero disponible")
}

// Movimiento por búfer → exento del chequeo.
func TestCheckCantidad_EnBuffer_PasaVacio(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", DraftMakesReservation: true}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeRelease, State: entity.DocumentStateDraft, LocationFromID: "bod-1", InBuffer: true}
	pos := &entity.Position{ProductID: "prod-1", Quantity: decimal.RequireFromString("99")}

	res, err := v.CheckAvailableQuantity(doc, pos)
	require.NoError(t, err)
	assert.True(t, res.Valid())
}

// Bodega que no reserva con borradores → exenta del chequeo.
func TestCheckCantidad_BodegaSinReserva_PasaVacio(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", DraftMakesReservation: false}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeRelease, State: entity.DocumentStateDraft, LocationFromID: "bod-1"}
	pos := &entity.Position{ProductID: "prod-1", Quantity: decimal.RequireFromString("99")}

	res, err := v.CheckAvailableQuantity(doc, pos)
	require.NoError(t, err)
	assert.True(t, res.Valid())
}

// Documento de entrada → el chequeo no aplica.
func TestCheckCantidad_DocumentoDeEntrada_PasaVacio(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", DraftMakesReservation: true}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeReceipt, State: entity.DocumentStateDraft, LocationToID: "bod-1"}
	pos := &entity.Position{ProductID: "prod-1", Quantity: decimal.RequireFromString("99")}

	res, err := v.CheckAvailableQuantity(doc, pos)
	require.NoError(t, err)
	assert.True(t, res.Valid())
}

// Posición nueva sin documento → violación de contrato.
func TestCheckCantidad_SinDocumento_ViolacionDeContrato(t *testing.T) {
	v, _ := newValidator()
	_, err := v.CheckAvailableQuantity(nil, &entity.Position{ProductID: "prod-1", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrMissingReference)
}

// Salida sin bodega origen → violación de contrato.
func TestCheckCantidad_SinBodegaOrigen_ViolacionDeContrato(t *testing.T) {
	v, _ := newValidator()
	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeRelease, State: entity.DocumentStateDraft}
	_, err := v.CheckAvailableQuantity(doc, &entity.Position{ProductID: "prod-1", Quantity: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrMissingReference)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate (agregación) e idempotencia
// ──────────────────────────────────────────────────────────────────────────────

// Validate agrega los errores de los tres chequeos en orden estable.
func TestValidate_AgregaErroresEnOrden(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", RequireBatch: true}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeReceipt, State: entity.DocumentStateAccepted, LocationToID: "bod-1"}
	pos := &entity.Position{
		ID:             "pos-1",
		ProductID:      "prod-1",
		Quantity:       decimal.NewFromInt(1),
		ProductionDate: datePtr(2024, time.May, 10),
		ExpirationDate: datePtr(2024, time.May, 1),
	}

	res, err := v.Validate(doc, pos)
	require.NoError(t, err)

	require.Len(t, res.Errors(), 2)
	assert.Equal(t, movement.FieldBatch, res.Errors()[0].Field)
	assert.Equal(t, movement.FieldExpirationDate, res.Errors()[1].Field)
}

// Repetir un chequeo sobre las mismas entradas inmutables produce el mismo
// resultado: no hay contadores ocultos ni estado entre llamadas.
func TestValidate_Idempotente(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", RequireBatch: true, DraftMakesReservation: true}
	v, stock := newValidator(bodega)
	stock.available["prod-1|bod-1"] = decimal.RequireFromString("5.0")

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeRelease, State: entity.DocumentStateDraft, LocationFromID: "bod-1"}
	pos := &entity.Position{ProductID: "prod-1", Quantity: decimal.RequireFromString("7.5")}

	primera, err := v.Validate(doc, pos)
	require.NoError(t, err)
	segunda, err := v.Validate(doc, pos)
	require.NoError(t, err)

	assert.Equal(t, primera.Errors(), segunda.Errors())
	assert.Equal(t, primera.Valid(), segunda.Valid())
}

// La posición con lote presente no dispara el requerimiento de batch.
func TestCheckAtributos_LotePresente_NoExigeBatch(t *testing.T) {
	bodega := &entity.Location{ID: "bod-1", RequireBatch: true}
	v, _ := newValidator(bodega)

	doc := &entity.Document{ID: "doc-1", Type: entity.DocumentTypeReceipt, State: entity.DocumentStateAccepted, LocationToID: "bod-1"}
	pos := &entity.Position{ID: "pos-1", ProductID: "prod-1", Batch: strPtr("L-2024-001")}

	res, err := v.CheckAttributesRequirement(doc, pos)
	require.NoError(t, err)
	assert.True(t, res.Valid())
}
