package movement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// LocationLookup resuelve las bodegas referenciadas por un documento.
// Lo implementa el repositorio de bodegas; en tests, un fake.
type LocationLookup interface {
	GetByID(id string) (*entity.Location, error)
}

// StockIndex consulta la disponibilidad neta por (producto, bodega).
// La ausencia de registro significa cero stock, no "desconocido".
type StockIndex interface {
	AvailableQuantity(productID, locationID string) (decimal.Decimal, error)
}

// PositionValidator decide si una posición de un documento de movimiento puede
// guardarse o aceptarse. Tres chequeos independientes, cada uno puro y
// síncrono: atributos obligatorios, orden de fechas y cantidad disponible.
//
// Cada chequeo devuelve un Result con cero o más errores de campo (corregibles
// por el usuario) y un error Go aparte para violaciones de contrato: referencia
// obligatoria ausente o tipo de documento desconocido. El caller puede ejecutar
// los tres y agregar los errores antes de presentar feedback.
type PositionValidator struct {
	locations LocationLookup
	stock     StockIndex
}

// NewPositionValidator construye el validador con sus colaboradores explícitos.
func NewPositionValidator(locations LocationLookup, stock StockIndex) *PositionValidator {
	return &PositionValidator{locations: locations, stock: stock}
}

// Validate ejecuta los tres chequeos y agrega sus errores de campo en orden:
// atributos, fechas, cantidad. Un error de contrato aborta de inmediato.
func (v *PositionValidator) Validate(doc *entity.Document, pos *entity.Position) (Result, error) {
	var res Result

	attrs, err := v.CheckAttributesRequirement(doc, pos)
	if err != nil {
		return res, err
	}
	res.Merge(attrs)

	res.Merge(v.CheckDates(pos))

	qty, err := v.CheckAvailableQuantity(doc, pos)
	if err != nil {
		return res, err
	}
	res.Merge(qty)

	return res, nil
}

// CheckAttributesRequirement exige los atributos opcionales que la política de
// la bodega destino marca como obligatorios. Aplica únicamente cuando el
// documento existe, está ACCEPTED y su dirección es de entrada: la completitud
// se exige en el momento en que el stock aterriza físicamente en una bodega que
// pide trazabilidad, no antes. En cualquier otro estado o dirección pasa vacío.
func (v *PositionValidator) CheckAttributesRequirement(doc *entity.Document, pos *entity.Position) (Result, error) {
	var res Result

	if doc == nil {
		return res, nil
	}

	dir, state, err := Classify(doc)
	if err != nil {
		return res, err
	}
	if state != entity.DocumentStateAccepted || !dir.IsInbound() {
		return res, nil
	}

	locationTo, err := v.resolveLocation(doc.LocationToID, "locationTo", doc.ID)
	if err != nil {
		return res, err
	}

	policy := locationTo.Policy()
	if policy.RequirePrice && pos.Price == nil {
		res.AddError(FieldPrice, MsgPriceRequired)
	}
	if policy.RequireBatch && pos.Batch == nil {
		res.AddError(FieldBatch, MsgBatchRequired)
	}
	if policy.RequireProductionDate && pos.ProductionDate == nil {
		res.AddError(FieldProductionDate, MsgProductionDateRequired)
	}
	if policy.RequireExpirationDate && pos.ExpirationDate == nil {
		res.AddError(FieldExpirationDate, MsgExpirationDateRequired)
	}

	return res, nil
}

// CheckDates valida que, cuando ambas fechas existen, la fecha de vencimiento
// no sea anterior a la de producción. Fechas iguales pasan; si falta alguna,
// pasa vacío. Aplica a toda posición sin importar documento ni estado.
func (v *PositionValidator) CheckDates(pos *entity.Position) Result {
	var res Result

	if pos.ProductionDate == nil || pos.ExpirationDate == nil {
		return res
	}
	if pos.ExpirationDate.Before(*pos.ProductionDate) {
		res.AddError(FieldExpirationDate, MsgExpirationBeforeProduction)
	}

	return res
}

// CheckAvailableQuantity verifica que la cantidad solicitada no supere la
// disponibilidad neta del producto en la bodega origen. Aplica solo a
// posiciones nuevas (sin ID) de documentos de salida no en búfer cuya bodega
// origen reserva con borradores (DraftMakesReservation).
//
// Las ediciones de posiciones ya persistidas pasan siempre: la foto de
// disponibilidad ya descuenta la reserva de esa misma posición y revalidarla
// la contaría dos veces. Entradas, movimientos por búfer y bodegas que no
// reservan tampoco retienen stock antes del commit, así que pasan vacío.
//
// La lectura de disponibilidad es una foto puntual sin bloqueo: dos
// validaciones concurrentes pueden pasar contra el mismo stock (ver DESIGN.md).
func (v *PositionValidator) CheckAvailableQuantity(doc *entity.Document, pos *entity.Position) (Result, error) {
	var res Result

	if !pos.IsNew() {
		return res, nil
	}
	if doc == nil {
		return res, fmt.Errorf("posición sin documento: %w", domain.ErrMissingReference)
	}

	dir, _, err := Classify(doc)
	if err != nil {
		return res, err
	}
	if !dir.IsOutbound() || doc.InBuffer {
		return res, nil
	}

	locationFrom, err := v.resolveLocation(doc.LocationFromID, "locationFrom", doc.ID)
	if err != nil {
		return res, err
	}
	if !locationFrom.DraftMakesReservation {
		return res, nil
	}

	if pos.ProductID == "" {
		return res, fmt.Errorf("posición sin producto en documento %q: %w", doc.ID, domain.ErrMissingReference)
	}

	available, err := v.stock.AvailableQuantity(pos.ProductID, locationFrom.ID)
	if err != nil {
		return res, fmt.Errorf("consultar disponibilidad: %w", err)
	}
	if pos.Quantity.GreaterThan(available) {
		res.AddError(FieldQuantity, MsgNotEnoughResources)
	}

	return res, nil
}

// resolveLocation carga una bodega obligatoria; su ausencia es violación de
// contrato, no un error de validación corregible.
func (v *PositionValidator) resolveLocation(id, field, docID string) (*entity.Location, error) {
	if id == "" {
		return nil, fmt.Errorf("documento %q sin %s: %w", docID, field, domain.ErrMissingReference)
	}
	loc, err := v.locations.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("resolver %s: %w", field, err)
	}
	if loc == nil {
		return nil, fmt.Errorf("%s %q no existe: %w", field, id, domain.ErrMissingReference)
	}
	return loc, nil
}
