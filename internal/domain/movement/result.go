package movement

// Campos de posición referenciados por errores de validación.
const (
	FieldPrice          = "price"
	FieldBatch          = "batch"
	FieldProductionDate = "productionDate"
	FieldExpirationDate = "expirationDate"
	FieldQuantity       = "quantity"
)

// Claves de mensaje de los errores de validación (traducibles en la capa de presentación).
const (
	MsgPriceRequired              = "almacen.error.position.price.required"
	MsgBatchRequired              = "almacen.error.position.batch.required"
	MsgProductionDateRequired     = "almacen.error.position.productionDate.required"
	MsgExpirationDateRequired     = "almacen.error.position.expirationDate.required"
	MsgExpirationBeforeProduction = "almacen.error.position.expirationDate.lessThanProductionDate"
	MsgNotEnoughResources         = "almacen.error.position.quantity.notEnoughResources"
)

// FieldError es un error de validación a nivel de campo: corregible por el
// usuario, a diferencia de una violación de contrato (error Go).
type FieldError struct {
	Field      string `json:"field"`
	MessageKey string `json:"message_key"`
}

// Result acumula los errores de campo de una o varias validaciones sobre una
// posición. El orden de inserción se conserva.
type Result struct {
	errs []FieldError
}

// AddError agrega un error de campo.
func (r *Result) AddError(field, messageKey string) {
	r.errs = append(r.errs, FieldError{Field: field, MessageKey: messageKey})
}

// Merge agrega los errores de otro resultado, conservando el orden.
func (r *Result) Merge(other Result) {
	r.errs = append(r.errs, other.errs...)
}

// Valid indica si no hubo errores de campo.
func (r Result) Valid() bool {
	return len(r.errs) == 0
}

// Errors devuelve los errores de campo en orden de inserción.
func (r Result) Errors() []FieldError {
	return r.errs
}
