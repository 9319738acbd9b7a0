package dto

import "github.com/jhoicas/almacen-api/internal/domain/movement"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo HTTP 422: errores de campo agregados de los
// chequeos de validación, en el orden en que se detectaron.
type ValidationErrorResponse struct {
	Code   string                `json:"code"` // siempre "VALIDATION"
	Errors []movement.FieldError `json:"errors"`
}

// NewValidationErrorResponse arma la respuesta 422 desde un Result.
func NewValidationErrorResponse(res movement.Result) ValidationErrorResponse {
	return ValidationErrorResponse{Code: "VALIDATION", Errors: res.Errors()}
}
