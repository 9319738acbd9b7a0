package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Hay dos familias: errores de negocio esperables (not found, estado inválido)
// y violaciones de contrato (referencias obligatorias ausentes, tipo de documento
// desconocido). Las segundas son errores de programación aguas arriba y deben
// abortar el procesamiento, nunca degradarse a un "pass" silencioso.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrDocumentNotDraft   = errors.New("el documento no está en borrador")

	// ErrMissingReference indica que una referencia obligatoria (documento,
	// bodega, producto) es nula donde el modelo de datos garantiza su presencia.
	ErrMissingReference = errors.New("referencia obligatoria ausente")

	// ErrUnknownDocumentType indica un tipo de documento fuera del catálogo.
	// La validación del documento debe abortarse, no asumir una dirección.
	ErrUnknownDocumentType = errors.New("tipo de documento desconocido")
)
