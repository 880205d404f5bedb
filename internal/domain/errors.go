package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Las condiciones de negocio esperadas son valores tipados, nunca panics.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrLoginIDExists     = errors.New("el login ID ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrImmutableState    = errors.New("el documento ya no es editable")
	ErrReferenceConflict = errors.New("conflicto de referencia: secuencia duplicada")
)
