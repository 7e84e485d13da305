package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrFranchiseNotFound = errors.New("franquicia no encontrada")
	ErrBranchNotFound    = errors.New("sucursal no encontrada")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
)

// IsNotFound indica si el error corresponde a una entidad inexistente.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFranchiseNotFound) ||
		errors.Is(err, ErrBranchNotFound) ||
		errors.Is(err, ErrProductNotFound)
}

// ValidationError agrupa violaciones de validación por campo.
// Se lanza antes de cualquier mutación; Fields mapea campo -> mensaje.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye un error de validación con las violaciones dadas.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "datos de entrada inválidos"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "datos de entrada inválidos: " + strings.Join(parts, "; ")
}
