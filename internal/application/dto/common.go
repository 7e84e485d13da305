package dto

import "time"

// ErrorResponse cuerpo de error HTTP. Errors trae las violaciones por campo
// cuando la falla es de validación.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Code      string            `json:"code"`
	Errors    map[string]string `json:"errors,omitempty"`
}
