package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/retailchain/franchise-api/internal/application/dto"
	"github.com/retailchain/franchise-api/internal/domain"
)

// respondError traduce errores de dominio a respuestas HTTP.
// NotFound y validación son fallas del cliente; cualquier otro error (p. ej.
// conectividad con la base de datos) es una falla del servidor.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Timestamp: time.Now(),
			Status:    fiber.StatusNotFound,
			Error:     "Not Found",
			Message:   err.Error(),
			Code:      "NOT_FOUND",
		})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Timestamp: time.Now(),
			Status:    fiber.StatusBadRequest,
			Error:     "Bad Request",
			Message:   "datos de entrada inválidos",
			Code:      "VALIDATION_ERROR",
			Errors:    verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Timestamp: time.Now(),
			Status:    fiber.StatusBadRequest,
			Error:     "Bad Request",
			Message:   err.Error(),
			Code:      "VALIDATION_ERROR",
		})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error procesando la petición")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Timestamp: time.Now(),
			Status:    fiber.StatusInternalServerError,
			Error:     "Internal Server Error",
			Message:   "error interno procesando la petición",
			Code:      "INTERNAL",
		})
	}
}

// respondNotFound respuesta 404 con el mensaje del recurso.
func respondNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Timestamp: time.Now(),
		Status:    fiber.StatusNotFound,
		Error:     "Not Found",
		Message:   message,
		Code:      "NOT_FOUND",
	})
}
