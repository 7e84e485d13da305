package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/retailchain/franchise-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank: rechaza cadenas de solo espacios, que "min" dejaría pasar.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// parseBody parsea el cuerpo JSON y valida los tags del DTO. Todas las
// violaciones se acumulan por campo antes de devolver, sin mutar nada.
func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return domain.NewValidationError(map[string]string{"body": "cuerpo JSON inválido"})
	}
	if err := validate.Struct(dest); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, ve := range verrs {
				fields[strings.ToLower(ve.Field())] = validationMessage(ve)
			}
			return domain.NewValidationError(fields)
		}
		return domain.NewValidationError(map[string]string{"body": "cuerpo JSON inválido"})
	}
	return nil
}

func validationMessage(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "es requerido"
	case "notblank":
		return "no puede estar en blanco"
	case "min":
		if ve.Kind().String() == "string" {
			return fmt.Sprintf("debe tener al menos %s caracteres", ve.Param())
		}
		return fmt.Sprintf("debe ser mayor o igual a %s", ve.Param())
	case "max":
		if ve.Kind().String() == "string" {
			return fmt.Sprintf("debe tener como máximo %s caracteres", ve.Param())
		}
		return fmt.Sprintf("debe ser menor o igual a %s", ve.Param())
	default:
		return "valor inválido"
	}
}

// parseID lee un parámetro de ruta como ID numérico positivo.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(map[string]string{name: "debe ser un ID numérico positivo"})
	}
	return id, nil
}
