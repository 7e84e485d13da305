package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/retailchain/franchise-api/internal/application/dto"
	"github.com/retailchain/franchise-api/internal/application/usecase"
)

// FranchiseHandler maneja las peticiones HTTP para Franchise.
type FranchiseHandler struct {
	uc *usecase.FranchiseUseCase
}

// NewFranchiseHandler construye el handler.
func NewFranchiseHandler(uc *usecase.FranchiseUseCase) *FranchiseHandler {
	return &FranchiseHandler{uc: uc}
}

// Create godoc
// @Summary      Crear franquicia
// @Tags         franchises
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFranchiseRequest  true  "Datos de la franquicia"
// @Success      201   {object}  dto.FranchiseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/franchises [post]
func (h *FranchiseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFranchiseRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renombrar franquicia
// @Tags         franchises
// @Accept       json
// @Produce      json
// @Param        id    path  int                             true  "ID de la franquicia"
// @Param        body  body  dto.UpdateFranchiseNameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.FranchiseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/franchises/{id}/name [patch]
func (h *FranchiseHandler) Rename(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateFranchiseNameRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Rename(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "franquicia no encontrada")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener franquicia por ID (caché o base de datos)
// @Tags         franchises
// @Produce      json
// @Param        id   path  int  true  "ID de la franquicia"
// @Success      200  {object}  dto.FranchiseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/franchises/{id} [get]
func (h *FranchiseHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "franquicia no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar franquicias
// @Tags         franchises
// @Produce      json
// @Success      200  {array}  dto.FranchiseResponse
// @Router       /api/v1/franchises [get]
func (h *FranchiseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
