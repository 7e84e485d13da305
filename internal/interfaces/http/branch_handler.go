package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/retailchain/franchise-api/internal/application/dto"
	"github.com/retailchain/franchise-api/internal/application/usecase"
)

// BranchHandler maneja las peticiones HTTP para Branch.
type BranchHandler struct {
	uc *usecase.BranchUseCase
}

// NewBranchHandler construye el handler.
func NewBranchHandler(uc *usecase.BranchUseCase) *BranchHandler {
	return &BranchHandler{uc: uc}
}

// Create godoc
// @Summary      Agregar sucursal a una franquicia
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID de la franquicia"
// @Param        body  body  dto.CreateBranchRequest  true  "Datos de la sucursal"
// @Success      201   {object}  dto.BranchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/franchises/{id}/branches [post]
func (h *BranchHandler) Create(c *fiber.Ctx) error {
	franchiseID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.CreateBranchRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.AddToFranchise(franchiseID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renombrar sucursal
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "ID de la sucursal"
// @Param        body  body  dto.UpdateBranchNameRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.BranchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/branches/{id}/name [patch]
func (h *BranchHandler) Rename(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateBranchNameRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Rename(id, in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "sucursal no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar sucursales de una franquicia
// @Tags         branches
// @Produce      json
// @Param        id   path  int  true  "ID de la franquicia"
// @Success      200  {array}  dto.BranchResponse
// @Router       /api/v1/franchises/{id}/branches [get]
func (h *BranchHandler) List(c *fiber.Ctx) error {
	franchiseID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.ListByFranchise(franchiseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
