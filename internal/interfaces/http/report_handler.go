package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/retailchain/franchise-api/internal/application/usecase"
)

// ReportHandler maneja el reporte de máximo stock por sucursal.
type ReportHandler struct {
	uc *usecase.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.StockReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// MaxStock godoc
// @Summary      Productos con máximo stock por sucursal de una franquicia
// @Tags         reports
// @Produce      json
// @Param        id   path  int  true  "ID de la franquicia"
// @Success      200  {array}  dto.StockReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/franchises/{id}/max-stock-products [get]
func (h *ReportHandler) MaxStock(c *fiber.Ctx) error {
	franchiseID, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetMaxStockReport(franchiseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
