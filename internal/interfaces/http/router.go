package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/retailchain/franchise-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FranchiseUC *usecase.FranchiseUseCase
	BranchUC    *usecase.BranchUseCase
	ProductUC   *usecase.ProductUseCase
	ReportUC    *usecase.StockReportUseCase
}

// Router registra las rutas de la API. Los IDs de padre (franquicia para
// sucursales, sucursal para productos) viajan solo en la URL.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	franchiseHandler := NewFranchiseHandler(deps.FranchiseUC)
	branchHandler := NewBranchHandler(deps.BranchUC)
	productHandler := NewProductHandler(deps.ProductUC)
	reportHandler := NewReportHandler(deps.ReportUC)

	franchises := api.Group("/franchises")
	franchises.Post("/", franchiseHandler.Create)
	franchises.Get("/", franchiseHandler.List)
	franchises.Get("/:id", franchiseHandler.GetByID)
	franchises.Patch("/:id/name", franchiseHandler.Rename)
	franchises.Post("/:id/branches", branchHandler.Create)
	franchises.Get("/:id/branches", branchHandler.List)
	franchises.Get("/:id/max-stock-products", reportHandler.MaxStock)

	branches := api.Group("/branches")
	branches.Patch("/:id/name", branchHandler.Rename)
	branches.Post("/:id/products", productHandler.Create)

	products := api.Group("/products")
	products.Delete("/:id", productHandler.Delete)
	products.Patch("/:id/stock", productHandler.UpdateStock)
	products.Patch("/:id/name", productHandler.Rename)
}
