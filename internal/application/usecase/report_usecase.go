package usecase

import (
	"github.com/rs/zerolog/log"

	"github.com/retailchain/franchise-api/internal/application/dto"
	"github.com/retailchain/franchise-api/internal/domain"
	"github.com/retailchain/franchise-api/internal/domain/repository"
)

// StockReportUseCase arma el reporte de producto(s) con máximo stock por
// sucursal de una franquicia. La agrupación es por sucursal, no por
// franquicia: la pregunta de negocio es "cuál es el producto mejor surtido en
// cada sucursal", y los empates dentro de una sucursal se incluyen todos.
type StockReportUseCase struct {
	franchiseRepo repository.FranchiseRepository
	branchRepo    repository.BranchRepository
	productRepo   repository.ProductRepository
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(
	franchiseRepo repository.FranchiseRepository,
	branchRepo repository.BranchRepository,
	productRepo repository.ProductRepository,
) *StockReportUseCase {
	return &StockReportUseCase{
		franchiseRepo: franchiseRepo,
		branchRepo:    branchRepo,
		productRepo:   productRepo,
	}
}

// GetMaxStockReport devuelve una fila por cada producto que iguala el máximo
// stock de su sucursal. Una franquicia sin sucursales (o sin productos)
// produce un reporte vacío, no un error. El orden de las filas no está
// garantizado.
func (uc *StockReportUseCase) GetMaxStockReport(franchiseID int64) ([]dto.StockReportResponse, error) {
	franchise, err := uc.franchiseRepo.GetByID(franchiseID)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, domain.ErrFranchiseNotFound
	}

	branches, err := uc.branchRepo.ListByFranchise(franchiseID)
	if err != nil {
		return nil, err
	}
	rows := make([]dto.StockReportResponse, 0, len(branches))
	if len(branches) == 0 {
		return rows, nil
	}

	branchIDs := make([]int64, 0, len(branches))
	branchNames := make(map[int64]string, len(branches))
	for _, b := range branches {
		branchIDs = append(branchIDs, b.ID)
		branchNames[b.ID] = b.Name
	}

	products, err := uc.productRepo.FindMaxStockByBranches(branchIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		rows = append(rows, dto.StockReportResponse{
			ProductID:     p.ID,
			ProductName:   p.Name,
			Stock:         p.Stock,
			BranchID:      p.BranchID,
			BranchName:    branchNames[p.BranchID],
			FranchiseID:   franchise.ID,
			FranchiseName: franchise.Name,
		})
	}
	log.Debug().Int64("franchise_id", franchiseID).Int("rows", len(rows)).Msg("reporte de stock generado")
	return rows, nil
}
