package usecase

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/retailchain/franchise-api/internal/application/dto"
	"github.com/retailchain/franchise-api/internal/domain"
	"github.com/retailchain/franchise-api/internal/domain/entity"
	"github.com/retailchain/franchise-api/internal/domain/repository"
)

// ProductUseCase casos de uso para productos. El stock llega ya validado
// (>= 0) desde la capa HTTP.
type ProductUseCase struct {
	repo       repository.ProductRepository
	branchRepo repository.BranchRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, branchRepo repository.BranchRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, branchRepo: branchRepo}
}

// AddToBranch crea un producto bajo una sucursal existente. El ID de la
// sucursal viene del contexto de la operación, nunca del payload.
func (uc *ProductUseCase) AddToBranch(branchID int64, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	branch, err := uc.branchRepo.GetByID(branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrBranchNotFound
	}
	now := time.Now()
	product := &entity.Product{
		Name:      in.Name,
		Stock:     *in.Stock,
		BranchID:  branchID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	log.Info().Int64("product_id", product.ID).Int64("branch_id", branchID).Msg("producto creado")
	return toProductResponse(product), nil
}

// Delete elimina un producto existente.
func (uc *ProductUseCase) Delete(id int64) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	log.Info().Int64("product_id", id).Msg("producto eliminado")
	return nil
}

// UpdateStock ajusta el stock de un producto; BranchID nunca cambia.
func (uc *ProductUseCase) UpdateStock(id int64, in dto.UpdateStockRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Stock = *in.Stock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Rename actualiza solo el nombre; BranchID nunca cambia.
func (uc *ProductUseCase) Rename(id int64, in dto.UpdateProductNameRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	product.Name = in.Name
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Stock:     p.Stock,
		BranchID:  p.BranchID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
