package usecase

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/retailchain/franchise-api/internal/application/dto"
	"github.com/retailchain/franchise-api/internal/domain"
	"github.com/retailchain/franchise-api/internal/domain/entity"
	"github.com/retailchain/franchise-api/internal/domain/repository"
)

// BranchUseCase casos de uso para sucursales.
type BranchUseCase struct {
	repo          repository.BranchRepository
	franchiseRepo repository.FranchiseRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository, franchiseRepo repository.FranchiseRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo, franchiseRepo: franchiseRepo}
}

// AddToFranchise crea una sucursal bajo una franquicia existente. El ID de la
// franquicia viene del contexto de la operación, nunca del payload.
func (uc *BranchUseCase) AddToFranchise(franchiseID int64, in dto.CreateBranchRequest) (*dto.BranchResponse, error) {
	franchise, err := uc.franchiseRepo.GetByID(franchiseID)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, domain.ErrFranchiseNotFound
	}
	now := time.Now()
	branch := &entity.Branch{
		Name:        in.Name,
		FranchiseID: franchiseID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(branch); err != nil {
		return nil, err
	}
	log.Info().Int64("branch_id", branch.ID).Int64("franchise_id", franchiseID).Msg("sucursal creada")
	return toBranchResponse(branch), nil
}

// Rename actualiza solo el nombre; FranchiseID nunca cambia.
func (uc *BranchUseCase) Rename(id int64, in dto.UpdateBranchNameRequest) (*dto.BranchResponse, error) {
	branch, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, nil
	}
	branch.Name = in.Name
	branch.UpdatedAt = time.Now()
	if err := uc.repo.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// ListByFranchise lista las sucursales de una franquicia. Una franquicia sin
// sucursales devuelve lista vacía, no error.
func (uc *BranchUseCase) ListByFranchise(franchiseID int64) ([]dto.BranchResponse, error) {
	list, err := uc.repo.ListByFranchise(franchiseID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBranchResponse(b))
	}
	return items, nil
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	if b == nil {
		return nil
	}
	return &dto.BranchResponse{
		ID:          b.ID,
		Name:        b.Name,
		FranchiseID: b.FranchiseID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
