package repository

import "github.com/retailchain/franchise-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch (DIP).
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id int64) (*entity.Branch, error)
	Update(branch *entity.Branch) error
	ListByFranchise(franchiseID int64) ([]*entity.Branch, error)
}
