package repository

import "github.com/retailchain/franchise-api/internal/domain/entity"

// FranchiseRepository define el puerto de persistencia para Franchise (DIP).
// Create asigna el ID generado por la base de datos sobre la entidad.
type FranchiseRepository interface {
	Create(franchise *entity.Franchise) error
	GetByID(id int64) (*entity.Franchise, error)
	Update(franchise *entity.Franchise) error
	List() ([]*entity.Franchise, error)
}
