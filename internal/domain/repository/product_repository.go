package repository

import "github.com/retailchain/franchise-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	// FindMaxStockByBranches devuelve, para cada sucursal del conjunto, los
	// productos cuyo stock iguala el máximo de esa sucursal (incluye empates).
	FindMaxStockByBranches(branchIDs []int64) ([]*entity.Product, error)
}
