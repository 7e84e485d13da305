package dto

import "time"

// CreateBranchRequest entrada para crear una sucursal. El franchise_id no se
// acepta en el payload: siempre viene de la URL.
type CreateBranchRequest struct {
	Name string `json:"name" validate:"required,notblank,min=3,max=100"`
}

// UpdateBranchNameRequest entrada para renombrar una sucursal.
type UpdateBranchNameRequest struct {
	Name string `json:"name" validate:"required,notblank,min=3,max=100"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FranchiseID int64     `json:"franchise_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
