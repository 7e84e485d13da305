package dto

import "time"

// CreateFranchiseRequest entrada para crear una franquicia.
type CreateFranchiseRequest struct {
	Name string `json:"name" validate:"required,notblank,min=3,max=100"`
}

// UpdateFranchiseNameRequest entrada para renombrar una franquicia.
type UpdateFranchiseNameRequest struct {
	Name string `json:"name" validate:"required,notblank,min=3,max=100"`
}

// FranchiseResponse salida de una franquicia.
type FranchiseResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
