package dto

import "time"

// CreateProductRequest entrada para crear un producto. El branch_id no se
// acepta en el payload: siempre viene de la URL. Stock es puntero para
// distinguir "0" de "ausente".
type CreateProductRequest struct {
	Name  string `json:"name" validate:"required,notblank,min=2,max=150"`
	Stock *int   `json:"stock" validate:"required,min=0"`
}

// UpdateProductNameRequest entrada para renombrar un producto.
type UpdateProductNameRequest struct {
	Name string `json:"name" validate:"required,notblank,min=2,max=150"`
}

// UpdateStockRequest entrada para ajustar el stock de un producto.
type UpdateStockRequest struct {
	Stock *int `json:"stock" validate:"required,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	BranchID  int64     `json:"branch_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
