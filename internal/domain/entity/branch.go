package entity

import "time"

// Branch representa una sucursal de una franquicia.
// FranchiseID es inmutable después de la creación: siempre viene del contexto
// de la operación (URL), nunca del payload del cliente.
type Branch struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FranchiseID int64     `json:"franchise_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
