package entity

import "time"

// Franchise representa una franquicia, raíz de la jerarquía franquicia → sucursal → producto.
// El ID lo asigna la base de datos al crear.
type Franchise struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
