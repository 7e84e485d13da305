package entity

import "time"

// Product representa un producto ofrecido en una sucursal.
// Stock nunca es negativo (se valida antes de persistir). BranchID es inmutable
// después de la creación, igual que FranchiseID en Branch.
type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	BranchID  int64     `json:"branch_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
