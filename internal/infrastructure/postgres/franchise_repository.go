package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/retailchain/franchise-api/internal/domain/entity"
	"github.com/retailchain/franchise-api/internal/domain/repository"
)

var _ repository.FranchiseRepository = (*FranchiseRepo)(nil)

// FranchiseRepo implementación del puerto FranchiseRepository sobre PostgreSQL (usable con pool o tx).
type FranchiseRepo struct {
	q Querier
}

// NewFranchiseRepository construye el adaptador de persistencia para franquicias. Pasar pool o tx (Querier).
func NewFranchiseRepository(q Querier) *FranchiseRepo {
	return &FranchiseRepo{q: q}
}

// Create persiste una nueva franquicia y asigna el ID generado.
func (r *FranchiseRepo) Create(franchise *entity.Franchise) error {
	query := `
		INSERT INTO franchises (name, created_at, updated_at)
		VALUES ($1, $2, $3) RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		franchise.Name, franchise.CreatedAt, franchise.UpdatedAt,
	).Scan(&franchise.ID)
	if err != nil {
		return fmt.Errorf("insert franchise: %w", err)
	}
	return nil
}

// GetByID obtiene una franquicia por ID.
func (r *FranchiseRepo) GetByID(id int64) (*entity.Franchise, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM franchises WHERE id = $1`
	var f entity.Franchise
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get franchise: %w", err)
	}
	return &f, nil
}

// Update actualiza nombre y updated_at de una franquicia existente.
func (r *FranchiseRepo) Update(franchise *entity.Franchise) error {
	query := `
		UPDATE franchises SET name = $2, updated_at = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		franchise.ID, franchise.Name, franchise.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update franchise: %w", err)
	}
	return nil
}

// List lista todas las franquicias.
func (r *FranchiseRepo) List() ([]*entity.Franchise, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM franchises ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list franchises: %w", err)
	}
	defer rows.Close()
	var list []*entity.Franchise
	for rows.Next() {
		var f entity.Franchise
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan franchise: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
