package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DDL de arranque. Los servicios validan existencia antes de escribir; las
// llaves foráneas con ON DELETE CASCADE son la red de seguridad del store.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS franchises (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(100) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS branches (
		id           BIGSERIAL PRIMARY KEY,
		name         VARCHAR(100) NOT NULL,
		franchise_id BIGINT NOT NULL REFERENCES franchises(id) ON DELETE CASCADE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id         BIGSERIAL PRIMARY KEY,
		name       VARCHAR(150) NOT NULL,
		stock      INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
		branch_id  BIGINT NOT NULL REFERENCES branches(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_branch_franchise ON branches (franchise_id)`,
	`CREATE INDEX IF NOT EXISTS idx_product_branch ON products (branch_id)`,
	`CREATE INDEX IF NOT EXISTS idx_product_stock ON products (stock)`,
}

const (
	schemaMaxAttempts = 5
	schemaBaseBackoff = 2 * time.Second
	schemaMaxBackoff  = 10 * time.Second
)

// EnsureSchema crea las tablas si no existen, reintentando con backoff por si
// la base de datos aún no acepta conexiones al arrancar el contenedor.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	backoff := schemaBaseBackoff
	var lastErr error
	for attempt := 1; attempt <= schemaMaxAttempts; attempt++ {
		lastErr = applySchema(ctx, pool)
		if lastErr == nil {
			log.Info().Msg("esquema de base de datos verificado")
			return nil
		}
		log.Warn().Err(lastErr).Int("attempt", attempt).Msg("base de datos no lista, reintentando")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > schemaMaxBackoff {
			backoff = schemaMaxBackoff
		}
	}
	return fmt.Errorf("inicializar esquema tras %d intentos: %w", schemaMaxAttempts, lastErr)
}

func applySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping DB: %w", err)
	}
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ejecutar DDL: %w", err)
		}
	}
	return nil
}
