package sqlstore

import (
	"context"
	"fmt"

	"bordoodles-api/internal/domain/catalog"
)

func (d dialect) schema() []string {
	return []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS parents (
			id %s,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			breed TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			weight TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT ''
		)`, d.idColumn),
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS puppies (
			id %s,
			name TEXT NOT NULL,
			breed TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			price INTEGER NULL,
			status TEXT NOT NULL DEFAULT 'Available',
			dob %s NULL,
			description TEXT NOT NULL DEFAULT '',
			images TEXT NOT NULL DEFAULT '[]'
		)`, d.idColumn, d.dateType),
	}
}

// EnsureSchema crea las tablas si no existen. No es una herramienta de migraciones.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range s.dialect.schema() {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return catalog.Storage(fmt.Errorf("ensure schema: %w", err))
		}
	}
	return nil
}

// Reset borra y recrea ambas tablas (usado por el seed con --reset).
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"puppies", "parents"} {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return catalog.Storage(fmt.Errorf("drop %s: %w", table, err))
		}
	}
	return s.EnsureSchema(ctx)
}
