package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Dialetos aceitos pelas migrações.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// NewMigrator cria um provider goose com as migrações embutidas no binário.
func NewMigrator(db *sql.DB, dialect string) (*goose.Provider, error) {
	var d goose.Dialect
	switch dialect {
	case DialectSQLite:
		d = goose.DialectSQLite3
	case DialectPostgres:
		d = goose.DialectPostgres
	default:
		return nil, fmt.Errorf("dialeto de migração não suportado: %q", dialect)
	}

	fsys, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("falha ao ler migrações embutidas: %w", err)
	}
	return goose.NewProvider(d, db, fsys)
}

// Migrate aplica todas as migrações pendentes.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	provider, err := NewMigrator(db, dialect)
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
