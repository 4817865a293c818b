package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver sqlite em Go puro
)

// NewSQLiteDB abre (ou cria) o arquivo SQLite local em path.
func NewSQLiteDB(path string) (*sql.DB, error) {
	if path == "" {
		path = "ondulados.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("falha ao criar diretório do banco: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir o SQLite: %w", err)
	}

	// SQLite admite um escritor por vez; uma conexão evita SQLITE_BUSY entre goroutines.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no SQLite: %w", err)
	}
	return db, nil
}
