package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialetos SQL suportados pela tabela kv_entries.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// SQLStore grava cada chave como uma linha da tabela kv_entries (criada pelas migrações goose).
type SQLStore struct {
	db      *sql.DB
	dialect string
}

// NewSQLStore usa uma conexão já aberta e migrada.
func NewSQLStore(db *sql.DB, dialect string) (*SQLStore, error) {
	switch dialect {
	case DialectSQLite, DialectPostgres:
	default:
		return nil, fmt.Errorf("kvstore: dialeto SQL não suportado: %q", dialect)
	}
	return &SQLStore{db: db, dialect: dialect}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		s.rebind(`SELECT entry_value FROM kv_entries WHERE entry_key = ?`), key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("falha ao ler chave %q: %w", key, err)
	}
	return value, nil
}

// Set faz upsert; ON CONFLICT ... DO UPDATE funciona tanto no SQLite quanto no PostgreSQL.
func (s *SQLStore) Set(ctx context.Context, key string, value string) error {
	const query = `
        INSERT INTO kv_entries (entry_key, entry_value, updated_at)
        VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT (entry_key) DO UPDATE
        SET entry_value = excluded.entry_value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, s.rebind(query), key, value); err != nil {
		return fmt.Errorf("falha ao gravar chave %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM kv_entries WHERE entry_key = ?`), key); err != nil {
		return fmt.Errorf("falha ao remover chave %q: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// rebind troca os placeholders "?" por "$n" no PostgreSQL (lib/pq só aceita a forma numerada).
func (s *SQLStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
