package kvstore

import (
	"context"
	"fmt"

	"ondulado/internal/pkg/database"
)

// Drivers aceitos em STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Options descreve o backend a ser aberto.
type Options struct {
	Driver      string
	SQLitePath  string
	DatabaseURL string
	RedisAddr   string
}

// Open abre o backend escolhido. Para os drivers SQL as migrações são aplicadas antes de devolver o Store.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case DriverSQLite:
		db, err := database.NewSQLiteDB(opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
			db.Close()
			return nil, err
		}
		return NewSQLStore(db, DialectSQLite)

	case DriverPostgres:
		db, err := database.NewPostgresDB(opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, db, database.DialectPostgres); err != nil {
			db.Close()
			return nil, err
		}
		return NewSQLStore(db, DialectPostgres)

	case DriverRedis:
		store, err := NewRedisStore(ctx, opts.RedisAddr)
		if err != nil {
			return nil, err
		}
		return store, nil

	case DriverMemory:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("kvstore: driver desconhecido %q", opts.Driver)
	}
}
