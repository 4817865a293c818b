package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"ondulado/config"
	"ondulado/internal/pkg/database"
	"ondulado/internal/pkg/kvstore"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: Arquivo .env não encontrado. Usando apenas o ambiente do sistema: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	flag.Parse()

	var (
		db      *sql.DB
		dialect string
	)
	switch cfg.StoreDriver {
	case kvstore.DriverSQLite:
		db, err = database.NewSQLiteDB(cfg.SQLitePath)
		dialect = database.DialectSQLite
	case kvstore.DriverPostgres:
		db, err = database.NewPostgresDB(cfg.DatabaseURL)
		dialect = database.DialectPostgres
	default:
		log.Fatalf("goose: STORE_DRIVER=%s não usa migrações SQL", cfg.StoreDriver)
	}
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao banco: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o banco: %v", err)
		}
	}()

	provider, err := database.NewMigrator(db, dialect)
	if err != nil {
		log.Fatalf("goose: %v", err)
	}

	command := "up" // padrão quando nenhum comando é informado
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	ctx := context.Background()
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			log.Fatalf("goose up: %v", err)
		}
		for _, r := range results {
			fmt.Printf("OK   %s (%s)\n", r.Source.Path, r.Duration)
		}
	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			log.Fatalf("goose down: %v", err)
		}
		fmt.Printf("OK   %s (%s)\n", r.Source.Path, r.Duration)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			log.Fatalf("goose status: %v", err)
		}
		for _, s := range statuses {
			applied := "Pendente"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Printf("%-20s %s\n", applied, s.Source.Path)
		}
	case "version":
		v, err := provider.GetDBVersion(ctx)
		if err != nil {
			log.Fatalf("goose version: %v", err)
		}
		fmt.Printf("goose: versão %d\n", v)
	default:
		log.Fatalf("goose: comando desconhecido %q (use up, down, status ou version)", command)
	}

	fmt.Printf("goose %s success\n", command)
}
