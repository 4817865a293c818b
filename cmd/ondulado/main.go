package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"ondulado/config"
	"ondulado/internal/cli"
	"ondulado/internal/pkg/kvstore"
	"ondulado/internal/pkg/logger"
	"ondulado/internal/pkg/validation"
	"ondulado/internal/repository/onduladorepo"
	"ondulado/internal/service/editorservice"
	"ondulado/internal/service/onduladoservice"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}
	// Logs vão para stderr para não misturar com a listagem.
	log := logger.New(os.Stderr, cfg.Environment, cfg.LogLevel)

	ctx := context.Background()
	store, err := kvstore.Open(ctx, cfg.StoreOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao abrir o armazenamento: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	svc := onduladoservice.NewService(onduladorepo.NewRepository(store, cfg.StoreKey, cfg.StoreTimeout, log), log)
	if err := svc.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Erro ao carregar ondulados: %v\n", err)
		os.Exit(int(subcommands.ExitFailure))
	}

	app := &cli.App{
		Service: svc,
		Editor:  editorservice.NewService(svc, validation.New(), log),
		In:      os.Stdin,
		Out:     os.Stdout,
		Err:     os.Stderr,
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cli.Commands(app) {
		commander.Register(c, "")
	}

	flag.Parse()
	status := commander.Execute(ctx)
	store.Close() // os.Exit não executa defers
	os.Exit(int(status))
}
