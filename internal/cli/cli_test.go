package cli_test

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ondulado/internal/cli"
	"ondulado/internal/domain"
	"ondulado/internal/pkg/kvstore"
	"ondulado/internal/pkg/logger"
	"ondulado/internal/pkg/validation"
	"ondulado/internal/repository/onduladorepo"
	"ondulado/internal/service/editorservice"
	"ondulado/internal/service/onduladoservice"
)

type harness struct {
	svc      *onduladoservice.Service
	in       *strings.Reader
	out, err bytes.Buffer
	app      *cli.App
}

func newHarness(t *testing.T, stdin string) *harness {
	t.Helper()
	log := logger.NewNop()
	repo := onduladorepo.NewRepository(kvstore.NewMemoryStore(), onduladorepo.DefaultKey, time.Second, log)
	svc := onduladoservice.NewService(repo, log)
	require.NoError(t, svc.Load(context.Background()))

	h := &harness{svc: svc, in: strings.NewReader(stdin)}
	h.app = &cli.App{
		Service: svc,
		Editor:  editorservice.NewService(svc, validation.New(), log),
		In:      h.in,
		Out:     &h.out,
		Err:     &h.err,
	}
	return h
}

// run executa um comando como se viesse da linha de comando, com um FlagSet novo a cada chamada.
func (h *harness) run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet("ondulado", flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, "ondulado")
	for _, c := range cli.Commands(h.app) {
		commander.Register(c, "")
	}
	require.NoError(t, fs.Parse(args))
	return commander.Execute(context.Background())
}

func TestListar_Empty(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, subcommands.ExitSuccess, h.run(t, "listar"))
	assert.Contains(t, h.out.String(), "Nenhum ondulado cadastrado.")
}

func TestCriar_AppliesDefaultsAndListarShowsTotal(t *testing.T) {
	h := newHarness(t, "")

	status := h.run(t, "criar", "-nome", "Ondulado E230", "-largura", "1000", "-altura", "800", "-quantidade", "50", "-custo", "2.5", "-uso", "Caixas")
	require.Equal(t, subcommands.ExitSuccess, status, h.err.String())
	assert.Contains(t, h.out.String(), "R$ 125.00")

	list := h.svc.List(context.Background())
	require.Len(t, list, 1)
	assert.Equal(t, domain.FornecedorMicropack, list[0].Fornecedor)
	assert.Equal(t, 230.0, list[0].Gramatura)
	assert.Equal(t, domain.OndaE, list[0].TipoOnda)

	h.out.Reset()
	assert.Equal(t, subcommands.ExitSuccess, h.run(t, "listar"))
	assert.Contains(t, h.out.String(), "Ondulado E230")
	assert.Contains(t, h.out.String(), "1000x800")
	assert.Contains(t, h.out.String(), "R$ 2.50")
}

func TestCriar_InvalidFormReportsFields(t *testing.T) {
	h := newHarness(t, "")

	status := h.run(t, "criar", "-nome", "Sem medidas", "-onda", "z")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, h.err.String(), "largura")
	assert.Contains(t, h.err.String(), "tipoOnda")
	assert.Empty(t, h.svc.List(context.Background()))
}

func TestEditar_OnlyOverridesGivenFlags(t *testing.T) {
	h := newHarness(t, "")
	created, err := h.svc.Create(context.Background(), domain.OnduladoFields{
		Nome: "A", Fornecedor: domain.FornecedorOutros, Largura: 10, Altura: 20,
		Gramatura: 300, TipoOnda: domain.OndaC, Quantidade: 4, CustoFolha: 1, UsoDestinado: "Displays",
	})
	require.NoError(t, err)

	status := h.run(t, "editar", "-id", created.ID, "-quantidade", "8")
	require.Equal(t, subcommands.ExitSuccess, status, h.err.String())

	got, err := h.svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Quantidade)
	assert.Equal(t, domain.FornecedorOutros, got.Fornecedor)
	assert.Equal(t, domain.OndaC, got.TipoOnda)
	assert.Equal(t, "Displays", got.UsoDestinado)
}

func TestEditar_RequiresKnownID(t *testing.T) {
	h := newHarness(t, "")
	assert.Equal(t, subcommands.ExitUsageError, h.run(t, "editar"))
	assert.Equal(t, subcommands.ExitFailure, h.run(t, "editar", "-id", "nao-existe"))
}

func TestExcluir_AsksForConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		stdin       string
		args        []string
		wantRemoved bool
	}{
		{name: "confirmado", stdin: "s\n", wantRemoved: true},
		{name: "sim por extenso", stdin: "Sim\n", wantRemoved: true},
		{name: "recusado", stdin: "n\n", wantRemoved: false},
		{name: "resposta vazia", stdin: "\n", wantRemoved: false},
		{name: "sem entrada", stdin: "", wantRemoved: false},
		{name: "flag -sim", stdin: "", args: []string{"-sim"}, wantRemoved: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.stdin)
			created, err := h.svc.Create(context.Background(), domain.OnduladoFields{Nome: "A", Quantidade: 1, CustoFolha: 1})
			require.NoError(t, err)

			args := append([]string{"excluir", "-id", created.ID}, tt.args...)
			assert.Equal(t, subcommands.ExitSuccess, h.run(t, args...))

			_, getErr := h.svc.Get(context.Background(), created.ID)
			assert.Equal(t, tt.wantRemoved, getErr != nil)
			if len(tt.args) == 0 {
				assert.Contains(t, h.out.String(), cli.PromptExclusao)
			}
		})
	}
}
