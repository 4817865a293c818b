package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/subcommands"

	"ondulado/internal/domain"
	apperror "ondulado/internal/errors"
	"ondulado/internal/service/editorservice"
)

// PromptExclusao é a pergunta feita antes de excluir um registro.
const PromptExclusao = "Deseja realmente excluir este ondulado? [s/N] "

// OnduladoService é o que os comandos de leitura e exclusão usam do estoque.
type OnduladoService interface {
	List(ctx context.Context) []domain.OnduladoView
	Remove(ctx context.Context, id string) (bool, error)
}

// Editor é o formulário compartilhado usado por criar e editar.
type Editor interface {
	BeginCreate() editorservice.State
	BeginEdit(ctx context.Context, id string) (editorservice.State, error)
	Fill(form domain.OnduladoForm) editorservice.State
	Submit(ctx context.Context) (editorservice.SubmitResult, error)
}

// App liga os comandos ao serviço e aos fluxos de entrada e saída.
type App struct {
	Service OnduladoService
	Editor  Editor
	In      io.Reader
	Out     io.Writer
	Err     io.Writer
}

// Commands devolve os subcomandos registrados pelo binário.
func Commands(app *App) []subcommands.Command {
	return []subcommands.Command{
		&listarCmd{app: app},
		&criarCmd{app: app},
		&editarCmd{app: app},
		&excluirCmd{app: app},
	}
}

// warnPersistence imprime o aviso de gravação e diz se err era só isso.
func (a *App) warnPersistence(err error) bool {
	var persistErr *apperror.PersistenceError
	if !errors.As(err, &persistErr) {
		return false
	}
	fmt.Fprintf(a.Err, "⚠️ Aviso: a alteração vale nesta sessão mas não foi gravada: %v\n", persistErr)
	return true
}

// reportError imprime o erro e, para formulários inválidos, cada campo rejeitado.
func (a *App) reportError(err error) {
	fmt.Fprintf(a.Err, "Erro: %v\n", err)
	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		for field, msg := range verr.Fields {
			fmt.Fprintf(a.Err, "  - %s: %s\n", field, msg)
		}
	}
}

// --- listar ---

type listarCmd struct {
	app *App
}

func (*listarCmd) Name() string     { return "listar" }
func (*listarCmd) Synopsis() string { return "lista o estoque de ondulados" }
func (*listarCmd) Usage() string {
	return `listar

  Mostra todos os ondulados na ordem de cadastro, com o valor total de cada um.
`
}
func (*listarCmd) SetFlags(*flag.FlagSet) {}

func (c *listarCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	views := c.app.Service.List(ctx)
	if len(views) == 0 {
		fmt.Fprintln(c.app.Out, "Nenhum ondulado cadastrado.")
		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(c.app.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOME\tFORNECEDOR\tMEDIDAS (mm)\tGRAMATURA\tONDA\tQTDE\tCUSTO/FOLHA\tTOTAL\tUSO")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%gx%g\t%g\t%s\t%d\t%s\t%s\t%s\n",
			v.ID, v.Nome, v.Fornecedor, v.Largura, v.Altura, v.Gramatura, v.TipoOnda,
			v.Quantidade, v.CustoFolhaFormatado, v.ValorTotalFormatado, v.UsoDestinado)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(c.app.Err, "Erro ao escrever a listagem: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- criar / editar ---

// formFlags registra um flag por campo do formulário. Só os flags informados sobrescrevem o formulário.
type formFlags struct {
	nome, fornecedor, onda, uso       string
	largura, altura, gramatura, custo float64
	quantidade                        int
}

func (ff *formFlags) register(f *flag.FlagSet) {
	f.StringVar(&ff.nome, "nome", "", "Nome do ondulado")
	f.StringVar(&ff.fornecedor, "fornecedor", "", "MICROPACK ou OUTROS")
	f.Float64Var(&ff.largura, "largura", 0, "Largura em mm")
	f.Float64Var(&ff.altura, "altura", 0, "Altura em mm")
	f.Float64Var(&ff.gramatura, "gramatura", 0, "Gramatura em g/m²")
	f.StringVar(&ff.onda, "onda", "", "Tipo de onda: E, B, C ou BC")
	f.IntVar(&ff.quantidade, "quantidade", 0, "Quantidade de folhas")
	f.Float64Var(&ff.custo, "custo", 0, "Custo por folha")
	f.StringVar(&ff.uso, "uso", "", "Uso destinado")
}

// apply copia para form os valores dos flags efetivamente informados na linha de comando.
func (ff *formFlags) apply(f *flag.FlagSet, form domain.OnduladoForm) domain.OnduladoForm {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "nome":
			form.Nome = &ff.nome
		case "fornecedor":
			v := strings.ToUpper(ff.fornecedor)
			form.Fornecedor = &v
		case "largura":
			form.Largura = &ff.largura
		case "altura":
			form.Altura = &ff.altura
		case "gramatura":
			form.Gramatura = &ff.gramatura
		case "onda":
			v := strings.ToUpper(ff.onda)
			form.TipoOnda = &v
		case "quantidade":
			form.Quantidade = &ff.quantidade
		case "custo":
			form.CustoFolha = &ff.custo
		case "uso":
			form.UsoDestinado = &ff.uso
		}
	})
	return form
}

type criarCmd struct {
	app *App
	formFlags
}

func (*criarCmd) Name() string     { return "criar" }
func (*criarCmd) Synopsis() string { return "cadastra um ondulado" }
func (*criarCmd) Usage() string {
	return `criar -nome <nome> -largura <mm> -altura <mm> -quantidade <n> -custo <valor> [-fornecedor MICROPACK|OUTROS] [-gramatura <g/m²>] [-onda E|B|C|BC] [-uso <texto>]

  Cadastra um novo ondulado. Fornecedor, gramatura e onda assumem MICROPACK, 230 e E quando omitidos.
`
}
func (c *criarCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *criarCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st := c.app.Editor.BeginCreate()
	c.app.Editor.Fill(c.apply(f, st.Form))

	result, err := c.app.Editor.Submit(ctx)
	if err != nil && !c.app.warnPersistence(err) {
		c.app.reportError(err)
		return subcommands.ExitFailure
	}

	v := domain.NewView(result.Ondulado)
	fmt.Fprintf(c.app.Out, "✅ Ondulado '%s' cadastrado (ID %s, total %s).\n", v.Nome, v.ID, v.ValorTotalFormatado)
	return subcommands.ExitSuccess
}

type editarCmd struct {
	app *App
	id  string
	formFlags
}

func (*editarCmd) Name() string     { return "editar" }
func (*editarCmd) Synopsis() string { return "altera um ondulado existente" }
func (*editarCmd) Usage() string {
	return `editar -id <id> [-nome ...] [-largura ...] [...]

  Carrega o ondulado no formulário, aplica os campos informados e grava.
  Campos não informados mantêm o valor atual.
`
}

func (c *editarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID do ondulado (obrigatório)")
	c.register(f)
}

func (c *editarCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(c.app.Err, "Erro: o flag -id é obrigatório.")
		return subcommands.ExitUsageError
	}

	st, err := c.app.Editor.BeginEdit(ctx, c.id)
	if err != nil {
		c.app.reportError(err)
		return subcommands.ExitFailure
	}
	c.app.Editor.Fill(c.apply(f, st.Form))

	result, err := c.app.Editor.Submit(ctx)
	if err != nil && !c.app.warnPersistence(err) {
		c.app.reportError(err)
		return subcommands.ExitFailure
	}
	if !result.Applied {
		fmt.Fprintf(c.app.Err, "Ondulado %s não existe mais. Nada foi alterado.\n", c.id)
		return subcommands.ExitFailure
	}

	v := domain.NewView(result.Ondulado)
	fmt.Fprintf(c.app.Out, "✅ Ondulado '%s' atualizado (total %s).\n", v.Nome, v.ValorTotalFormatado)
	return subcommands.ExitSuccess
}

// --- excluir ---

type excluirCmd struct {
	app *App
	id  string
	sim bool
}

func (*excluirCmd) Name() string     { return "excluir" }
func (*excluirCmd) Synopsis() string { return "exclui um ondulado" }
func (*excluirCmd) Usage() string {
	return `excluir -id <id> [-sim]

  Exclui o ondulado após confirmação. -sim pula a pergunta.
`
}

func (c *excluirCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID do ondulado (obrigatório)")
	f.BoolVar(&c.sim, "sim", false, "Confirma a exclusão sem perguntar")
}

func (c *excluirCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(c.app.Err, "Erro: o flag -id é obrigatório.")
		return subcommands.ExitUsageError
	}

	if !c.sim && !confirm(c.app.In, c.app.Out) {
		fmt.Fprintln(c.app.Out, "Exclusão cancelada.")
		return subcommands.ExitSuccess
	}

	removed, err := c.app.Service.Remove(ctx, c.id)
	if err != nil && !c.app.warnPersistence(err) {
		c.app.reportError(err)
		return subcommands.ExitFailure
	}
	if !removed {
		fmt.Fprintf(c.app.Out, "Ondulado %s não encontrado. Nada a excluir.\n", c.id)
		return subcommands.ExitSuccess
	}

	fmt.Fprintf(c.app.Out, "🗑️ Ondulado %s excluído.\n", c.id)
	return subcommands.ExitSuccess
}

// confirm pergunta e aceita apenas respostas afirmativas explícitas.
func confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, PromptExclusao)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true
	default:
		return false
	}
}
