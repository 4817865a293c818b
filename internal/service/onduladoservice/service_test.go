package onduladoservice_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ondulado/internal/domain"
	apperror "ondulado/internal/errors"
	"ondulado/internal/pkg/kvstore"
	"ondulado/internal/pkg/logger"
	"ondulado/internal/repository/onduladorepo"
	"ondulado/internal/service/onduladoservice"
)

// MockOnduladoRepository é uma implementação mock da interface OnduladoRepository
type MockOnduladoRepository struct {
	mock.Mock
}

func (m *MockOnduladoRepository) Load(ctx context.Context) ([]domain.Ondulado, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Ondulado), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOnduladoRepository) Persist(ctx context.Context, ondulados []domain.Ondulado) error {
	args := m.Called(ctx, ondulados)
	return args.Error(0)
}

func (m *MockOnduladoRepository) Backup(ctx context.Context, raw string) (string, error) {
	args := m.Called(ctx, raw)
	return args.String(0), args.Error(1)
}

func e230() domain.OnduladoFields {
	return domain.OnduladoFields{
		Nome:         "Ondulado E230",
		Fornecedor:   domain.FornecedorMicropack,
		Largura:      1000,
		Altura:       800,
		Gramatura:    230,
		TipoOnda:     domain.OndaE,
		Quantidade:   50,
		CustoFolha:   2.50,
		UsoDestinado: "Caixas",
	}
}

func chapa(nome string, quantidade int) domain.OnduladoFields {
	f := domain.DefaultFields()
	f.Nome = nome
	f.Quantidade = quantidade
	f.CustoFolha = 1
	return f
}

// newMemoryService monta o serviço sobre o repositório real e um armazenamento em memória.
func newMemoryService(t *testing.T) (*onduladoservice.Service, *onduladorepo.Repository) {
	t.Helper()
	repo := onduladorepo.NewRepository(kvstore.NewMemoryStore(), onduladorepo.DefaultKey, time.Second, logger.NewNop())
	svc := onduladoservice.NewService(repo, logger.NewNop())
	require.NoError(t, svc.Load(context.Background()))
	return svc, repo
}

func ids(views []domain.OnduladoView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

// --- Cenários ---

func TestCreate_ScenarioE230(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, e230())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list := svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, e230(), list[0].OnduladoFields)
	assert.Equal(t, 125.0, list[0].ValorTotal)
	assert.Equal(t, "R$ 125.00", list[0].ValorTotalFormatado)
}

func TestUpdate_ScenarioQuantidade100(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, e230())
	require.NoError(t, err)

	fields := e230()
	fields.Quantidade = 100
	updated, found, err := svc.Update(ctx, created.ID, fields)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created.ID, updated.ID)

	list := svc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Ondulado E230", list[0].Nome)
	assert.Equal(t, 250.0, list[0].ValorTotal)
	assert.Equal(t, "R$ 250.00", list[0].ValorTotalFormatado)
}

func TestCreate_RapidSuccessionDistinctIDsInOrder(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, chapa("primeiro", 1))
	require.NoError(t, err)
	second, err := svc.Create(ctx, chapa("segundo", 2))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, []string{first.ID, second.ID}, ids(svc.List(ctx)))
}

func TestUpdate_KeepsPosition(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, chapa("a", 1))
	b, _ := svc.Create(ctx, chapa("b", 2))
	c, _ := svc.Create(ctx, chapa("c", 3))

	_, found, err := svc.Update(ctx, b.ID, chapa("b editado", 20))
	require.NoError(t, err)
	require.True(t, found)

	list := svc.List(ctx)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, ids(list))
	assert.Equal(t, "b editado", list[1].Nome)
	assert.Equal(t, 20, list[1].Quantidade)
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	repo := new(MockOnduladoRepository)
	repo.On("Load", mock.Anything).Return([]domain.Ondulado{{ID: "x", OnduladoFields: e230()}}, nil)
	svc := onduladoservice.NewService(repo, logger.NewNop())
	require.NoError(t, svc.Load(context.Background()))

	_, found, err := svc.Update(context.Background(), "nao-existe", chapa("y", 1))

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []string{"x"}, ids(svc.List(context.Background())))
	repo.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything)
}

func TestRemove_DeletesAndIsIdempotent(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()

	a, _ := svc.Create(ctx, chapa("a", 1))
	b, _ := svc.Create(ctx, chapa("b", 2))

	found, err := svc.Remove(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{b.ID}, ids(svc.List(ctx)))

	found, err = svc.Remove(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []string{b.ID}, ids(svc.List(ctx)))
}

func TestGet(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()
	created, _ := svc.Create(ctx, e230())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Get(ctx, "nao-existe")
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestMutations_PersistAndReload(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := onduladorepo.NewRepository(store, onduladorepo.DefaultKey, time.Second, logger.NewNop())
	svc := onduladoservice.NewService(repo, logger.NewNop())
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	a, _ := svc.Create(ctx, chapa("a", 1))
	b, _ := svc.Create(ctx, e230())
	_, _, _ = svc.Update(ctx, a.ID, chapa("a2", 9))
	_, _ = svc.Remove(ctx, b.ID)

	reloaded := onduladoservice.NewService(repo, logger.NewNop())
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, svc.List(ctx), reloaded.List(ctx))
	require.Len(t, reloaded.List(ctx), 1)
	assert.Equal(t, "a2", reloaded.List(ctx)[0].Nome)
}

// Propriedade: para qualquer sequência de create/update/remove os IDs continuam únicos.
func TestRandomOperations_IDsStayUnique(t *testing.T) {
	svc, _ := newMemoryService(t)
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 300; i++ {
		list := svc.List(ctx)
		switch op := rng.Intn(3); {
		case op == 0 || len(list) == 0:
			_, err := svc.Create(ctx, chapa(fmt.Sprintf("n%d", i), i))
			require.NoError(t, err)
		case op == 1:
			target := list[rng.Intn(len(list))]
			_, found, err := svc.Update(ctx, target.ID, chapa(fmt.Sprintf("u%d", i), i))
			require.NoError(t, err)
			require.True(t, found)
		default:
			before := len(list)
			target := list[rng.Intn(len(list))]
			found, err := svc.Remove(ctx, target.ID)
			require.NoError(t, err)
			require.True(t, found)
			require.Len(t, svc.List(ctx), before-1)
		}

		seen := map[string]bool{}
		for _, id := range ids(svc.List(ctx)) {
			require.False(t, seen[id], "ID duplicado %s", id)
			seen[id] = true
		}
	}
}

// --- Geração de IDs ---

func TestCreate_RegeneratesCollidingID(t *testing.T) {
	repo := new(MockOnduladoRepository)
	repo.On("Load", mock.Anything).Return([]domain.Ondulado{{ID: "dup", OnduladoFields: e230()}}, nil)
	repo.On("Persist", mock.Anything, mock.Anything).Return(nil)

	generated := []string{"dup", "dup", "novo"}
	svc := onduladoservice.NewService(repo, logger.NewNop(), onduladoservice.WithIDGenerator(func() string {
		id := generated[0]
		generated = generated[1:]
		return id
	}))
	require.NoError(t, svc.Load(context.Background()))

	created, err := svc.Create(context.Background(), chapa("b", 1))
	require.NoError(t, err)
	assert.Equal(t, "novo", created.ID)
}

func TestCreate_GivesUpOnEndlessCollisions(t *testing.T) {
	repo := new(MockOnduladoRepository)
	repo.On("Load", mock.Anything).Return([]domain.Ondulado{{ID: "dup", OnduladoFields: e230()}}, nil)
	svc := onduladoservice.NewService(repo, logger.NewNop(), onduladoservice.WithIDGenerator(func() string { return "dup" }))
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.Create(context.Background(), chapa("b", 1))

	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Len(t, svc.List(context.Background()), 1)
	repo.AssertNotCalled(t, "Persist", mock.Anything, mock.Anything)
}

// --- Falhas de persistência e carga ---

func TestCreate_PersistFailureKeepsMemoryAuthoritative(t *testing.T) {
	repo := new(MockOnduladoRepository)
	repo.On("Load", mock.Anything).Return([]domain.Ondulado{}, nil)
	repo.On("Persist", mock.Anything, mock.Anything).Return(apperror.NewPersistenceError("falha ao gravar ondulados", errors.New("quota exceeded"))).Once()
	repo.On("Persist", mock.Anything, mock.Anything).Return(nil)

	svc := onduladoservice.NewService(repo, logger.NewNop())
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	created, err := svc.Create(ctx, e230())
	var persistErr *apperror.PersistenceError
	require.True(t, errors.As(err, &persistErr))
	assert.NotEmpty(t, created.ID)
	assert.Len(t, svc.List(ctx), 1)

	status := svc.Status()
	assert.True(t, status.PersistenciaPendente)
	assert.Contains(t, status.UltimoErro, "quota exceeded")

	// A próxima gravação bem-sucedida regrava a coleção inteira e limpa o aviso.
	_, err = svc.Create(ctx, chapa("segundo", 1))
	require.NoError(t, err)
	status = svc.Status()
	assert.False(t, status.PersistenciaPendente)
	assert.Equal(t, 2, status.Total)
	assert.False(t, status.UltimaGravacao.IsZero())

	repo.AssertNumberOfCalls(t, "Persist", 2)
}

func TestPersistFailure_UntypedErrorIsWrapped(t *testing.T) {
	repo := new(MockOnduladoRepository)
	repo.On("Load", mock.Anything).Return([]domain.Ondulado{}, nil)
	repo.On("Persist", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	svc := onduladoservice.NewService(repo, logger.NewNop())
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.Create(context.Background(), e230())

	assert.IsType(t, &apperror.PersistenceError{}, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestLoad_CorruptDataFallsBackToEmptyAndBacksUp(t *testing.T) {
	repo := new(MockOnduladoRepository)
	repo.On("Load", mock.Anything).Return(nil, apperror.NewCorruptDataError("ondulados", "{lixo", errors.New("invalid character")))
	repo.On("Backup", mock.Anything, "{lixo").Return("ondulados.corrompido.1", nil)

	svc := onduladoservice.NewService(repo, logger.NewNop())

	require.NoError(t, svc.Load(context.Background()))
	assert.Empty(t, svc.List(context.Background()))
	repo.AssertExpectations(t)
}

func TestLoad_CorruptDataBackupFailureStillStarts(t *testing.T) {
	repo := new(MockOnduladoRepository)
	repo.On("Load", mock.Anything).Return(nil, apperror.NewCorruptDataError("ondulados", "{lixo", errors.New("invalid character")))
	repo.On("Backup", mock.Anything, "{lixo").Return("", errors.New("read-only"))

	svc := onduladoservice.NewService(repo, logger.NewNop())

	assert.NoError(t, svc.Load(context.Background()))
	assert.Empty(t, svc.List(context.Background()))
}

func TestLoad_StoreFailureIsReturned(t *testing.T) {
	repo := new(MockOnduladoRepository)
	storeErr := apperror.NewStoreError("Falha ao carregar ondulados", errors.New("connection refused"))
	repo.On("Load", mock.Anything).Return(nil, storeErr)

	svc := onduladoservice.NewService(repo, logger.NewNop())

	err := svc.Load(context.Background())
	assert.Equal(t, storeErr, err)
}

// --- Métricas ---

type fakeMetrics struct {
	ops      []string
	failures int
	records  int
}

func (f *fakeMetrics) Mutation(op string) { f.ops = append(f.ops, op) }
func (f *fakeMetrics) PersistFailure()    { f.failures++ }
func (f *fakeMetrics) SetRecords(n int)   { f.records = n }

func TestMetrics_RecordsMutations(t *testing.T) {
	repo := onduladorepo.NewRepository(kvstore.NewMemoryStore(), "", time.Second, logger.NewNop())
	m := &fakeMetrics{}
	svc := onduladoservice.NewService(repo, logger.NewNop(), onduladoservice.WithMetrics(m))
	ctx := context.Background()
	require.NoError(t, svc.Load(ctx))

	a, _ := svc.Create(ctx, chapa("a", 1))
	_, _ = svc.Create(ctx, chapa("b", 1))
	_, _, _ = svc.Update(ctx, a.ID, chapa("a2", 1))
	_, _ = svc.Remove(ctx, a.ID)
	_, _ = svc.Remove(ctx, a.ID) // no-op não conta

	assert.Equal(t, []string{"create", "create", "update", "remove"}, m.ops)
	assert.Equal(t, 1, m.records)
	assert.Zero(t, m.failures)
}
