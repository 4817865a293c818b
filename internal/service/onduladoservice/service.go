package onduladoservice

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"ondulado/internal/domain"
	apperror "ondulado/internal/errors"
	"ondulado/internal/pkg/logger"
	"ondulado/internal/pkg/metrics"
)

// maxIDAttempts limita a regeneração de IDs em caso de colisão.
const maxIDAttempts = 10

// OnduladoRepository define o contrato que o Serviço espera da camada de Persistência.
type OnduladoRepository interface {
	Load(ctx context.Context) ([]domain.Ondulado, error)
	Persist(ctx context.Context, ondulados []domain.Ondulado) error
	Backup(ctx context.Context, raw string) (string, error)
}

// Metrics recebe os eventos do serviço (implementado por metrics.Recorder).
type Metrics interface {
	Mutation(op string)
	PersistFailure()
	SetRecords(n int)
}

// Status resume o estado da coleção e da última gravação.
type Status struct {
	Total                int       `json:"total"`
	PersistenciaPendente bool      `json:"persistenciaPendente"`
	UltimoErro           string    `json:"ultimoErro,omitempty"`
	UltimaGravacao       time.Time `json:"ultimaGravacao,omitzero"`
}

// Service é o dono da coleção em memória. Toda mutação reescreve a coleção inteira no repositório.
// Não valida campos: a validação acontece na fronteira do formulário.
type Service struct {
	mu        sync.Mutex
	repo      OnduladoRepository
	logger    logger.Logger
	metrics   Metrics
	newID     func() string
	ondulados []domain.Ondulado

	lastPersistErr error
	lastPersistAt  time.Time
}

// Option customiza o Service.
type Option func(*Service)

// WithMetrics liga o serviço a um coletor de métricas.
func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithIDGenerator troca o gerador de IDs (UUID v4 por padrão).
func WithIDGenerator(f func() string) Option {
	return func(s *Service) { s.newID = f }
}

// NewService cria e retorna uma nova instância do Serviço com a coleção vazia.
// Chame Load uma vez na inicialização.
func NewService(repo OnduladoRepository, logger logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		logger:    logger,
		metrics:   metrics.Nop{},
		newID:     func() string { return uuid.New().String() },
		ondulados: []domain.Ondulado{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load carrega a coleção persistida para a memória.
// Dados corrompidos não derrubam a aplicação: o blob é copiado para uma chave de backup e a coleção começa vazia.
func (s *Service) Load(ctx context.Context) error {
	s.logger.Debug("Iniciando carga da coleção no serviço.", nil)

	ondulados, err := s.repo.Load(ctx)

	var corrupt *apperror.CorruptDataError
	switch {
	case errors.As(err, &corrupt):
		s.logger.Warn("Dados persistidos corrompidos. Iniciando com coleção vazia.", map[string]interface{}{
			"key":   corrupt.Key,
			"error": corrupt.Err.Error(),
		})
		if backupKey, backupErr := s.repo.Backup(ctx, corrupt.Raw); backupErr != nil {
			s.logger.Error("Falha ao salvar cópia dos dados corrompidos.", backupErr)
		} else {
			s.logger.Info("Cópia dos dados corrompidos salva.", map[string]interface{}{"backup_key": backupKey})
		}
		ondulados = []domain.Ondulado{}
	case err != nil:
		s.logger.Error("Falha ao carregar coleção do repositório.", err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ondulados = ondulados
	s.metrics.SetRecords(len(ondulados))
	s.logger.Info("Coleção carregada.", map[string]interface{}{"count": len(ondulados)})
	return nil
}

// Create atribui um ID novo, adiciona o registro ao fim da coleção e persiste.
// Um *apperror.PersistenceError no retorno é um aviso: o registro já está na coleção em memória.
func (s *Service) Create(ctx context.Context, fields domain.OnduladoFields) (domain.Ondulado, error) {
	s.logger.Debug("Iniciando criação de ondulado no serviço.", map[string]interface{}{"nome": fields.Nome})

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		s.logger.Error("Falha ao gerar ID de ondulado.", err)
		return domain.Ondulado{}, err
	}

	created := domain.Ondulado{ID: id, OnduladoFields: fields}
	next := make([]domain.Ondulado, len(s.ondulados), len(s.ondulados)+1)
	copy(next, s.ondulados)
	next = append(next, created)

	if err := s.commit(ctx, "create", next); err != nil {
		return created, err
	}

	s.logger.Info("Ondulado criado com sucesso.", map[string]interface{}{"id": created.ID, "nome": created.Nome})
	return created, nil
}

// Update substitui todos os campos do registro id, mantendo sua posição.
// ID inexistente é um no-op silencioso: found=false e nada é gravado.
func (s *Service) Update(ctx context.Context, id string, fields domain.OnduladoFields) (domain.Ondulado, bool, error) {
	s.logger.Debug("Iniciando atualização de ondulado no serviço.", map[string]interface{}{"id": id})

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("Ondulado não encontrado para atualização. Nada a fazer.", map[string]interface{}{"id": id})
		return domain.Ondulado{}, false, nil
	}

	updated := domain.Ondulado{ID: id, OnduladoFields: fields}
	next := slices.Clone(s.ondulados)
	next[idx] = updated

	if err := s.commit(ctx, "update", next); err != nil {
		return updated, true, err
	}

	s.logger.Info("Ondulado atualizado com sucesso.", map[string]interface{}{"id": id, "nome": updated.Nome})
	return updated, true, nil
}

// Remove exclui o registro id. A confirmação do usuário é responsabilidade de quem chama.
// ID inexistente é um no-op silencioso, o que torna a operação idempotente.
func (s *Service) Remove(ctx context.Context, id string) (bool, error) {
	s.logger.Debug("Iniciando exclusão de ondulado no serviço.", map[string]interface{}{"id": id})

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("Ondulado não encontrado para exclusão. Nada a fazer.", map[string]interface{}{"id": id})
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.ondulados), idx, idx+1)

	if err := s.commit(ctx, "remove", next); err != nil {
		return true, err
	}

	s.logger.Info("Ondulado excluído com sucesso.", map[string]interface{}{"id": id})
	return true, nil
}

// Get devolve o registro id ou um NotFoundError.
func (s *Service) Get(_ context.Context, id string) (domain.Ondulado, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Ondulado{}, apperror.NewNotFoundError(fmt.Sprintf("Ondulado com ID %s não existe.", id))
	}
	return s.ondulados[idx], nil
}

// List devolve a coleção na ordem atual, com os valores derivados calculados na leitura.
func (s *Service) List(_ context.Context) []domain.OnduladoView {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]domain.OnduladoView, 0, len(s.ondulados))
	for _, o := range s.ondulados {
		views = append(views, domain.NewView(o))
	}
	return views
}

// Status informa o total de registros e se a última gravação falhou.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Total:                len(s.ondulados),
		PersistenciaPendente: s.lastPersistErr != nil,
		UltimaGravacao:       s.lastPersistAt,
	}
	if s.lastPersistErr != nil {
		st.UltimoErro = s.lastPersistErr.Error()
	}
	return st
}

// commit troca a coleção em memória e persiste. Deve ser chamado com s.mu travado.
// Em caso de falha a coleção em memória continua valendo; a falha fica registrada em Status.
func (s *Service) commit(ctx context.Context, op string, next []domain.Ondulado) error {
	s.ondulados = next
	s.metrics.Mutation(op)
	s.metrics.SetRecords(len(next))

	if err := s.repo.Persist(ctx, next); err != nil {
		s.lastPersistErr = err
		s.metrics.PersistFailure()
		s.logger.Error("Falha ao persistir coleção. Mantendo estado em memória.", err)

		var persistErr *apperror.PersistenceError
		if !errors.As(err, &persistErr) {
			err = apperror.NewPersistenceError("falha ao gravar ondulados", err)
		}
		return err
	}

	s.lastPersistErr = nil
	s.lastPersistAt = time.Now().UTC()
	return nil
}

func (s *Service) indexOf(id string) int {
	return slices.IndexFunc(s.ondulados, func(o domain.Ondulado) bool { return o.ID == id })
}

func (s *Service) uniqueID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", apperror.NewInternalError("Não foi possível gerar um ID único para o ondulado.", nil)
}
