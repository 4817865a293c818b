package onduladorepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ondulado/internal/domain"
	apperror "ondulado/internal/errors"
	"ondulado/internal/pkg/kvstore"
	"ondulado/internal/pkg/logger"
)

// DefaultKey é a chave fixa sob a qual a coleção inteira é gravada.
const DefaultKey = "ondulados"

// Repository lê e grava a coleção de ondulados como um único array JSON no armazenamento chave-valor.
type Repository struct {
	Store        kvstore.Store
	Key          string
	StoreTimeout time.Duration
	logger       logger.Logger
}

// NewRepository cria o repositório sobre o backend já aberto.
func NewRepository(store kvstore.Store, key string, storeTimeout time.Duration, logger logger.Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{
		Store:        store,
		Key:          key,
		StoreTimeout: storeTimeout,
		logger:       logger,
	}
}

func (r *Repository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.StoreTimeout)
}

// Load lê o blob persistido. Chave ausente devolve coleção vazia.
// JSON malformado devolve *apperror.CorruptDataError com o conteúdo bruto.
func (r *Repository) Load(ctx context.Context) ([]domain.Ondulado, error) {
	r.logger.Debug("Carregando coleção do armazenamento.", map[string]interface{}{"key": r.Key})

	ctxTimeout, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, err := r.Store.Get(ctxTimeout, r.Key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		r.logger.Info("Nenhuma coleção persistida. Iniciando vazia.", map[string]interface{}{"key": r.Key})
		return []domain.Ondulado{}, nil
	}
	if err != nil {
		r.logger.Error("Falha ao ler coleção do armazenamento.", err)
		return nil, apperror.NewStoreError("Falha ao carregar ondulados", err)
	}

	var ondulados []domain.Ondulado
	if err := json.Unmarshal([]byte(raw), &ondulados); err != nil {
		return nil, apperror.NewCorruptDataError(r.Key, raw, err)
	}
	if ondulados == nil {
		// "null" persistido
		ondulados = []domain.Ondulado{}
	}

	r.logger.Debug("Coleção carregada.", map[string]interface{}{"key": r.Key, "count": len(ondulados)})
	return ondulados, nil
}

// Persist serializa a coleção inteira e sobrescreve a chave.
func (r *Repository) Persist(ctx context.Context, ondulados []domain.Ondulado) error {
	if ondulados == nil {
		ondulados = []domain.Ondulado{}
	}

	payload, err := json.Marshal(ondulados)
	if err != nil {
		return apperror.NewPersistenceError("falha ao serializar ondulados", err)
	}

	ctxTimeout, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.Store.Set(ctxTimeout, r.Key, string(payload)); err != nil {
		r.logger.Error("Falha ao gravar coleção no armazenamento.", err)
		return apperror.NewPersistenceError("falha ao gravar ondulados", err)
	}

	r.logger.Debug("Coleção persistida.", map[string]interface{}{"key": r.Key, "count": len(ondulados), "bytes": len(payload)})
	return nil
}

// Backup guarda um blob corrompido em uma chave própria antes que a próxima gravação o sobrescreva.
func (r *Repository) Backup(ctx context.Context, raw string) (string, error) {
	backupKey := fmt.Sprintf("%s.corrompido.%d", r.Key, time.Now().Unix())

	ctxTimeout, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.Store.Set(ctxTimeout, backupKey, raw); err != nil {
		return "", apperror.NewStoreError("Falha ao salvar cópia dos dados corrompidos", err)
	}
	return backupKey, nil
}
