package kvstore

import (
	"context"
	"errors"
	"time"
)

// Store define o contrato de um armazenamento chave-valor local.
// O repositório de ondulados depende apenas desta interface; o backend é escolhido na configuração.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Counter é implementado pelos backends que suportam contadores com janela de expiração
// (usado pelo rate limiter).
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// ErrKeyNotFound é retornado quando a chave não existe no armazenamento.
var ErrKeyNotFound = errors.New("kvstore: chave não encontrada")
