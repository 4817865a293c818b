package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore é a implementação de Store (e Counter) sobre Redis.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore cria o cliente Redis e testa a conexão com um PING.
// Ao contrário de um cache, aqui o Redis guarda o dado de verdade: falha no PING é erro.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr, // Endereço do Redis (e.g., "localhost:6379")
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("não foi possível conectar ao Redis em %s: %w", addr, err)
	}

	return &RedisStore{rdb: rdb}, nil
}

// Get recupera o valor associado a uma chave.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set grava o valor sem expiração.
func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

// Delete remove uma chave (DEL não falha se a chave não existir).
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

// Incr incrementa o contador; a janela de expiração começa no primeiro incremento.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := s.rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// Close encerra o pool de conexões.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
