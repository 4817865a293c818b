package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ondulado/internal/pkg/kvstore"
)

// Config armazena todas as configurações do serviço de estoque de ondulados.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Armazenamento chave-valor (sqlite, postgres, redis ou memory)
	StoreDriver  string
	SQLitePath   string
	DatabaseURL  string
	RedisAddr    string
	StoreKey     string
	StoreTimeout time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente (o .env já foi carregado pelo main).
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		// 1. Geral
		Port:        v.GetString("PORT"),
		Environment: v.GetString("ENV"),
		LogLevel:    strings.ToLower(v.GetString("LOG_LEVEL")),

		// 2. Armazenamento
		StoreDriver:  strings.ToLower(v.GetString("STORE_DRIVER")),
		SQLitePath:   v.GetString("SQLITE_PATH"),
		DatabaseURL:  v.GetString("DATABASE_URL"),
		RedisAddr:    v.GetString("REDIS_ADDR"),
		StoreKey:     v.GetString("STORE_KEY"),
		StoreTimeout: time.Duration(v.GetInt("STORE_TIMEOUT_SEC")) * time.Second, // 5s padrão

		// 3. Rate Limiting
		RateLimitMaxRequests: v.GetInt("RATE_LIMIT_MAX_REQUESTS"),
		RateLimitPeriod:      time.Duration(v.GetInt("RATE_LIMIT_PERIOD_MIN")) * time.Minute, // 1 min padrão
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", kvstore.DriverSQLite)
	v.SetDefault("SQLITE_PATH", "data/ondulado.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("STORE_KEY", "ondulados")
	v.SetDefault("STORE_TIMEOUT_SEC", 5)
	v.SetDefault("RATE_LIMIT_MAX_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_PERIOD_MIN", 1)
}

// Validate confere as combinações que o serviço não consegue corrigir sozinho.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case kvstore.DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("❌ Erro de Configuração: SQLITE_PATH deve ser definido para STORE_DRIVER=%s", c.StoreDriver)
		}
	case kvstore.DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("❌ Erro de Configuração: DATABASE_URL deve ser definido para STORE_DRIVER=%s", c.StoreDriver)
		}
	case kvstore.DriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("❌ Erro de Configuração: REDIS_ADDR deve ser definido para STORE_DRIVER=%s", c.StoreDriver)
		}
	case kvstore.DriverMemory:
	default:
		return fmt.Errorf("❌ Erro de Configuração: STORE_DRIVER %q desconhecido (use sqlite, postgres, redis ou memory)", c.StoreDriver)
	}

	if c.StoreKey == "" {
		return fmt.Errorf("❌ Erro de Configuração: STORE_KEY não pode ser vazio")
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("❌ Erro de Configuração: STORE_TIMEOUT_SEC deve ser positivo")
	}
	if c.RateLimitMaxRequests <= 0 || c.RateLimitPeriod <= 0 {
		return fmt.Errorf("❌ Erro de Configuração: RATE_LIMIT_MAX_REQUESTS e RATE_LIMIT_PERIOD_MIN devem ser positivos")
	}
	return nil
}

// StoreOptions traduz a configuração para a abertura do armazenamento.
func (c *Config) StoreOptions() kvstore.Options {
	return kvstore.Options{
		Driver:      c.StoreDriver,
		SQLitePath:  c.SQLitePath,
		DatabaseURL: c.DatabaseURL,
		RedisAddr:   c.RedisAddr,
	}
}
