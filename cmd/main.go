package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	// Nossos pacotes de infraestrutura e utilitários
	"ondulado/config"
	"ondulado/internal/pkg/kvstore"
	"ondulado/internal/pkg/logger"
	"ondulado/internal/pkg/metrics"
	"ondulado/internal/pkg/middleware"
	"ondulado/internal/pkg/validation"

	// Camadas para Injeção de Dependências
	"ondulado/internal/api/editor"
	"ondulado/internal/api/ondulado"
	"ondulado/internal/api/router"
	"ondulado/internal/repository/onduladorepo"
	"ondulado/internal/service/editorservice"
	"ondulado/internal/service/onduladoservice"
)

// @title Controle de Estoque de Ondulado API
// @version 1.0
// @description Cadastro de chapas de papelão ondulado: listagem, criação, edição e exclusão.
// @BasePath /v1
func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço de estoque de ondulados...")
	if err := godotenv.Load(); err != nil {
		// As variáveis podem estar no ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	log := logger.New(os.Stdout, cfg.Environment, cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"store_driver": cfg.StoreDriver, "env": cfg.Environment})

	// 2. Armazenamento chave-valor
	ctx := context.Background()
	store, err := kvstore.Open(ctx, cfg.StoreOptions())
	if err != nil {
		log.Fatal("Falha ao abrir o armazenamento.", err)
	}
	defer store.Close()
	log.Info("Armazenamento aberto.", map[string]interface{}{"driver": cfg.StoreDriver})

	// O rate limiter usa o próprio backend quando ele suporta contadores (redis, memory).
	counter, ok := store.(kvstore.Counter)
	if !ok {
		counter = kvstore.NewMemoryStore()
	}

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	onduladoRepo := onduladorepo.NewRepository(store, cfg.StoreKey, cfg.StoreTimeout, log)
	log.Debug("Repositório de Ondulado inicializado.", nil)

	onduladoSvc := onduladoservice.NewService(onduladoRepo, log, onduladoservice.WithMetrics(recorder))
	if err := onduladoSvc.Load(ctx); err != nil {
		log.Fatal("Falha ao carregar a coleção de ondulados.", err)
	}
	log.Debug("Serviço de Ondulado inicializado.", nil)

	validator := validation.New()
	editorSvc := editorservice.NewService(onduladoSvc, validator, log)
	log.Debug("Editor inicializado.", nil)

	handler := router.NewRouter(
		router.Handlers{
			Ondulados: ondulado.NewHandler(onduladoSvc, validator, log),
			Editor:    editor.NewHandler(editorSvc, log),
			Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		},
		middleware.Recovery(log),
		middleware.Logging(log),
		middleware.RateLimiter(counter, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, log),
	)

	// 4. Servidor
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
