package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "ondulado/docs" // registra a especificação OpenAPI servida em /swagger/
	"ondulado/internal/api/editor"
	"ondulado/internal/api/ondulado"
	"ondulado/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Ondulados *ondulado.Handler
	Editor    *editor.Handler
	// Metrics expõe o registro Prometheus; nil desliga a rota /metrics.
	Metrics http.Handler
}

// NewRouter configura e retorna o roteador HTTP principal, envolvido pelos middlewares dados
// (o primeiro é o mais externo).
func NewRouter(h Handlers, mws ...func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	// --- 1. Health Check e infraestrutura ---
	mux.HandleFunc("GET /ping", PingHandler)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// --- 2. Estoque de ondulados (v1) ---
	mux.HandleFunc("GET /v1/ondulados", h.Ondulados.ListOnduladosHandler)
	mux.HandleFunc("POST /v1/ondulados", h.Ondulados.CreateOnduladoHandler)
	mux.HandleFunc("GET /v1/ondulados/{id}", h.Ondulados.GetOnduladoHandler)
	mux.HandleFunc("PUT /v1/ondulados/{id}", h.Ondulados.UpdateOnduladoHandler)
	mux.HandleFunc("DELETE /v1/ondulados/{id}", h.Ondulados.DeleteOnduladoHandler)
	mux.HandleFunc("GET /v1/status", h.Ondulados.StatusHandler)

	// --- 3. Formulário de criação/edição ---
	mux.HandleFunc("GET /v1/editor", h.Editor.GetStateHandler)
	mux.HandleFunc("POST /v1/editor/novo", h.Editor.BeginCreateHandler)
	mux.HandleFunc("POST /v1/editor/editar/{id}", h.Editor.BeginEditHandler)
	mux.HandleFunc("PUT /v1/editor/formulario", h.Editor.FillHandler)
	mux.HandleFunc("POST /v1/editor/enviar", h.Editor.SubmitHandler)
	mux.HandleFunc("POST /v1/editor/cancelar", h.Editor.CancelHandler)

	return middleware.Chain(mux, mws...)
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
