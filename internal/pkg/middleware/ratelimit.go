package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"ondulado/internal/pkg/kvstore"
	"ondulado/internal/pkg/logger"
)

// RateLimiter limita cada IP a limit requisições por janela, contando no kvstore.Counter.
// Se o contador falhar a requisição segue: o limite não pode derrubar a API.
func RateLimiter(counter kvstore.Counter, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip

			count, err := counter.Incr(r.Context(), key, window)
			if err != nil {
				log.Error("Falha ao consultar contador de requisições.", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				log.Warn("Limite de requisições excedido.", map[string]interface{}{"ip": ip, "count": count})
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				http.Error(w, "Limite de requisições excedido", http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
