package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/vfg2006/sales-insight-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insight-api/pkg/log"
)

// CorrelationIDHeader devolve ao cliente o ID de correlação da requisição
const CorrelationIDHeader = "X-Correlation-ID"

// Duração acima da qual a requisição é registrada como lenta
const slowRequestThreshold = 2 * time.Second

// LoggingMiddleware atribui o ID de correlação e registra início e fim de cada requisição
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.NewCorrelationID(r.Context())
			r = r.WithContext(ctx)
			w.Header().Set(CorrelationIDHeader, correlationID)

			logger := log.ForContext(ctx).WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			logger.WithFields(log.Fields{
				"remote_addr":    r.RemoteAddr,
				"query":          r.URL.RawQuery,
				"user_agent":     r.UserAgent(),
				"content_length": r.ContentLength,
			}).Info("→ requisição recebida")

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(recorder, r)

			logCompletion(logger, recorder.status, time.Since(start))
		})
	}
}

// logCompletion registra o fim da requisição no nível correspondente ao status
func logCompletion(logger log.Logger, status int, elapsed time.Duration) {
	logger = logger.WithFields(log.Fields{
		"status_code": status,
		"duration_ms": elapsed.Milliseconds(),
	})

	message := fmt.Sprintf("← concluída em %s", formatDuration(elapsed))
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error(message)
	case status >= http.StatusBadRequest:
		logger.Warn(message)
	default:
		logger.Info(message)
	}

	if elapsed > slowRequestThreshold {
		logger.Warnf("requisição lenta: acima de %s", slowRequestThreshold)
	}
}

// formatDuration formata a duração na maior unidade inteira
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Unwrap expõe o writer original para o http.ResponseController
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// LogPanicMiddleware converte um panic do handler em 500 com o envelope de erro da API
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       recovered,
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(debug.Stack()),
				}).Error("panic ao processar a requisição")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Internal server error", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
