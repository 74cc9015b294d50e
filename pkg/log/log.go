// Package log encapsula o logrus com ID de correlação por requisição
package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields são os campos estruturados de uma linha de log
type Fields map[string]any

// Logger é o subconjunto do logrus usado pela aplicação
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Errorf(format string, args ...any)
}

type correlationKey struct{}

// CorrelationIDField é o campo que carrega o ID de correlação
const CorrelationIDField = "correlation_id"

// entry reaproveita os métodos de nível do logrus.Entry
type entry struct {
	*logrus.Entry
}

// L é o logger raiz, sem campos
var L Logger = entry{logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment indica ambiente de desenvolvimento (APP_ENV vazio, development ou dev)
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

func (e entry) WithField(key string, value any) Logger {
	return e.WithFields(Fields{key: value})
}

// WithFields anexa os campos; em desenvolvimento só os campos de depuração são mantidos
func (e entry) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	dev := IsDevelopment()
	for key, value := range fields {
		if dev && !debugField(key) {
			continue
		}
		kept[key] = value
	}
	if len(kept) == 0 {
		return e
	}
	return entry{e.Entry.WithFields(kept)}
}

func (e entry) WithError(err error) Logger {
	return entry{e.Entry.WithError(err)}
}

var debugFields = map[string]struct{}{
	CorrelationIDField: {}, "method": {}, "path": {}, "status_code": {},
	"duration_ms": {}, "error": {}, "removed": {}, "stack_trace": {},
}

var debugPrefixes = []string{"report_", "file_", "client_", "forecast_"}

func debugField(key string) bool {
	if _, ok := debugFields[key]; ok {
		return true
	}
	for _, prefix := range debugPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}

// NewCorrelationID gera um ID de correlação e o guarda no contexto
func NewCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, correlationKey{}, id), id
}

// CorrelationID devolve o ID de correlação do contexto, ou vazio
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey{}).(string)
	return id
}

// ForContext devolve o logger raiz com o ID de correlação do contexto, se houver
func ForContext(ctx context.Context) Logger {
	if id := CorrelationID(ctx); id != "" {
		return L.WithField(CorrelationIDField, id)
	}
	return L
}
