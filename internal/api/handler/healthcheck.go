package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-insight-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insight-api/pkg/log"
)

// HealthcheckHandler responde à verificação de liveness
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: erro ao responder")
		}
	})
}

// APITest confirma que a API está no ar
func APITest() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"message": "API is working",
		}, log.ForContext(r.Context()))
	})
}

// NotFound responde às rotas inexistentes com o envelope de erro da API
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Route not found", map[string]string{
			"method": r.Method,
			"path":   r.URL.Path,
		})
	})
}
