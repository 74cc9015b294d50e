package handler

import (
	"net/http"

	"github.com/vfg2006/sales-insight-api/internal/api/handler/router"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insight-api/pkg/metrics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/api/test",
			Method:  http.MethodGet,
			Handler: APITest(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

// Sales retorna as rotas de análise de exportações de vendas.
// limiter é aplicado apenas às rotas que recebem arquivos.
func Sales(service insighting.Insighter, opts UploadOptions, limiter func(http.Handler) http.Handler) []router.Route {
	uploadMiddlewares := []func(http.Handler) http.Handler{limiter}

	return []router.Route{
		{
			Path:        "/api/upload",
			Method:      http.MethodPost,
			Handler:     UploadFile(service, opts),
			Middlewares: uploadMiddlewares,
		},
		{
			Path:        "/api/preview",
			Method:      http.MethodPost,
			Handler:     PreviewFile(service, opts),
			Middlewares: uploadMiddlewares,
		},
		{
			Path:    "/api/forecast",
			Method:  http.MethodPost,
			Handler: Forecast(service),
		},
		{
			Path:    "/api/download-pdf",
			Method:  http.MethodGet,
			Handler: DownloadArtifact(service, domain.ArtifactPDF, "PDF not found"),
		},
		{
			Path:    "/api/download-csv",
			Method:  http.MethodGet,
			Handler: DownloadArtifact(service, domain.ArtifactCSV, "CSV not found"),
		},
	}
}
