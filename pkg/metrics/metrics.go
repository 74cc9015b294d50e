// Package metrics expõe as métricas Prometheus da aplicação
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sales_insight"

// Resultados de um upload
const (
	StatusSuccess = "success"
	StatusInvalid = "invalid"
	StatusEmpty   = "empty"
	StatusFailed  = "failed"
)

// Motivos de descarte de linhas na limpeza
const (
	ReasonMissing = "missing"
	ReasonDate    = "invalid_date"
	ReasonRevenue = "invalid_revenue"
)

var (
	// UploadsTotal conta os uploads processados por resultado
	UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Uploads processed, by result.",
	}, []string{"status"})

	// DroppedRowsTotal conta as linhas descartadas na limpeza por motivo
	DroppedRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dropped_rows_total",
		Help:      "Rows dropped while cleaning uploads, by reason.",
	}, []string{"reason"})

	// PipelineDuration mede o tempo do pipeline de análise, sem a geração de relatórios
	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "pipeline_duration_seconds",
		Help:      "Time spent cleaning, aggregating and forecasting an upload.",
		Buckets:   prometheus.DefBuckets,
	})

	// ArtifactsSweptTotal conta os diretórios de relatório removidos pela retenção
	ArtifactsSweptTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "artifacts_swept_total",
		Help:      "Report directories removed by the retention job.",
	})
)

// ObserveDropped registra as linhas descartadas de uma limpeza
func ObserveDropped(missing, date, revenue int) {
	DroppedRowsTotal.WithLabelValues(ReasonMissing).Add(float64(missing))
	DroppedRowsTotal.WithLabelValues(ReasonDate).Add(float64(date))
	DroppedRowsTotal.WithLabelValues(ReasonRevenue).Add(float64(revenue))
}

// Handler serve as métricas no formato de exposição do Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
