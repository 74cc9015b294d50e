package insighting

import (
	"context"
	"io"

	"github.com/vfg2006/sales-insight-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

// TableLoader lê o arquivo enviado como tabela bruta
type TableLoader interface {
	Load(filename string, r io.Reader) (*domain.RawTable, error)
}

// ReportRenderer gera os artefatos (gráficos, PDF e CSV) de um relatório
type ReportRenderer interface {
	Render(ctx context.Context, report *domain.InsightReport, dir string) (*domain.ReportArtifacts, error)
}

// ArtifactStore guarda os artefatos gerados e aponta para os mais recentes
type ArtifactStore interface {
	NewReportDir(reportID string) (string, error)
	Publish(artifacts *domain.ReportArtifacts)
	Latest(kind domain.ArtifactKind) (string, bool)
}

// Insighter é o caso de uso de análise de exportações de vendas
type Insighter interface {
	// ProcessUpload executa o pipeline completo e gera os artefatos do relatório
	ProcessUpload(ctx context.Context, filename string, r io.Reader) (*domain.InsightReport, error)

	// PreviewUpload retorna as primeiras linhas limpas do arquivo
	PreviewUpload(ctx context.Context, filename string, r io.Reader) (*domain.PreviewResponse, error)

	// Forecast projeta a receita a partir de uma série mensal informada
	Forecast(ctx context.Context, monthlyRevenue map[string]float64, periods int) ([]domain.ForecastRecord, error)

	// LatestArtifact retorna o caminho do último artefato gerado do tipo
	LatestArtifact(kind domain.ArtifactKind) (string, bool)
}
