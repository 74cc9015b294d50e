package insighting

import (
	"context"
	"errors"
	"io"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/sales-insight-api/internal/config"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/internal/usecases/cleaning"
	"github.com/vfg2006/sales-insight-api/internal/usecases/forecasting"
	"github.com/vfg2006/sales-insight-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-insight-api/internal/usecases/trending"
	"github.com/vfg2006/sales-insight-api/pkg/log"
	telemetry "github.com/vfg2006/sales-insight-api/pkg/metrics"
	"github.com/vfg2006/sales-insight-api/pkg/utils"
)

// Service orquestra limpeza, métricas, tendências e previsão de um upload
type Service struct {
	loader      TableLoader
	renderer    ReportRenderer
	store       ArtifactStore
	periods     int
	previewRows int
	newID       func() (string, error)
}

// NewService cria uma nova instância do serviço de insights
func NewService(cfg *config.Config, loader TableLoader, renderer ReportRenderer, store ArtifactStore) Insighter {
	return &Service{
		loader:      loader,
		renderer:    renderer,
		store:       store,
		periods:     cfg.Analysis.ForecastPeriods,
		previewRows: cfg.Analysis.PreviewRows,
		newID:       utils.GenerateID,
	}
}

// ProcessUpload executa o pipeline sobre o arquivo e gera os artefatos do relatório.
// A falta de meses para a previsão não interrompe o upload: o relatório segue
// sem previsão e com a mensagem em ForecastError.
func (s *Service) ProcessUpload(ctx context.Context, filename string, r io.Reader) (*domain.InsightReport, error) {
	logger := log.ForContext(ctx).WithField("file_name", filename)

	started := time.Now()
	cleaned, err := s.clean(filename, r)
	if err != nil {
		telemetry.UploadsTotal.WithLabelValues(uploadStatus(err)).Inc()
		logger.WithError(err).Warn("insighting: falha ao ler o arquivo")
		return nil, err
	}

	report, err := s.analyze(cleaned)
	if err != nil {
		telemetry.UploadsTotal.WithLabelValues(uploadStatus(err)).Inc()
		logger.WithError(err).Warn("insighting: nenhum registro válido após a limpeza")
		return nil, err
	}

	forecast, err := forecasting.Forecast(report.Series(), s.periods)
	switch {
	case err == nil:
		report.Forecast = forecast
	case errors.Is(err, domain.ErrInsufficientData):
		report.ForecastError = err.Error()
		logger.WithField("report_months", len(report.MonthlyRevenue)).Info("insighting: previsão não gerada, meses insuficientes")
	default:
		telemetry.UploadsTotal.WithLabelValues(telemetry.StatusFailed).Inc()
		return nil, err
	}
	telemetry.PipelineDuration.Observe(time.Since(started).Seconds())

	report.ReportID, err = s.newID()
	if err != nil {
		telemetry.UploadsTotal.WithLabelValues(telemetry.StatusFailed).Inc()
		return nil, pkgerrors.Wrap(err, "generate report id")
	}

	artifacts, err := s.render(ctx, report)
	if err != nil {
		telemetry.UploadsTotal.WithLabelValues(telemetry.StatusFailed).Inc()
		logger.WithError(err).Error("insighting: falha ao gerar os artefatos do relatório")
		return nil, err
	}
	s.store.Publish(artifacts)

	telemetry.UploadsTotal.WithLabelValues(telemetry.StatusSuccess).Inc()
	logger.WithFields(log.Fields{
		"report_id":     report.ReportID,
		"report_rows":   len(cleaned.Records),
		"report_months": len(report.MonthlyRevenue),
	}).Info("insighting: relatório gerado")

	return report, nil
}

// PreviewUpload limpa o arquivo e retorna as primeiras linhas válidas
func (s *Service) PreviewUpload(ctx context.Context, filename string, r io.Reader) (*domain.PreviewResponse, error) {
	cleaned, err := s.clean(filename, r)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("insighting: falha ao gerar pré-visualização")
		return nil, err
	}

	return &domain.PreviewResponse{
		Rows:               cleaning.Preview(cleaned.Records, s.previewRows),
		ValidationMessages: messagesOrEmpty(cleaned.ValidationMessages),
	}, nil
}

// Forecast projeta a receita dos próximos meses a partir de uma série mensal
func (s *Service) Forecast(ctx context.Context, monthlyRevenue map[string]float64, periods int) ([]domain.ForecastRecord, error) {
	if periods <= 0 {
		periods = s.periods
	}

	forecast, err := forecasting.Forecast(domain.MonthlySeriesFromMap(monthlyRevenue), periods)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("forecast_months", len(monthlyRevenue)).Info("insighting: previsão recusada")
		return nil, err
	}
	return forecast, nil
}

// LatestArtifact retorna o último artefato gerado do tipo, se existir
func (s *Service) LatestArtifact(kind domain.ArtifactKind) (string, bool) {
	return s.store.Latest(kind)
}

func (s *Service) clean(filename string, r io.Reader) (*cleaning.Result, error) {
	table, err := s.loader.Load(filename, r)
	if err != nil {
		return nil, err
	}

	cleaned, err := cleaning.Clean(table)
	if err != nil {
		return nil, err
	}
	telemetry.ObserveDropped(cleaned.DroppedMissing, cleaned.DroppedDate, cleaned.DroppedRevenue)

	return cleaned, nil
}

// analyze calcula métricas e tendências; um conjunto vazio é recusado antes das agregações
func (s *Service) analyze(cleaned *cleaning.Result) (*domain.InsightReport, error) {
	if len(cleaned.Records) == 0 {
		return nil, &domain.EmptyDatasetError{ValidationMessages: messagesOrEmpty(cleaned.ValidationMessages)}
	}

	summary := metrics.Summarize(cleaned.Records)
	insights, err := trending.Analyze(cleaned.Records)
	if err != nil {
		return nil, err
	}

	return domain.NewInsightReport(summary, insights, cleaned.ValidationMessages), nil
}

func (s *Service) render(ctx context.Context, report *domain.InsightReport) (*domain.ReportArtifacts, error) {
	dir, err := s.store.NewReportDir(report.ReportID)
	if err != nil {
		return nil, err
	}

	artifacts, err := s.renderer.Render(ctx, report, dir)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "render report %s", report.ReportID)
	}
	return artifacts, nil
}

func uploadStatus(err error) string {
	var formatErr *domain.FormatError
	var emptyErr *domain.EmptyDatasetError
	switch {
	case errors.As(err, &formatErr):
		return telemetry.StatusInvalid
	case errors.As(err, &emptyErr):
		return telemetry.StatusEmpty
	default:
		return telemetry.StatusFailed
	}
}

func messagesOrEmpty(messages []string) []string {
	if messages == nil {
		return []string{}
	}
	return messages
}
