package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insight-api/internal/domain"
)

func sampleReport() *domain.InsightReport {
	return &domain.InsightReport{
		ReportID:       "abc123",
		TotalRevenue:   450,
		AvgOrderValue:  150,
		TopProduct:     "Widget",
		MonthlyRevenue: map[string]float64{"2023-03": 200, "2023-01": 100, "2023-02": 150},
		MonthlyGrowth:  map[string]float64{"2023-01": 0, "2023-02": 50, "2023-03": 33.33},
		ProductRevenue: map[string]float64{"Gadget": 150, "Widget": 300},
		Insights: &domain.AdvancedInsights{
			TotalGrowth:     100,
			BiggestSalesDay: domain.SalesDay{Date: "2023-03-10", Revenue: 120},
			SmartTip:        "Products showing strong growth: Widget. Consider increasing their stock.",
		},
		Forecast: []domain.ForecastRecord{
			{Month: "2023-04", Forecast: 250, LowerBound: 240, UpperBound: 1260.5},
		},
		ValidationMessages: []string{"Date format detected: YYYY-MM-DD (2023-01-31)"},
	}
}

func TestWriteCSV(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *domain.InsightReport
		expected string
	}{
		{
			name:  "deve exportar métricas, meses, produtos e previsão",
			setup: sampleReport,
			expected: "Metric,Value\n" +
				"Total Revenue,$450.00\n" +
				"Average Order Value,$150.00\n" +
				"Top Selling Product,Widget\n" +
				"\n" +
				"Month,Revenue,Growth %\n" +
				"2023-01,$100.00,\n" +
				"2023-02,$150.00,50%\n" +
				"2023-03,$200.00,33.33%\n" +
				"\n" +
				"Product,Revenue\n" +
				"Widget,$300.00\n" +
				"Gadget,$150.00\n" +
				"\n" +
				"Forecast Month,Forecast,Lower Bound,Upper Bound\n" +
				"2023-04,$250.00,$240.00,\"$1,260.50\"\n",
		},
		{
			name: "deve omitir a seção de previsão quando não houver previsão",
			setup: func() *domain.InsightReport {
				report := sampleReport()
				report.Forecast = []domain.ForecastRecord{}
				report.MonthlyRevenue = map[string]float64{"2023-01": 100}
				report.MonthlyGrowth = map[string]float64{"2023-01": 0}
				report.ProductRevenue = map[string]float64{"Widget": 50, "Gadget": 50}
				return report
			},
			expected: "Metric,Value\n" +
				"Total Revenue,$450.00\n" +
				"Average Order Value,$150.00\n" +
				"Top Selling Product,Widget\n" +
				"\n" +
				"Month,Revenue,Growth %\n" +
				"2023-01,$100.00,\n" +
				"\n" +
				"Product,Revenue\n" +
				"Gadget,$50.00\n" +
				"Widget,$50.00\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteCSV(&buf, tt.setup()))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan 2023", monthLabel("2023-01"))
	assert.Equal(t, "Dec 2024", monthLabel("2024-12"))
	assert.Equal(t, "unknown", monthLabel("unknown"))
}

func TestProductChart(t *testing.T) {
	tests := []struct {
		name           string
		productRevenue map[string]float64
	}{
		{
			name:           "deve desenhar produtos ordenados pela receita",
			productRevenue: map[string]float64{"Gadget": 150, "Widget": 300, "Gizmo": 75.5},
		},
		{
			name:           "deve desenhar um único produto",
			productRevenue: map[string]float64{"Widget": 300},
		},
		{
			name:           "deve desenhar produtos com receita zero",
			productRevenue: map[string]float64{"Widget": 0, "Gadget": 0},
		},
		{
			name:           "deve desenhar o gráfico sem dados",
			productRevenue: map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ProductChartFile)

			require.NoError(t, ProductChart(tt.productRevenue, path))

			png := assertNonEmptyFile(t, path)
			assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
		})
	}
}

func TestWritePDF_ComGraficoDeProdutos(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()

	charts := PDFCharts{
		RevenuePath: filepath.Join(dir, RevenueChartFile),
		ProductPath: filepath.Join(dir, ProductChartFile),
	}
	require.NoError(t, RevenueChart(report.Series(), charts.RevenuePath))
	require.NoError(t, ProductChart(report.ProductRevenue, charts.ProductPath))

	withProducts := filepath.Join(dir, "with_products.pdf")
	require.NoError(t, WritePDF(report, charts, withProducts, time.Now()))

	charts.ProductPath = ""
	withoutProducts := filepath.Join(dir, "without_products.pdf")
	require.NoError(t, WritePDF(report, charts, withoutProducts, time.Now()))

	with := assertNonEmptyFile(t, withProducts)
	without := assertNonEmptyFile(t, withoutProducts)
	assert.True(t, bytes.HasPrefix(with, []byte("%PDF")))
	assert.Greater(t, len(with), len(without))
}

func assertNonEmptyFile(t *testing.T, path string) []byte {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, content)
	return content
}

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *domain.InsightReport
		validate func(t *testing.T, dir string, artifacts *domain.ReportArtifacts)
	}{
		{
			name:  "deve gerar gráficos, PDF e CSV com previsão",
			setup: sampleReport,
			validate: func(t *testing.T, dir string, artifacts *domain.ReportArtifacts) {
				assert.Equal(t, "abc123", artifacts.ReportID)
				assert.Equal(t, filepath.Join(dir, PDFFile), artifacts.Paths[domain.ArtifactPDF])
				assert.Equal(t, filepath.Join(dir, CSVFile), artifacts.Paths[domain.ArtifactCSV])
				assert.Equal(t, filepath.Join(dir, RevenueChartFile), artifacts.Paths[domain.ArtifactRevenueChart])
				assert.Equal(t, filepath.Join(dir, ForecastChartFile), artifacts.Paths[domain.ArtifactForecastChart])
				assert.Equal(t, filepath.Join(dir, ProductChartFile), artifacts.Paths[domain.ArtifactProductChart])

				pdf := assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactPDF])
				assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

				png := assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactRevenueChart])
				assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
				assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactForecastChart])

				products := assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactProductChart])
				assert.True(t, bytes.HasPrefix(products, []byte("\x89PNG")))

				csv := assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactCSV])
				assert.Contains(t, string(csv), "Forecast Month")
			},
		},
		{
			name: "deve pular o gráfico de previsão quando não houver previsão",
			setup: func() *domain.InsightReport {
				report := sampleReport()
				report.Forecast = []domain.ForecastRecord{}
				report.ForecastError = "need at least 3 months of data for forecasting"
				return report
			},
			validate: func(t *testing.T, dir string, artifacts *domain.ReportArtifacts) {
				assert.NotContains(t, artifacts.Paths, domain.ArtifactForecastChart)
				assert.NoFileExists(t, filepath.Join(dir, ForecastChartFile))
				assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactPDF])
				assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactRevenueChart])
			},
		},
		{
			name: "deve gerar os artefatos para série vazia",
			setup: func() *domain.InsightReport {
				return &domain.InsightReport{
					MonthlyRevenue: map[string]float64{},
					ProductRevenue: map[string]float64{},
					Forecast:       []domain.ForecastRecord{},
				}
			},
			validate: func(t *testing.T, dir string, artifacts *domain.ReportArtifacts) {
				assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactRevenueChart])
				assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactProductChart])
				assertNonEmptyFile(t, artifacts.Paths[domain.ArtifactPDF])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			renderer := &Renderer{now: func() time.Time { return time.Date(2024, 1, 2, 15, 4, 0, 0, time.UTC) }}

			artifacts, err := renderer.Render(context.Background(), tt.setup(), dir)
			require.NoError(t, err)
			tt.validate(t, dir, artifacts)
		})
	}
}

func TestRenderer_RenderContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRenderer().Render(ctx, sampleReport(), t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}
