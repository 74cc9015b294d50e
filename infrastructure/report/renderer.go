package report

import (
	"context"
	"path/filepath"
	"time"

	"github.com/vfg2006/sales-insight-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Nomes dos arquivos gerados dentro do diretório do relatório
const (
	RevenueChartFile  = "revenue_trend.png"
	ForecastChartFile = "forecast.png"
	ProductChartFile  = "product_revenue.png"
	PDFFile           = "sales_report.pdf"
	CSVFile           = "sales_report.csv"
)

// Renderer gera gráficos, PDF e CSV de um relatório
type Renderer struct {
	now func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{now: time.Now}
}

// Render grava os artefatos em dir. Os gráficos são gerados em paralelo
// e só depois o PDF é montado, já que ele embute as imagens.
func (r *Renderer) Render(ctx context.Context, report *domain.InsightReport, dir string) (*domain.ReportArtifacts, error) {
	paths := map[domain.ArtifactKind]string{
		domain.ArtifactRevenueChart: filepath.Join(dir, RevenueChartFile),
		domain.ArtifactProductChart: filepath.Join(dir, ProductChartFile),
		domain.ArtifactPDF:          filepath.Join(dir, PDFFile),
		domain.ArtifactCSV:          filepath.Join(dir, CSVFile),
	}
	hasForecast := len(report.Forecast) > 0
	if hasForecast {
		paths[domain.ArtifactForecastChart] = filepath.Join(dir, ForecastChartFile)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		return RevenueChart(report.Series(), paths[domain.ArtifactRevenueChart])
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		return ProductChart(report.ProductRevenue, paths[domain.ArtifactProductChart])
	})
	if hasForecast {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return ForecastChart(report.Series(), report.Forecast, paths[domain.ArtifactForecastChart])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	charts := PDFCharts{
		RevenuePath:  paths[domain.ArtifactRevenueChart],
		ProductPath:  paths[domain.ArtifactProductChart],
		ForecastPath: paths[domain.ArtifactForecastChart],
	}
	if err := WritePDF(report, charts, paths[domain.ArtifactPDF], r.now()); err != nil {
		return nil, err
	}
	if err := WriteCSVFile(report, paths[domain.ArtifactCSV]); err != nil {
		return nil, err
	}

	return &domain.ReportArtifacts{ReportID: report.ReportID, Paths: paths}, nil
}
