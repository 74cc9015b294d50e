package report

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/pkg/utils"
)

const (
	pageMargin = 10.0
	imageWidth = 190.0
)

// PDFCharts são as imagens incluídas no relatório PDF
type PDFCharts struct {
	RevenuePath  string
	ProductPath  string
	ForecastPath string
}

// WritePDF compõe o relatório de vendas com métricas, gráficos, previsão e dica
func WritePDF(report *domain.InsightReport, charts PDFCharts, path string, generatedAt time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Sales Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, "Generated on: "+generatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, "Total Revenue: "+utils.FormatMoney(report.TotalRevenue), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, "Average Order Value: "+utils.FormatMoney(report.AvgOrderValue), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, tr("Top Selling Product: "+report.TopProduct), "", 1, "", false, 0, "")
	if report.Insights != nil {
		pdf.CellFormat(0, 8, fmt.Sprintf("Overall Growth: %.2f%%", report.Insights.TotalGrowth), "", 1, "", false, 0, "")
		day := report.Insights.BiggestSalesDay
		pdf.CellFormat(0, 8, fmt.Sprintf("Biggest Sales Day: %s (%s)", day.Date, utils.FormatMoney(day.Revenue)), "", 1, "", false, 0, "")
	}

	if charts.RevenuePath != "" {
		section(pdf, "Monthly Revenue Trend")
		image(pdf, charts.RevenuePath)
	}

	if charts.ProductPath != "" {
		section(pdf, "Revenue by Product")
		image(pdf, charts.ProductPath)
	}

	if len(report.Forecast) > 0 {
		if charts.ForecastPath != "" {
			section(pdf, "Revenue Forecast")
			image(pdf, charts.ForecastPath)
		}
		forecastTable(pdf, report.Forecast)
	} else if report.ForecastError != "" {
		section(pdf, "Revenue Forecast")
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, report.ForecastError, "", "L", false)
	}

	if report.Insights != nil && report.Insights.SmartTip != "" {
		section(pdf, "Smart Tip")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 6, tr(report.Insights.SmartTip), "", "L", false)
	}

	if len(report.ValidationMessages) > 0 {
		section(pdf, "Data Validation")
		pdf.SetFont("Arial", "", 10)
		for _, message := range report.ValidationMessages {
			pdf.MultiCell(0, 6, tr("- "+message), "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "pdf: write %s", path)
	}
	return nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "", false, 0, "")
}

// image insere a imagem na largura útil, quebrando a página se não couber
func image(pdf *fpdf.Fpdf, path string) {
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	info := pdf.RegisterImageOptions(path, opts)
	if info == nil {
		return
	}

	height := imageWidth * info.Height() / info.Width()
	_, pageHeight := pdf.GetPageSize()
	if pdf.GetY()+height > pageHeight-pageMargin {
		pdf.AddPage()
	}

	y := pdf.GetY()
	pdf.ImageOptions(path, pageMargin, y, imageWidth, height, false, opts, 0, "")
	pdf.SetY(y + height + 2)
}

func forecastTable(pdf *fpdf.Fpdf, forecast []domain.ForecastRecord) {
	headers := []string{"Month", "Forecast", "Lower Bound", "Upper Bound"}
	width := imageWidth / float64(len(headers))

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for _, header := range headers {
		pdf.CellFormat(width, 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for _, f := range forecast {
		cells := []string{f.Month, utils.FormatMoney(f.Forecast), utils.FormatMoney(f.LowerBound), utils.FormatMoney(f.UpperBound)}
		for _, cell := range cells {
			pdf.CellFormat(width, 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
