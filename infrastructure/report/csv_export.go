package report

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/pkg/utils"
)

// WriteCSV exporta as métricas do relatório em seções separadas por linha em branco
func WriteCSV(w io.Writer, report *domain.InsightReport) error {
	writer := csv.NewWriter(w)

	rows := [][]string{
		{"Metric", "Value"},
		{"Total Revenue", utils.FormatMoney(report.TotalRevenue)},
		{"Average Order Value", utils.FormatMoney(report.AvgOrderValue)},
		{"Top Selling Product", report.TopProduct},
		{},
		{"Month", "Revenue", "Growth %"},
	}

	for _, month := range report.Series() {
		growth := ""
		if g, ok := report.MonthlyGrowth[month.Month]; ok && g != 0 {
			growth = strconv.FormatFloat(g, 'f', -1, 64) + "%"
		}
		rows = append(rows, []string{month.Month, utils.FormatMoney(month.Revenue), growth})
	}

	rows = append(rows, []string{}, []string{"Product", "Revenue"})
	for _, product := range productsByRevenue(report.ProductRevenue) {
		rows = append(rows, []string{product, utils.FormatMoney(report.ProductRevenue[product])})
	}

	if len(report.Forecast) > 0 {
		rows = append(rows, []string{}, []string{"Forecast Month", "Forecast", "Lower Bound", "Upper Bound"})
		for _, f := range report.Forecast {
			rows = append(rows, []string{
				f.Month,
				utils.FormatMoney(f.Forecast),
				utils.FormatMoney(f.LowerBound),
				utils.FormatMoney(f.UpperBound),
			})
		}
	}

	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrap(err, "csv export")
	}
	return nil
}

// WriteCSVFile grava a exportação CSV em disco
func WriteCSVFile(report *domain.InsightReport, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "csv export: create %s", path)
	}

	if err := WriteCSV(file, report); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// productsByRevenue ordena os produtos pela receita, do maior para o menor
func productsByRevenue(revenue map[string]float64) []string {
	products := make([]string, 0, len(revenue))
	for product := range revenue {
		products = append(products, product)
	}
	sort.Strings(products)
	sort.SliceStable(products, func(i, j int) bool {
		return revenue[products[i]] > revenue[products[j]]
	})
	return products
}
