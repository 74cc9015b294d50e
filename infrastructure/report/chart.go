// Package report gera os artefatos consumidos pelo usuário: gráficos, PDF e CSV
package report

import (
	"image/color"
	"slices"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/pkg/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Dimensões dos gráficos
const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

var (
	barColor      = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	forecastColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	bandColor     = color.RGBA{R: 214, G: 39, B: 40, A: 50}
)

// RevenueChart desenha o gráfico de barras da receita mensal em PNG
func RevenueChart(series domain.MonthlySeries, path string) error {
	p := plot.New()
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Revenue ($)"

	if len(series) == 0 {
		p.Title.Text = "Monthly Revenue Trend (No Data)"
		return save(p, path)
	}
	p.Title.Text = "Monthly Revenue Trend"

	values := make(plotter.Values, len(series))
	labels := make([]string, len(series))
	points := make(plotter.XYs, len(series))
	texts := make([]string, len(series))

	maxRevenue := 0.0
	for _, m := range series {
		maxRevenue = max(maxRevenue, m.Revenue)
	}

	for i, m := range series {
		values[i] = m.Revenue
		labels[i] = monthLabel(m.Month)
		points[i] = plotter.XY{X: float64(i), Y: m.Revenue + maxRevenue*0.02}
		texts[i] = utils.FormatMoney(m.Revenue)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return errors.Wrap(err, "chart: revenue bars")
	}
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: texts})
	if err != nil {
		return errors.Wrap(err, "chart: revenue labels")
	}
	for i := range valueLabels.TextStyle {
		valueLabels.TextStyle[i].XAlign = draw.XCenter
		valueLabels.TextStyle[i].Font.Size = vg.Points(9)
	}

	p.Add(plotter.NewGrid(), bars, valueLabels)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.785
	p.X.Tick.Label.XAlign = draw.XRight

	return save(p, path)
}

// ProductChart desenha a receita por produto em barras horizontais, a maior no topo
func ProductChart(productRevenue map[string]float64, path string) error {
	p := plot.New()
	p.X.Label.Text = "Revenue ($)"

	if len(productRevenue) == 0 {
		p.Title.Text = "Revenue by Product (No Data)"
		return save(p, path)
	}
	p.Title.Text = "Revenue by Product"

	products := productsByRevenue(productRevenue)
	slices.Reverse(products)

	values := make(plotter.Values, len(products))
	points := make(plotter.XYs, len(products))
	texts := make([]string, len(products))

	maxRevenue := productRevenue[products[len(products)-1]]
	for i, product := range products {
		revenue := productRevenue[product]
		values[i] = revenue
		points[i] = plotter.XY{X: revenue + maxRevenue*0.01, Y: float64(i)}
		texts[i] = utils.FormatMoney(revenue)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return errors.Wrap(err, "chart: product bars")
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: texts})
	if err != nil {
		return errors.Wrap(err, "chart: product labels")
	}
	for i := range valueLabels.TextStyle {
		valueLabels.TextStyle[i].YAlign = draw.YCenter
		valueLabels.TextStyle[i].Font.Size = vg.Points(9)
	}

	p.Add(plotter.NewGrid(), bars, valueLabels)
	p.NominalY(products...)
	// espaço para o rótulo da maior barra
	if maxRevenue > 0 {
		p.X.Max = maxRevenue * 1.15
	}

	return save(p, path)
}

// ForecastChart desenha a receita histórica, a previsão e a faixa de confiança de 95%
func ForecastChart(series domain.MonthlySeries, forecast []domain.ForecastRecord, path string) error {
	p := plot.New()
	p.Title.Text = "Revenue Forecast with Confidence Intervals"
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Revenue"
	p.Add(plotter.NewGrid())

	labels := make([]string, 0, len(series)+len(forecast))

	if len(series) > 0 {
		history := make(plotter.XYs, len(series))
		for i, m := range series {
			history[i] = plotter.XY{X: float64(i), Y: m.Revenue}
			labels = append(labels, m.Month)
		}

		line, points, err := plotter.NewLinePoints(history)
		if err != nil {
			return errors.Wrap(err, "chart: history line")
		}
		line.Color = barColor
		points.Color = barColor
		p.Add(line, points)
		p.Legend.Add("Historical Revenue", line, points)
	}

	if len(forecast) > 0 {
		offset := len(series)
		predicted := make(plotter.XYs, len(forecast))
		band := make(plotter.XYs, 0, 2*len(forecast))

		for i, f := range forecast {
			x := float64(offset + i)
			predicted[i] = plotter.XY{X: x, Y: f.Forecast}
			band = append(band, plotter.XY{X: x, Y: f.LowerBound})
			labels = append(labels, f.Month)
		}
		for i := len(forecast) - 1; i >= 0; i-- {
			band = append(band, plotter.XY{X: float64(offset + i), Y: forecast[i].UpperBound})
		}

		polygon, err := plotter.NewPolygon(band)
		if err != nil {
			return errors.Wrap(err, "chart: confidence band")
		}
		polygon.Color = bandColor
		polygon.LineStyle.Width = vg.Length(0)

		line, points, err := plotter.NewLinePoints(predicted)
		if err != nil {
			return errors.Wrap(err, "chart: forecast line")
		}
		line.Color = forecastColor
		line.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		points.Color = forecastColor

		p.Add(polygon, line, points)
		p.Legend.Add("Forecast", line, points)
		p.Legend.Add("95% Confidence Interval", polygon)
	}

	if len(labels) > 0 {
		p.NominalX(labels...)
		p.X.Tick.Label.Rotation = 0.785
		p.X.Tick.Label.XAlign = draw.XRight
	}
	p.Legend.Top = true

	return save(p, path)
}

func save(p *plot.Plot, path string) error {
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return errors.Wrapf(err, "chart: save %s", path)
	}
	return nil
}

// monthLabel formata YYYY-MM como "Jan 2023"; chaves inesperadas são mantidas
func monthLabel(key string) string {
	month, err := utils.ParseYearMonth(key)
	if err != nil {
		return key
	}
	return month.Format("Jan 2006")
}
