// Package forecasting projeta a receita futura com uma regressão linear simples
package forecasting

import (
	"math"

	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/pkg/utils"
)

// DefaultPeriods é a quantidade padrão de meses previstos
const DefaultPeriods = 2

// ZScore95 é o valor crítico normal bicaudal de 95% (sem correção t de Student)
const ZScore95 = 1.96

// LinearModel é uma reta ajustada por mínimos quadrados ordinários
type LinearModel struct {
	Intercept float64
	Slope     float64
}

// Predict avalia a reta no índice x
func (m LinearModel) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// Fit ajusta a reta aos pontos (i, y[i]) com i = 0, 1, 2, ...
func Fit(y []float64) LinearModel {
	n := float64(len(y))
	if n == 0 {
		return LinearModel{}
	}

	meanX := (n - 1) / 2
	meanY := 0.0
	for _, v := range y {
		meanY += v
	}
	meanY /= n

	var sxy, sxx float64
	for i, v := range y {
		dx := float64(i) - meanX
		sxy += dx * (v - meanY)
		sxx += dx * dx
	}

	slope := 0.0
	if sxx > 0 {
		slope = sxy / sxx
	}

	return LinearModel{
		Intercept: meanY - slope*meanX,
		Slope:     slope,
	}
}

// StandardError é a raiz do erro quadrático médio dos resíduos dentro da amostra
func StandardError(model LinearModel, y []float64) float64 {
	if len(y) == 0 {
		return 0
	}

	var sse float64
	for i, v := range y {
		residual := v - model.Predict(float64(i))
		sse += residual * residual
	}
	return math.Sqrt(sse / float64(len(y)))
}

// Forecast projeta os próximos meses a partir da série mensal.
// Exige ao menos 3 meses distintos; periods <= 0 usa DefaultPeriods.
func Forecast(series domain.MonthlySeries, periods int) ([]domain.ForecastRecord, error) {
	if periods <= 0 {
		periods = DefaultPeriods
	}

	ordered, err := normalizeSeries(series)
	if err != nil {
		return nil, err
	}

	if len(ordered) < domain.MinForecastMonths {
		return nil, &domain.InsufficientDataError{Months: len(ordered)}
	}

	values := make([]float64, len(ordered))
	for i, m := range ordered {
		values[i] = m.Revenue
	}

	model := Fit(values)
	margin := ZScore95 * StandardError(model, values)

	month, err := utils.ParseYearMonth(ordered[len(ordered)-1].Month)
	if err != nil {
		return nil, domain.NewFormatError(domain.ErrInvalidMonthKey, ordered[len(ordered)-1].Month)
	}

	records := make([]domain.ForecastRecord, 0, periods)
	for i := 0; i < periods; i++ {
		month = utils.NextMonth(month)
		prediction := model.Predict(float64(len(values) + i))

		records = append(records, domain.ForecastRecord{
			Month:      month.Format(utils.YearMonthLayout),
			Forecast:   utils.RoundWithTwoDecimalPlace(prediction),
			LowerBound: utils.RoundWithTwoDecimalPlace(prediction - margin),
			UpperBound: utils.RoundWithTwoDecimalPlace(prediction + margin),
		})
	}

	return records, nil
}

// normalizeSeries valida as chaves, soma meses repetidos e ordena cronologicamente
func normalizeSeries(series domain.MonthlySeries) (domain.MonthlySeries, error) {
	sums := make(map[string]float64, len(series))
	for _, m := range series {
		if _, err := utils.ParseYearMonth(m.Month); err != nil {
			return nil, domain.NewFormatError(domain.ErrInvalidMonthKey, m.Month)
		}
		sums[m.Month] += m.Revenue
	}

	return domain.MonthlySeriesFromMap(sums), nil
}
