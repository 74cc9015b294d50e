// Package metrics calcula as métricas agregadas de um conjunto de vendas limpo
package metrics

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/pkg/utils"
)

// Summarize calcula totais, produto mais vendido, série mensal e receita por produto.
// Um conjunto vazio resulta em métricas zeradas.
func Summarize(records []domain.CleanedRecord) *domain.Metrics {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(decimal.NewFromFloat(record.Revenue))
	}

	avg := 0.0
	if len(records) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(records)))).InexactFloat64()
	}

	productRevenue := ProductRevenue(records)
	series := MonthlySeries(records)

	return &domain.Metrics{
		TotalRevenue:   total.InexactFloat64(),
		AvgOrderValue:  avg,
		TopProduct:     TopProduct(productRevenue),
		MonthlyRevenue: series,
		MonthlyGrowth:  MonthlyGrowth(series),
		ProductRevenue: productRevenue,
	}
}

// MonthlySeries soma a receita por mês (YYYY-MM) em ordem cronológica,
// independente da ordem original das linhas
func MonthlySeries(records []domain.CleanedRecord) domain.MonthlySeries {
	sums := make(map[string]decimal.Decimal)
	for _, record := range records {
		month := record.YearMonth()
		sums[month] = sums[month].Add(decimal.NewFromFloat(record.Revenue))
	}

	months := sortedKeys(sums)

	series := make(domain.MonthlySeries, 0, len(months))
	for _, month := range months {
		series = append(series, domain.MonthlyRevenue{
			Month:   month,
			Revenue: sums[month].InexactFloat64(),
		})
	}
	return series
}

// MonthlyGrowth calcula a variação percentual de cada mês em relação ao anterior.
// O primeiro mês não tem entrada; um mês anterior sem receita resulta em 0.
func MonthlyGrowth(series domain.MonthlySeries) map[string]float64 {
	growth := make(map[string]float64)
	for i := 1; i < len(series); i++ {
		growth[series[i].Month] = GrowthPercent(series[i-1].Revenue, series[i].Revenue)
	}
	return growth
}

// GrowthPercent é a variação percentual entre dois valores, arredondada em duas casas.
// Retorna 0 quando o valor anterior não é positivo.
func GrowthPercent(previous, current float64) float64 {
	if previous <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
}

// ProductRevenue soma a receita por nome de produto normalizado
func ProductRevenue(records []domain.CleanedRecord) map[string]float64 {
	return sumByProduct(records, func(domain.CleanedRecord) bool { return true })
}

// ProductRevenueInMonth soma a receita por produto apenas no mês informado
func ProductRevenueInMonth(records []domain.CleanedRecord, month string) map[string]float64 {
	return sumByProduct(records, func(r domain.CleanedRecord) bool { return r.YearMonth() == month })
}

// TopProduct retorna o produto com maior receita; empates ficam com o primeiro em ordem alfabética
func TopProduct(productRevenue map[string]float64) string {
	top := ""
	best := 0.0
	for i, product := range sortedKeys(productRevenue) {
		if i == 0 || productRevenue[product] > best {
			top = product
			best = productRevenue[product]
		}
	}
	return top
}

func sumByProduct(records []domain.CleanedRecord, keep func(domain.CleanedRecord) bool) map[string]float64 {
	sums := make(map[string]decimal.Decimal)
	for _, record := range records {
		if !keep(record) {
			continue
		}
		sums[record.ProductNormalized] = sums[record.ProductNormalized].Add(decimal.NewFromFloat(record.Revenue))
	}

	out := make(map[string]float64, len(sums))
	for product, sum := range sums {
		out[product] = sum.InexactFloat64()
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
