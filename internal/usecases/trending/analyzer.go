// Package trending analisa crescimento mensal, crescimento por produto e tendências de venda
package trending

import (
	"math"
	"sort"
	"time"

	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/internal/usecases/metrics"
	"github.com/vfg2006/sales-insight-api/pkg/utils"
)

// TopProductsLimit é o tamanho das listas de produtos em crescimento e em queda
const TopProductsLimit = 5

// Analyze gera os insights avançados de um conjunto de vendas limpo.
// O chamador deve garantir ao menos um registro; um conjunto vazio retorna EmptyDatasetError.
func Analyze(records []domain.CleanedRecord) (*domain.AdvancedInsights, error) {
	if len(records) == 0 {
		return nil, &domain.EmptyDatasetError{}
	}

	series := metrics.MonthlySeries(records)
	monthlyGrowth := metrics.MonthlyGrowth(series)
	productGrowth := ProductGrowth(records)
	growing, declining := RankProducts(productGrowth, TopProductsLimit)

	return &domain.AdvancedInsights{
		RevenueTrend:         series,
		TotalGrowth:          OverallGrowth(series),
		MonthlyGrowth:        monthlyGrowth,
		ProductGrowth:        productGrowth,
		TopGrowingProducts:   growing,
		TopDecliningProducts: declining,
		BiggestSalesDay:      BiggestSalesDay(records),
		SmartTip:             SmartTip(series, monthlyGrowth, productGrowth),
	}, nil
}

// OverallGrowth é a variação entre o primeiro e o último mês da série
func OverallGrowth(series domain.MonthlySeries) float64 {
	if len(series) == 0 {
		return 0
	}
	return metrics.GrowthPercent(series[0].Revenue, series[len(series)-1].Revenue)
}

// ProductGrowth calcula o crescimento de cada produto entre o primeiro e o último
// mês do conjunto. Sem receita no primeiro mês, o crescimento é +Inf se houver
// receita no último mês e 0 caso contrário. O resultado segue a ordem alfabética.
func ProductGrowth(records []domain.CleanedRecord) []domain.ProductGrowth {
	if len(records) == 0 {
		return []domain.ProductGrowth{}
	}

	firstMonth, lastMonth := records[0].YearMonth(), records[0].YearMonth()
	for _, record := range records[1:] {
		month := record.YearMonth()
		if month < firstMonth {
			firstMonth = month
		}
		if month > lastMonth {
			lastMonth = month
		}
	}

	first := metrics.ProductRevenueInMonth(records, firstMonth)
	last := metrics.ProductRevenueInMonth(records, lastMonth)

	products := make(map[string]struct{}, len(first)+len(last))
	for product := range first {
		products[product] = struct{}{}
	}
	for product := range last {
		products[product] = struct{}{}
	}

	names := make([]string, 0, len(products))
	for product := range products {
		names = append(names, product)
	}
	sort.Strings(names)

	growth := make([]domain.ProductGrowth, 0, len(names))
	for _, product := range names {
		growth = append(growth, domain.ProductGrowth{
			Product: product,
			Growth:  domain.GrowthRate(productGrowthRate(first[product], last[product])),
		})
	}
	return growth
}

func productGrowthRate(first, last float64) float64 {
	if first > 0 {
		return utils.RoundWithTwoDecimalPlace((last - first) / first * 100)
	}
	if last > 0 {
		return math.Inf(1)
	}
	return 0
}

// RankProducts ordena os produtos por crescimento decrescente e retorna os
// primeiros n e os últimos n, estes com o de maior queda primeiro
func RankProducts(growth []domain.ProductGrowth, n int) (growing, declining []domain.ProductGrowth) {
	sorted := make([]domain.ProductGrowth, len(growth))
	copy(sorted, growth)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Growth > sorted[j].Growth
	})

	top := min(n, len(sorted))
	growing = append([]domain.ProductGrowth{}, sorted[:top]...)

	declining = make([]domain.ProductGrowth, 0, top)
	for i := len(sorted) - 1; i >= len(sorted)-top; i-- {
		declining = append(declining, sorted[i])
	}

	return growing, declining
}

// BiggestSalesDay retorna o dia com maior receita somada; empates ficam com o dia mais antigo
func BiggestSalesDay(records []domain.CleanedRecord) domain.SalesDay {
	daily := make(map[time.Time]float64)
	for _, record := range records {
		daily[record.Date] += record.Revenue
	}

	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var best domain.SalesDay
	for i, day := range days {
		if i == 0 || daily[day] > best.Revenue {
			best = domain.SalesDay{Date: day.Format(time.DateOnly), Revenue: daily[day]}
		}
	}
	return best
}
