package domain

import (
	"sort"

	"github.com/vfg2006/sales-insight-api/pkg/utils"
)

// YearMonthLayout é o layout da chave de agregação mensal
const YearMonthLayout = utils.YearMonthLayout

// MonthlyRevenue é a receita somada de um mês
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// MonthlySeries é a série mensal de receita ordenada cronologicamente
type MonthlySeries []MonthlyRevenue

// ToMap converte a série em um mapa mês -> receita
func (s MonthlySeries) ToMap() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, m := range s {
		out[m.Month] = m.Revenue
	}
	return out
}

// MonthlySeriesFromMap monta uma série ordenada a partir de um mapa.
// Chaves YYYY-MM ordenadas lexicamente já estão em ordem cronológica.
func MonthlySeriesFromMap(in map[string]float64) MonthlySeries {
	months := make([]string, 0, len(in))
	for month := range in {
		months = append(months, month)
	}
	sort.Strings(months)

	series := make(MonthlySeries, 0, len(months))
	for _, month := range months {
		series = append(series, MonthlyRevenue{Month: month, Revenue: in[month]})
	}
	return series
}

// Metrics agrega as métricas básicas de um conjunto de vendas
type Metrics struct {
	TotalRevenue   float64            `json:"total_revenue"`
	AvgOrderValue  float64            `json:"avg_order_value"`
	TopProduct     string             `json:"top_product"`
	MonthlyRevenue MonthlySeries      `json:"-"`
	MonthlyGrowth  map[string]float64 `json:"monthly_growth"`
	ProductRevenue map[string]float64 `json:"product_revenue"`
}
