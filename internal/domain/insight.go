package domain

import (
	"math"
	"strconv"
)

// GrowthRate é um percentual de crescimento; +Inf indica crescimento a partir de zero
type GrowthRate float64

// MarshalJSON representa valores infinitos como string, já que JSON não os suporta
func (g GrowthRate) MarshalJSON() ([]byte, error) {
	f := float64(g)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	case math.IsNaN(f):
		return []byte(`null`), nil
	}
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}

// ProductGrowth é o crescimento de um produto entre o primeiro e o último mês
type ProductGrowth struct {
	Product string     `json:"product"`
	Growth  GrowthRate `json:"growth"`
}

// SalesDay é a receita somada de um dia
type SalesDay struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// AdvancedInsights reúne as análises de crescimento e tendência
type AdvancedInsights struct {
	RevenueTrend         []MonthlyRevenue   `json:"revenue_trend"`
	TotalGrowth          float64            `json:"total_growth"`
	MonthlyGrowth        map[string]float64 `json:"-"`
	ProductGrowth        []ProductGrowth    `json:"-"`
	TopGrowingProducts   []ProductGrowth    `json:"top_growing_products"`
	TopDecliningProducts []ProductGrowth    `json:"top_declining_products"`
	BiggestSalesDay      SalesDay           `json:"biggest_sales_day"`
	SmartTip             string             `json:"smart_tip"`
}

// InsightReport é o pacote de resultados consumido pela camada de relatórios
type InsightReport struct {
	TotalRevenue       float64            `json:"total_revenue"`
	AvgOrderValue      float64            `json:"avg_order_value"`
	TopProduct         string             `json:"top_product"`
	MonthlyRevenue     map[string]float64 `json:"monthly_revenue"`
	MonthlyGrowth      map[string]float64 `json:"monthly_growth"`
	ProductRevenue     map[string]float64 `json:"product_revenue"`
	Insights           *AdvancedInsights  `json:"insights"`
	Forecast           []ForecastRecord   `json:"forecast"`
	ForecastError      string             `json:"forecast_error,omitempty"`
	ValidationMessages []string           `json:"validation_messages"`
	ReportID           string             `json:"report_id,omitempty"`

	series MonthlySeries
}

// NewInsightReport monta o pacote de resultados a partir das métricas e análises
func NewInsightReport(metrics *Metrics, insights *AdvancedInsights, messages []string) *InsightReport {
	if messages == nil {
		messages = []string{}
	}
	return &InsightReport{
		TotalRevenue:       metrics.TotalRevenue,
		AvgOrderValue:      metrics.AvgOrderValue,
		TopProduct:         metrics.TopProduct,
		MonthlyRevenue:     metrics.MonthlyRevenue.ToMap(),
		MonthlyGrowth:      metrics.MonthlyGrowth,
		ProductRevenue:     metrics.ProductRevenue,
		Insights:           insights,
		Forecast:           []ForecastRecord{},
		ValidationMessages: messages,
		series:             metrics.MonthlyRevenue,
	}
}

// Series retorna a série mensal ordenada do relatório
func (r *InsightReport) Series() MonthlySeries {
	if r.series == nil {
		return MonthlySeriesFromMap(r.MonthlyRevenue)
	}
	return r.series
}
