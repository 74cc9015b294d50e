package domain

// ForecastRecord é a previsão de receita de um mês futuro com intervalo de 95%
type ForecastRecord struct {
	Month      string  `json:"month"`
	Forecast   float64 `json:"forecast"`
	LowerBound float64 `json:"lower_bound"`
	UpperBound float64 `json:"upper_bound"`
}

// ForecastRequest é o corpo de uma previsão sob demanda
type ForecastRequest struct {
	MonthlyRevenue map[string]float64 `json:"monthly_revenue" validate:"required,min=1,dive,keys,datetime=2006-01,endkeys,gte=0"`
	Periods        int                `json:"periods" validate:"gte=0,lte=24"`
}

// ForecastResponse é a resposta de uma previsão sob demanda
type ForecastResponse struct {
	Forecast []ForecastRecord `json:"forecast"`
}
