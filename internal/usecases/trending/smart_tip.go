package trending

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-insight-api/internal/domain"
)

// Limiares da dica de vendas
const (
	recentMonths          = 3
	strongGrowthThreshold = 10.0
	declineThreshold      = -5.0
	productGrowthCallout  = 20.0
	productDeclineCallout = -20.0
	productsNamed         = 2
)

// Mensagens da dica de vendas
const (
	TipStrongGrowth     = "Strong recent growth! Consider increasing inventory to meet demand."
	TipRecentDecline    = "Recent decline in sales. Consider promotional activities or price adjustments."
	TipGrowingProducts  = "Products showing strong growth: %s. Consider increasing their stock."
	TipDecliningProduct = "Products showing significant decline: %s. Review pricing or marketing strategy."
	TipStable           = "Sales are stable. Consider exploring new product categories or markets."
)

// SmartTip gera uma recomendação a partir do crescimento recente e do crescimento por produto.
// A série define a ordem cronológica do crescimento mensal.
func SmartTip(series domain.MonthlySeries, monthlyGrowth map[string]float64, productGrowth []domain.ProductGrowth) string {
	var tips []string

	recent := recentGrowth(series, monthlyGrowth, recentMonths)
	if len(recent) > 0 {
		sum := 0.0
		for _, g := range recent {
			sum += g
		}
		avg := sum / float64(len(recent))

		if avg > strongGrowthThreshold {
			tips = append(tips, TipStrongGrowth)
		} else if avg < declineThreshold {
			tips = append(tips, TipRecentDecline)
		}
	}

	var growing, declining []string
	for _, p := range productGrowth {
		switch {
		case float64(p.Growth) > productGrowthCallout:
			growing = append(growing, p.Product)
		case float64(p.Growth) < productDeclineCallout:
			declining = append(declining, p.Product)
		}
	}

	if len(growing) > 0 {
		tips = append(tips, fmt.Sprintf(TipGrowingProducts, strings.Join(growing[:min(productsNamed, len(growing))], ", ")))
	}
	if len(declining) > 0 {
		tips = append(tips, fmt.Sprintf(TipDecliningProduct, strings.Join(declining[:min(productsNamed, len(declining))], ", ")))
	}

	if len(tips) == 0 {
		tips = append(tips, TipStable)
	}

	return strings.Join(tips, " ")
}

// recentGrowth retorna até n valores de crescimento mensal mais recentes, em ordem cronológica
func recentGrowth(series domain.MonthlySeries, monthlyGrowth map[string]float64, n int) []float64 {
	values := make([]float64, 0, len(monthlyGrowth))
	for _, month := range series {
		if g, ok := monthlyGrowth[month.Month]; ok {
			values = append(values, g)
		}
	}
	if len(values) > n {
		values = values[len(values)-n:]
	}
	return values
}
