package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney formata um valor como moeda com separador de milhar ($1,234.56)
func FormatMoney(f float64) string {
	if f < 0 {
		return moneyPrinter.Sprintf("-$%.2f", -f)
	}
	return moneyPrinter.Sprintf("$%.2f", f)
}
