package utils

import "time"

// YearMonthLayout é o layout das chaves mensais (YYYY-MM)
const YearMonthLayout = "2006-01"

// ParseYearMonth interpreta uma chave YYYY-MM como o primeiro dia do mês em UTC
func ParseYearMonth(key string) (time.Time, error) {
	month, err := time.Parse(YearMonthLayout, key)
	if err != nil {
		return time.Time{}, err
	}

	return month, nil
}

// NextMonth avança para o mês seguinte somando 32 dias e voltando ao dia 1.
// Partindo do dia 1, 32 dias sempre caem no mês seguinte.
func NextMonth(month time.Time) time.Time {
	next := month.AddDate(0, 0, 32)
	return time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, month.Location())
}
