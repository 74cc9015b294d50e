// Package cleaning converte uma tabela bruta em registros de venda validados
package cleaning

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/pkg/utils"
)

// Marcadores tratados como valor ausente, além da célula vazia
var missingMarkers = map[string]struct{}{
	"#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {},
	"N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {},
	"nan": {}, "null": {},
}

// Result é o resultado da limpeza de uma tabela
type Result struct {
	Records            []domain.CleanedRecord
	ValidationMessages []string
	DateFormat         string
	Scores             []FormatScore
	DroppedMissing     int
	DroppedDate        int
	DroppedRevenue     int
}

type rawRow struct {
	date    string
	revenue string
	product string
}

type datedRow struct {
	rawRow
	parsed time.Time
}

// Clean valida a tabela e devolve apenas as linhas com data, receita e produto válidos.
// Linhas inválidas são descartadas e contabilizadas nas mensagens de validação.
func Clean(table *domain.RawTable) (*Result, error) {
	if table == nil {
		return nil, domain.NewFormatError(domain.ErrUnreadableTable, "empty table")
	}

	index := columnIndex(table.Columns)

	var missing []string
	for _, column := range domain.RequiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewMissingColumnsError(missing)
	}

	result := &Result{}

	// 1. Descartar linhas com valores ausentes
	rows := make([]rawRow, 0, len(table.Rows))
	for _, cells := range table.Rows {
		row := rawRow{
			date:    cell(cells, index[domain.ColumnDate]),
			revenue: cell(cells, index[domain.ColumnRevenue]),
			product: cell(cells, index[domain.ColumnProduct]),
		}
		if isMissing(row.date) || isMissing(row.revenue) || isMissing(row.product) {
			result.DroppedMissing++
			continue
		}
		rows = append(rows, row)
	}

	// 2. Detectar o formato de data e descartar datas inválidas
	dates := make([]string, len(rows))
	for i, row := range rows {
		dates[i] = row.date
	}
	probe := ProbeDateFormat(dates, DateFormats, DateFormatThreshold)
	result.DateFormat = probe.Label()
	result.Scores = probe.Scores

	dated := make([]datedRow, 0, len(rows))
	for _, row := range rows {
		date, err := probe.Parse(row.date)
		if err != nil {
			result.DroppedDate++
			continue
		}
		dated = append(dated, datedRow{rawRow: row, parsed: date})
	}

	// 3. Converter a receita, descartando valores não numéricos
	result.Records = make([]domain.CleanedRecord, 0, len(dated))
	for _, row := range dated {
		revenue, ok := parseRevenue(row.revenue)
		if !ok {
			result.DroppedRevenue++
			continue
		}

		result.Records = append(result.Records, domain.CleanedRecord{
			Date:              row.parsed,
			Revenue:           revenue,
			Product:           row.product,
			ProductNormalized: utils.NormalizeLabel(row.product),
		})
	}

	result.ValidationMessages = validationMessages(result)

	return result, nil
}

// NormalizeColumnName aplica a normalização de nomes de coluna
func NormalizeColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validationMessages(result *Result) []string {
	messages := []string{fmt.Sprintf("Date format detected: %s", result.DateFormat)}

	if result.DroppedMissing > 0 {
		messages = append(messages, fmt.Sprintf("Dropped %d rows with missing values", result.DroppedMissing))
	}
	if result.DroppedDate > 0 {
		messages = append(messages, fmt.Sprintf("Dropped %d rows with invalid dates", result.DroppedDate))
	}
	if result.DroppedRevenue > 0 {
		messages = append(messages, fmt.Sprintf("Dropped %d rows with invalid revenue values", result.DroppedRevenue))
	}

	return messages
}

// columnIndex mapeia o nome normalizado para a posição; a primeira ocorrência vence
func columnIndex(columns []string) map[string]int {
	index := make(map[string]int, len(columns))
	for i, column := range columns {
		name := NormalizeColumnName(column)
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func isMissing(value string) bool {
	if value == "" {
		return true
	}
	_, ok := missingMarkers[value]
	return ok
}

// parseRevenue aceita apenas números finitos e não negativos
func parseRevenue(value string) (float64, bool) {
	revenue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(revenue) || math.IsInf(revenue, 0) || revenue < 0 {
		return 0, false
	}
	return revenue, true
}
