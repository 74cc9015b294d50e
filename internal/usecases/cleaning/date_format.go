package cleaning

import (
	"time"

	"github.com/araddon/dateparse"
)

// DateFormatThreshold é a fração mínima (exclusiva) de datas válidas para aceitar um formato
const DateFormatThreshold = 0.9

// AutoDetectedLabel identifica o fallback de inferência heurística
const AutoDetectedLabel = "various formats"

// DateFormat descreve um formato de data candidato
type DateFormat struct {
	Name   string
	Label  string
	Layout string
}

// Parse interpreta o valor no layout do formato, descartando o horário
func (f DateFormat) Parse(value string) (time.Time, error) {
	t, err := time.Parse(f.Layout, value)
	if err != nil {
		return time.Time{}, err
	}
	return truncateToDate(t), nil
}

// DateFormats é a lista fixa e ordenada de formatos testados.
// Layouts com dígito único aceitam dia e mês com ou sem zero à esquerda.
var DateFormats = []DateFormat{
	{Name: "iso", Label: "YYYY-MM-DD (2023-01-31)", Layout: "2006-1-2"},
	{Name: "us_slash", Label: "MM/DD/YYYY (01/31/2023)", Layout: "1/2/2006"},
	{Name: "eu_slash", Label: "DD/MM/YYYY (31/01/2023)", Layout: "2/1/2006"},
	{Name: "eu_dash", Label: "DD-MM-YYYY (31-01-2023)", Layout: "2-1-2006"},
	{Name: "us_dash", Label: "MM-DD-YYYY (01-31-2023)", Layout: "1-2-2006"},
	{Name: "eu_dot", Label: "DD.MM.YYYY (31.01.2023)", Layout: "2.1.2006"},
}

// FormatScore é a taxa de sucesso de um formato sobre a coluna de datas
type FormatScore struct {
	Format      DateFormat
	SuccessRate float64
}

// DateProbe é o resultado da detecção do formato de datas
type DateProbe struct {
	// Selected é nil quando nenhum formato superou o limiar
	Selected *DateFormat
	Scores   []FormatScore
}

// Label retorna a descrição do método usado para interpretar as datas
func (p DateProbe) Label() string {
	if p.Selected == nil {
		return AutoDetectedLabel
	}
	return p.Selected.Label
}

// Parse interpreta um valor com o formato selecionado ou com a inferência heurística
func (p DateProbe) Parse(value string) (time.Time, error) {
	if p.Selected != nil {
		return p.Selected.Parse(value)
	}
	return parseAnyDate(value)
}

// ProbeDateFormat testa os formatos na ordem dada e seleciona o primeiro cuja
// taxa de sucesso supere o limiar. A coleta para no formato selecionado.
func ProbeDateFormat(values []string, formats []DateFormat, threshold float64) DateProbe {
	probe := DateProbe{Scores: make([]FormatScore, 0, len(formats))}
	if len(values) == 0 {
		return probe
	}

	for i := range formats {
		format := formats[i]

		parsed := 0
		for _, value := range values {
			if _, err := format.Parse(value); err == nil {
				parsed++
			}
		}

		rate := float64(parsed) / float64(len(values))
		probe.Scores = append(probe.Scores, FormatScore{Format: format, SuccessRate: rate})

		if rate > threshold {
			probe.Selected = &format
			break
		}
	}

	return probe
}

// parseAnyDate infere o formato do valor; datas ambíguas são lidas como mês primeiro
func parseAnyDate(value string) (time.Time, error) {
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return truncateToDate(t), nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
