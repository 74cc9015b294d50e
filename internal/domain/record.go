// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Colunas obrigatórias de uma exportação de vendas
const (
	ColumnDate    = "date"
	ColumnRevenue = "revenue"
	ColumnProduct = "product"
)

// RequiredColumns lista as colunas obrigatórias na ordem em que são reportadas
var RequiredColumns = []string{ColumnDate, ColumnRevenue, ColumnProduct}

// RawTable representa uma tabela carregada de um arquivo, ainda sem tipos
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// CleanedRecord representa uma venda validada
type CleanedRecord struct {
	Date              time.Time `json:"date"`
	Revenue           float64   `json:"revenue"`
	Product           string    `json:"product"`
	ProductNormalized string    `json:"product_normalized"`
}

// YearMonth retorna a chave YYYY-MM do registro
func (r CleanedRecord) YearMonth() string {
	return r.Date.Format(YearMonthLayout)
}

// PreviewRow é a versão de exibição de um registro limpo
type PreviewRow struct {
	Date              string  `json:"date"`
	Revenue           float64 `json:"revenue"`
	Product           string  `json:"product"`
	ProductNormalized string  `json:"product_normalized"`
}
