package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Códigos de erro do pipeline, expostos pela API
const (
	CodeInvalidFormat    = "VAL_003"
	CodeEmptyDataset     = "DATA_001"
	CodeInsufficientData = "DATA_002"
)

// MinForecastMonths é a quantidade mínima de meses para gerar previsão
const MinForecastMonths = 3

// Erros específicos do pipeline de análise
var (
	// Erros de formato
	ErrUnsupportedFileType = errors.New("unsupported file format")
	ErrUnreadableTable     = errors.New("unable to read tabular data")
	ErrMissingColumns      = errors.New("missing required columns")
	ErrInvalidMonthKey     = errors.New("invalid month key")

	// Erros de dados
	ErrEmptyDataset     = errors.New("no valid records left after cleaning")
	ErrInsufficientData = errors.New("need at least 3 months of data for forecasting")
)

// FormatError indica um arquivo que não pode ser interpretado como exportação de vendas
type FormatError struct {
	Err     error    // Erro base
	Columns []string // Colunas ausentes (quando aplicável)
	Details string   // Detalhes adicionais
}

// Error implementa a interface error
func (e *FormatError) Error() string {
	if len(e.Columns) > 0 {
		return fmt.Sprintf("%s: %s. Please ensure your file contains: %s",
			e.Err.Error(), strings.Join(e.Columns, ", "), strings.Join(RequiredColumns, ", "))
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Code retorna o código de erro da API
func (e *FormatError) Code() string {
	return CodeInvalidFormat
}

// NewFormatError cria um novo FormatError
func NewFormatError(err error, details string) *FormatError {
	return &FormatError{
		Err:     err,
		Details: details,
	}
}

// NewMissingColumnsError cria um FormatError com as colunas ausentes
func NewMissingColumnsError(columns []string) *FormatError {
	return &FormatError{
		Err:     ErrMissingColumns,
		Columns: columns,
	}
}

// InsufficientDataError indica que a série mensal é curta demais para a previsão
type InsufficientDataError struct {
	Months int
}

// Error implementa a interface error
func (e *InsufficientDataError) Error() string {
	return ErrInsufficientData.Error()
}

// Unwrap retorna o erro subjacente
func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

// Code retorna o código de erro da API
func (e *InsufficientDataError) Code() string {
	return CodeInsufficientData
}

// EmptyDatasetError indica que nenhum registro sobreviveu à limpeza
type EmptyDatasetError struct {
	ValidationMessages []string
}

// Error implementa a interface error
func (e *EmptyDatasetError) Error() string {
	return ErrEmptyDataset.Error()
}

// Unwrap retorna o erro subjacente
func (e *EmptyDatasetError) Unwrap() error {
	return ErrEmptyDataset
}

// Code retorna o código de erro da API
func (e *EmptyDatasetError) Code() string {
	return CodeEmptyDataset
}

// CodedError é implementado pelos erros que carregam um código de API
type CodedError interface {
	error
	Code() string
}
