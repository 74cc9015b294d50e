// Package tabular carrega arquivos de exportação (CSV e XLSX) como tabelas brutas
package tabular

import (
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vfg2006/sales-insight-api/internal/domain"
)

// Extensões suportadas
const (
	ExtensionCSV  = "csv"
	ExtensionXLSX = "xlsx"
)

// Loader lê uma tabela bruta a partir de um fluxo de bytes
type Loader interface {
	Load(r io.Reader) (*domain.RawTable, error)
}

// FileExtension retorna a extensão do arquivo em minúsculas, sem o ponto
func FileExtension(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// AllowedFile verifica se a extensão do arquivo está entre as permitidas
func AllowedFile(filename string, allowed []string) bool {
	ext := FileExtension(filename)
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(allowed, func(a string) bool {
		return strings.EqualFold(strings.TrimSpace(a), ext)
	})
}

// LoaderFor escolhe o leitor pela extensão do arquivo
func LoaderFor(filename string) (Loader, error) {
	switch FileExtension(filename) {
	case ExtensionCSV:
		return NewCSVLoader(), nil
	case ExtensionXLSX:
		return NewXLSXLoader(), nil
	default:
		return nil, domain.NewFormatError(domain.ErrUnsupportedFileType, FileExtension(filename))
	}
}

// Load escolhe o leitor pela extensão e carrega a tabela
func Load(filename string, r io.Reader) (*domain.RawTable, error) {
	loader, err := LoaderFor(filename)
	if err != nil {
		return nil, err
	}
	return loader.Load(r)
}

// newTable separa o cabeçalho das linhas de dados, ignorando linhas totalmente vazias
func newTable(rows [][]string) *domain.RawTable {
	table := &domain.RawTable{}
	for _, row := range rows {
		if isBlank(row) {
			continue
		}
		if table.Columns == nil {
			table.Columns = row
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// FileLoader carrega arquivos escolhendo o leitor pela extensão do nome
type FileLoader struct{}

// NewFileLoader cria o carregador de arquivos enviados
func NewFileLoader() FileLoader {
	return FileLoader{}
}

// Load carrega a tabela do arquivo
func (FileLoader) Load(filename string, r io.Reader) (*domain.RawTable, error) {
	return Load(filename, r)
}
