package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insight-api/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVLoader lê arquivos delimitados por vírgula
type CSVLoader struct {
	Comma rune
}

// NewCSVLoader cria um leitor de CSV separado por vírgula
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{Comma: ','}
}

// Load lê o CSV inteiro em memória; linhas podem ter quantidades diferentes de campos
func (l *CSVLoader) Load(r io.Reader) (*domain.RawTable, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, errors.Wrap(err, "csv: discard BOM")
		}
	}

	reader := csv.NewReader(br)
	reader.Comma = l.Comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, domain.NewFormatError(domain.ErrUnreadableTable, errors.Wrap(err, "csv").Error())
	}

	table := newTable(rows)
	if table.Columns == nil {
		return nil, domain.NewFormatError(domain.ErrUnreadableTable, "csv: no header row")
	}
	return table, nil
}
