package tabular

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Formatos numéricos embutidos do Excel que representam datas
var builtInDateFormats = map[int]struct{}{
	14: {}, 15: {}, 16: {}, 17: {}, 22: {},
	27: {}, 28: {}, 29: {}, 30: {}, 31: {}, 32: {}, 33: {}, 34: {}, 35: {}, 36: {},
	50: {}, 51: {}, 52: {}, 53: {}, 54: {}, 55: {}, 56: {}, 57: {}, 58: {},
}

// XLSXLoader lê a primeira planilha de uma pasta de trabalho Excel
type XLSXLoader struct{}

// NewXLSXLoader cria um leitor de planilhas XLSX
func NewXLSXLoader() *XLSXLoader {
	return &XLSXLoader{}
}

// Load lê os valores brutos da primeira planilha; a primeira linha não vazia é o cabeçalho.
// Números saem sem a formatação de exibição e células com estilo de data saem como YYYY-MM-DD.
func (l *XLSXLoader) Load(r io.Reader) (*domain.RawTable, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.NewFormatError(domain.ErrUnreadableTable, errors.Wrap(err, "xlsx: open").Error())
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.NewFormatError(domain.ErrUnreadableTable, "xlsx: workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := file.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, domain.NewFormatError(domain.ErrUnreadableTable, errors.Wrapf(err, "xlsx: read sheet %q", sheet).Error())
	}

	if err := resolveDateCells(file, sheet, rows); err != nil {
		return nil, domain.NewFormatError(domain.ErrUnreadableTable, err.Error())
	}

	table := newTable(rows)
	if table.Columns == nil {
		return nil, domain.NewFormatError(domain.ErrUnreadableTable, "xlsx: no header row")
	}
	return table, nil
}

// resolveDateCells troca os números de série das células com estilo de data pela data ISO
func resolveDateCells(file *excelize.File, sheet string, rows [][]string) error {
	styles := newDateStyles(file)

	for i, row := range rows {
		for j, value := range row {
			if value == "" {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return errors.Wrap(err, "xlsx: cell name")
			}
			styleID, err := file.GetCellStyle(sheet, cell)
			if err != nil {
				return errors.Wrapf(err, "xlsx: style of %s", cell)
			}
			if !styles.isDate(styleID) {
				continue
			}

			if date, ok := styles.toDate(value); ok {
				row[j] = date
			}
		}
	}
	return nil
}

// dateStyles memoriza quais estilos da pasta de trabalho formatam datas
type dateStyles struct {
	file     *excelize.File
	date1904 bool
	known    map[int]bool
}

func newDateStyles(file *excelize.File) *dateStyles {
	styles := &dateStyles{file: file, known: make(map[int]bool)}
	if props, err := file.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		styles.date1904 = *props.Date1904
	}
	return styles
}

func (d *dateStyles) isDate(styleID int) bool {
	if styleID == 0 {
		return false
	}
	if isDate, ok := d.known[styleID]; ok {
		return isDate
	}

	isDate := false
	if style, err := d.file.GetStyle(styleID); err == nil && style != nil {
		if style.CustomNumFmt != nil {
			isDate = isDateLayout(*style.CustomNumFmt)
		} else {
			_, isDate = builtInDateFormats[style.NumFmt]
		}
	}

	d.known[styleID] = isDate
	return isDate
}

// toDate converte o número de série do Excel; valores não numéricos ficam como estão
func (d *dateStyles) toDate(value string) (string, bool) {
	serial, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", false
	}
	t, err := excelize.ExcelDateToTime(serial, d.date1904)
	if err != nil {
		return "", false
	}
	return t.Format(time.DateOnly), true
}

// isDateLayout indica se um código de formato personalizado exibe dia ou ano.
// Texto entre aspas, seções entre colchetes e caracteres escapados são ignorados.
func isDateLayout(code string) bool {
	inQuotes, inBrackets, escaped := false, false, false
	for _, r := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case inQuotes:
			inQuotes = r != '"'
		case inBrackets:
			inBrackets = r != ']'
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = true
		case r == '[':
			inBrackets = true
		case r == 'd' || r == 'y':
			return true
		}
	}
	return false
}
