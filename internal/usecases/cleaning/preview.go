package cleaning

import (
	"time"

	"github.com/vfg2006/sales-insight-api/internal/domain"
)

// DefaultPreviewRows é a quantidade padrão de linhas da pré-visualização
const DefaultPreviewRows = 5

// Preview retorna as primeiras n linhas limpas com a data formatada
func Preview(records []domain.CleanedRecord, n int) []domain.PreviewRow {
	if n <= 0 {
		n = DefaultPreviewRows
	}
	if n > len(records) {
		n = len(records)
	}

	rows := make([]domain.PreviewRow, 0, n)
	for _, record := range records[:n] {
		rows = append(rows, domain.PreviewRow{
			Date:              record.Date.Format(time.DateOnly),
			Revenue:           record.Revenue,
			Product:           record.Product,
			ProductNormalized: record.ProductNormalized,
		})
	}
	return rows
}
