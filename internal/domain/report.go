package domain

// ArtifactKind identifica um arquivo gerado pela camada de relatórios
type ArtifactKind string

const (
	ArtifactPDF           ArtifactKind = "pdf"
	ArtifactCSV           ArtifactKind = "csv"
	ArtifactRevenueChart  ArtifactKind = "revenue_chart"
	ArtifactForecastChart ArtifactKind = "forecast_chart"
	ArtifactProductChart  ArtifactKind = "product_chart"
)

// ReportArtifacts são os caminhos dos arquivos gerados para um upload
type ReportArtifacts struct {
	ReportID string
	Paths    map[ArtifactKind]string
}

// PreviewResponse é a pré-visualização das primeiras linhas limpas de um arquivo
type PreviewResponse struct {
	Rows               []PreviewRow `json:"rows"`
	ValidationMessages []string     `json:"validation_messages"`
}
