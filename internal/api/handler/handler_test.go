package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/sales-insight-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var testUploadOptions = UploadOptions{
	MaxBytes:          1 << 20,
	AllowedExtensions: []string{"csv", "xlsx"},
}

func multipartRequest(t *testing.T, path, field, filename, content string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	} else {
		require.NoError(t, writer.WriteField("comment", "no file"))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestUploadFile(t *testing.T) {
	tests := []struct {
		name     string
		request  func(t *testing.T) *http.Request
		setup    func(service *mocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "deve retornar o relatório gerado",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/upload", "file", "../sales.csv", "date,revenue,product\n")
			},
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().ProcessUpload(gomock.Any(), "sales.csv", gomock.Any()).Return(&domain.InsightReport{
					ReportID:           "abc",
					TotalRevenue:       100,
					TopProduct:         "Widget",
					Forecast:           []domain.ForecastRecord{},
					ForecastError:      "need at least 3 months of data for forecasting",
					ValidationMessages: []string{},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "abc", body["report_id"])
				assert.Equal(t, 100.0, body["total_revenue"])
				assert.Equal(t, []any{}, body["forecast"])
				assert.Equal(t, "need at least 3 months of data for forecasting", body["forecast_error"])
			},
		},
		{
			name: "deve recusar requisição sem arquivo",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/upload", "", "", "")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, apiErr.Code)
				assert.Equal(t, "No file part", apiErr.Message)
			},
		},
		{
			name: "deve recusar extensão não permitida",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/upload", "file", "sales.txt", "date,revenue,product\n")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
				assert.Equal(t, "Invalid file type", apiErr.Message)
			},
		},
		{
			name: "deve recusar corpo que não é multipart",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("plain"))
				req.Header.Set("Content-Type", "text/plain")
				return req
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "deve recusar arquivo acima do limite",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/upload", "file", "sales.csv", strings.Repeat("x", 2<<20))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrPayloadTooLarge, apiErr.Code)
				assert.Equal(t, "File too large", apiErr.Message)
			},
		},
		{
			name: "deve traduzir erro de formato para 400",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/upload", "file", "sales.csv", "a,b\n")
			},
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().ProcessUpload(gomock.Any(), "sales.csv", gomock.Any()).
					Return(nil, domain.NewMissingColumnsError([]string{"date", "revenue", "product"}))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, domain.CodeInvalidFormat, apiErr.Code)
				assert.Contains(t, apiErr.Message, "missing required columns: date, revenue, product")
			},
		},
		{
			name: "deve retornar 422 com as mensagens de validação quando o conjunto ficar vazio",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/upload", "file", "sales.csv", "date,revenue,product\n")
			},
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().ProcessUpload(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &domain.EmptyDatasetError{ValidationMessages: []string{"Dropped 2 rows with invalid dates"}})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, domain.CodeEmptyDataset, apiErr.Code)
				assert.Equal(t, []any{"Dropped 2 rows with invalid dates"}, apiErr.Details)
			},
		},
		{
			name: "deve ocultar a mensagem de erros internos",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "/api/upload", "file", "sales.csv", "date,revenue,product\n")
			},
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().ProcessUpload(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("render report abc: disk full"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
				assert.Equal(t, "Internal server error", apiErr.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockInsighter(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			rec := httptest.NewRecorder()
			UploadFile(service, testUploadOptions).ServeHTTP(rec, tt.request(t))

			tt.validate(t, rec)
		})
	}
}

func TestPreviewFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockInsighter(ctrl)
	service.EXPECT().PreviewUpload(gomock.Any(), "sales.xlsx", gomock.Any()).Return(&domain.PreviewResponse{
		Rows:               []domain.PreviewRow{{Date: "2023-01-05", Revenue: 50, Product: "widget", ProductNormalized: "Widget"}},
		ValidationMessages: []string{"Date format detected: YYYY-MM-DD (2023-01-31)"},
	}, nil)

	rec := httptest.NewRecorder()
	PreviewFile(service, testUploadOptions).ServeHTTP(rec, multipartRequest(t, "/api/preview", "file", "sales.xlsx", "xlsx"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"rows": [{"date": "2023-01-05", "revenue": 50, "product": "widget", "product_normalized": "Widget"}],
		"validation_messages": ["Date format detected: YYYY-MM-DD (2023-01-31)"]
	}`, rec.Body.String())
}

func TestUploadFile_LimiteDoArquivo(t *testing.T) {
	opts := UploadOptions{MaxBytes: 1024, AllowedExtensions: []string{"csv"}}

	tests := []struct {
		name     string
		size     int
		setup    func(service *mocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "deve aceitar arquivo com exatamente o tamanho máximo",
			size: 1024,
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().ProcessUpload(gomock.Any(), "sales.csv", gomock.Any()).
					Return(&domain.InsightReport{ReportID: "abc", Forecast: []domain.ForecastRecord{}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name: "deve recusar arquivo um byte acima do máximo",
			size: 1025,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrPayloadTooLarge, apiErr.Code)
				assert.Equal(t, map[string]any{"max_bytes": float64(1024)}, apiErr.Details)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockInsighter(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := multipartRequest(t, "/api/upload", "file", "sales.csv", strings.Repeat("x", tt.size))
			assert.Greater(t, req.ContentLength, opts.MaxBytes)

			rec := httptest.NewRecorder()
			UploadFile(service, opts).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestForecast(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(service *mocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "deve retornar a previsão",
			body: `{"monthly_revenue": {"2023-01": 1000, "2023-02": 1100, "2023-03": 1200}, "periods": 1}`,
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().
					Forecast(gomock.Any(), map[string]float64{"2023-01": 1000, "2023-02": 1100, "2023-03": 1200}, 1).
					Return([]domain.ForecastRecord{{Month: "2023-04", Forecast: 1300, LowerBound: 1300, UpperBound: 1300}}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"forecast": [{"month": "2023-04", "forecast": 1300, "lower_bound": 1300, "upper_bound": 1300}]}`, rec.Body.String())
			},
		},
		{
			name: "deve recusar JSON inválido",
			body: `{"monthly_revenue": `,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
				assert.Equal(t, "Invalid request body", apiErr.Message)
			},
		},
		{
			name: "deve recusar série vazia",
			body: `{"monthly_revenue": {}}`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "Invalid forecast request", decodeAPIError(t, rec).Message)
			},
		},
		{
			name: "deve recusar chave de mês inválida",
			body: `{"monthly_revenue": {"2023-1": 10, "2023-02": 20, "2023-03": 30}}`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, "Invalid forecast request", apiErr.Message)
				require.Len(t, apiErr.Details, 1)
				assert.Contains(t, apiErr.Details.([]any)[0], "failed on 'datetime'")
			},
		},
		{
			name: "deve recusar receita negativa",
			body: `{"monthly_revenue": {"2023-01": -10, "2023-02": 20, "2023-03": 30}}`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, decodeAPIError(t, rec).Details.([]any)[0], "failed on 'gte'")
			},
		},
		{
			name: "deve recusar corpo acima do limite",
			body: `{"monthly_revenue": {"2023-01": 1}, "note": "` + strings.Repeat("x", maxForecastBodyBytes) + `"}`,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, apiErrors.ErrPayloadTooLarge, apiErr.Code)
				assert.Equal(t, "Request body too large", apiErr.Message)
				assert.Equal(t, map[string]any{"max_bytes": float64(maxForecastBodyBytes)}, apiErr.Details)
			},
		},
		{
			name: "deve retornar 422 quando faltarem meses",
			body: `{"monthly_revenue": {"2023-01": 10, "2023-02": 20}}`,
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().Forecast(gomock.Any(), gomock.Any(), 0).
					Return(nil, &domain.InsufficientDataError{Months: 2})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				apiErr := decodeAPIError(t, rec)
				assert.Equal(t, domain.CodeInsufficientData, apiErr.Code)
				assert.Equal(t, "need at least 3 months of data for forecasting", apiErr.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockInsighter(ctrl)
			if tt.setup != nil {
				tt.setup(service)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/forecast", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			Forecast(service).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestDownloadArtifact(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "sales_report.pdf")
	require.NoError(t, os.WriteFile(pdfPath, []byte("%PDF-1.3 test"), 0o644))

	tests := []struct {
		name     string
		setup    func(service *mocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "deve enviar o arquivo como anexo",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().LatestArtifact(domain.ArtifactPDF).Return(pdfPath, true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, `attachment; filename="sales_report.pdf"`, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "%PDF-1.3 test", rec.Body.String())
			},
		},
		{
			name: "deve retornar 404 quando não houver relatório",
			setup: func(service *mocks.MockInsighter) {
				service.EXPECT().LatestArtifact(domain.ArtifactPDF).Return("", false)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.JSONEq(t, `{"error": "PDF not found"}`, rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockInsighter(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			DownloadArtifact(service, domain.ArtifactPDF, "PDF not found").
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/download-pdf", nil))

			tt.validate(t, rec)
		})
	}
}

func TestAPITest(t *testing.T) {
	rec := httptest.NewRecorder()
	APITest().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "success", "message": "API is working"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{
		"code": "RES_001",
		"message": "Route not found",
		"details": {"method": "GET", "path": "/api/unknown"}
	}`, rec.Body.String())
}
