package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/vfg2006/sales-insight-api/infrastructure/tabular"
	"github.com/vfg2006/sales-insight-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insight-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insight-api/pkg/log"
)

const (
	// Campo multipart que carrega o arquivo
	uploadField = "file"
	// Folga para boundaries e cabeçalhos multipart além do próprio arquivo
	multipartEnvelope = 64 << 10
)

// UploadOptions limita os arquivos aceitos pelos endpoints de upload
type UploadOptions struct {
	MaxBytes          int64
	AllowedExtensions []string
}

// UploadFile processa a exportação de vendas e retorna o pacote de resultados
func UploadFile(service insighting.Insighter, opts UploadOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		file, filename, ok := readUpload(w, r, opts, logger)
		if !ok {
			return
		}
		defer file.Close()

		logger.WithField("file_name", filename).Info("upload: processando arquivo")

		report, err := service.ProcessUpload(r.Context(), filename, file)
		if err != nil {
			writeServiceError(w, err, logger, "upload")
			return
		}

		logger.WithFields(log.Fields{
			"report_id":       report.ReportID,
			"forecast_months": len(report.Forecast),
		}).Info("upload: relatório gerado com sucesso")

		writeJSON(w, http.StatusOK, report, logger)
	})
}

// PreviewFile retorna as primeiras linhas limpas do arquivo enviado
func PreviewFile(service insighting.Insighter, opts UploadOptions) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		file, filename, ok := readUpload(w, r, opts, logger)
		if !ok {
			return
		}
		defer file.Close()

		preview, err := service.PreviewUpload(r.Context(), filename, file)
		if err != nil {
			writeServiceError(w, err, logger, "preview")
			return
		}

		writeJSON(w, http.StatusOK, preview, logger)
	})
}

// readUpload extrai o arquivo do formulário multipart validando tamanho e extensão.
// Em caso de falha a resposta de erro já foi escrita.
func readUpload(w http.ResponseWriter, r *http.Request, opts UploadOptions, logger log.Logger) (multipart.File, string, bool) {
	bodyLimit := opts.MaxBytes + multipartEnvelope
	if r.ContentLength > bodyLimit {
		writeTooLarge(w, opts, logger)
		return nil, "", false
	}
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)

	if err := r.ParseMultipartForm(opts.MaxBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeTooLarge(w, opts, logger)
			return nil, "", false
		}

		logger.WithError(err).Warn("upload: formulário multipart inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid multipart form", nil)
		return nil, "", false
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No file part", nil)
		return nil, "", false
	}

	if header.Size > opts.MaxBytes {
		file.Close()
		writeTooLarge(w, opts, logger)
		return nil, "", false
	}

	filename := filepath.Base(header.Filename)
	if header.Filename == "" || filename == "." {
		file.Close()
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No selected file", nil)
		return nil, "", false
	}

	if !tabular.AllowedFile(filename, opts.AllowedExtensions) {
		file.Close()
		logger.WithField("file_name", filename).Warn("upload: extensão não permitida")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid file type", map[string][]string{"allowed_extensions": opts.AllowedExtensions})
		return nil, "", false
	}

	return file, filename, true
}

func writeTooLarge(w http.ResponseWriter, opts UploadOptions, logger log.Logger) {
	logger.WithField("file_max_bytes", opts.MaxBytes).Warn("upload: arquivo acima do limite")
	apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "File too large", map[string]int64{"max_bytes": opts.MaxBytes})
}
