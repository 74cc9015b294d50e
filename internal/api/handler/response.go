package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insight-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON escreve a resposta codificada em JSON com o status informado
func writeJSON(w http.ResponseWriter, status int, body any, logger log.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("response: erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros do pipeline para o envelope de erro da API
func writeServiceError(w http.ResponseWriter, err error, logger log.Logger, area string) {
	var details any
	var emptyErr *domain.EmptyDatasetError
	if errors.As(err, &emptyErr) {
		details = emptyErr.ValidationMessages
	}

	apiErr := apiErrors.FromError(err)
	if apiErrors.StatusFor(apiErr.Code) >= http.StatusInternalServerError {
		logger.WithError(err).Errorf("%s: erro ao processar requisição", area)
	} else {
		logger.WithError(err).Warnf("%s: requisição recusada", area)
	}

	apiErrors.WriteFromError(w, err, details)
}
