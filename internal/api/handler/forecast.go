package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insight-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insight-api/pkg/log"
)

// Limite do corpo JSON da previsão
const maxForecastBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// Forecast projeta a receita a partir de uma série mensal enviada em JSON
func Forecast(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxForecastBodyBytes))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				logger.WithField("forecast_max_bytes", maxBytesErr.Limit).Warn("forecast: corpo acima do limite")
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Request body too large", map[string]int64{"max_bytes": maxBytesErr.Limit})
				return
			}
			logger.WithError(err).Warn("forecast: falha ao ler o corpo")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		var request domain.ForecastRequest
		if err := json.Unmarshal(body, &request); err != nil {
			logger.WithError(err).Warn("forecast: corpo da requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if err := validate.Struct(request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid forecast request", validationDetails(err))
			return
		}

		forecast, err := service.Forecast(r.Context(), request.MonthlyRevenue, request.Periods)
		if err != nil {
			writeServiceError(w, err, logger, "forecast")
			return
		}

		writeJSON(w, http.StatusOK, domain.ForecastResponse{Forecast: forecast}, logger)
	})
}

// validationDetails lista os campos recusados pelo validador
func validationDetails(err error) []string {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		details = append(details, fe.Namespace()+": failed on '"+fe.Tag()+"'")
	}
	return details
}
