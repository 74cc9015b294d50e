package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrPayloadTooLarge     = "VAL_004" // Arquivo acima do limite

	// Erros de dados (3000-3999)
	ErrEmptyDataset     = "DATA_001" // Nenhum registro válido após a limpeza
	ErrInsufficientData = "DATA_002" // Meses insuficientes para previsão

	// Erros de recurso (4000-4999)
	ErrNotFound        = "RES_001" // Recurso não encontrado
	ErrTooManyRequests = "RES_002" // Limite de requisições excedido

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrEmptyDataset:        http.StatusUnprocessableEntity,
	ErrInsufficientData:    http.StatusUnprocessableEntity,
	ErrNotFound:            http.StatusNotFound,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// coder é implementado pelos erros de domínio que carregam um código de API
type coder interface {
	Code() string
}

// StatusFor retorna o status HTTP do código, ou 500 se desconhecido
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// WriteFromError escreve o erro usando o código carregado pelo erro de domínio.
// Erros sem código viram SRV_001 sem expor a mensagem interna.
func WriteFromError(w http.ResponseWriter, err error, details any) {
	apiErr := FromError(err)
	if apiErr.Code == ErrInternalServer {
		apiErr.Message = "Internal server error"
	}
	WriteError(w, apiErr.Code, apiErr.Message, details)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	var coded coder
	if errors.As(err, &coded) {
		return APIError{
			Code:    coded.Code(),
			Message: err.Error(),
		}
	}

	return APIError{
		Code:    ErrInternalServer,
		Message: err.Error(),
	}
}
