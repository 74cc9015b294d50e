package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedErr struct{ code string }

func (e codedErr) Error() string { return "coded failure" }
func (e codedErr) Code() string  { return e.code }

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected APIError
	}{
		{
			name:     "erro nulo",
			err:      nil,
			expected: APIError{Code: ErrInternalServer, Message: "unknown error"},
		},
		{
			name:     "erro com código",
			err:      codedErr{code: ErrEmptyDataset},
			expected: APIError{Code: ErrEmptyDataset, Message: "coded failure"},
		},
		{
			name:     "erro com código encapsulado",
			err:      fmt.Errorf("upload: %w", codedErr{code: ErrInsufficientData}),
			expected: APIError{Code: ErrInsufficientData, Message: "upload: coded failure"},
		},
		{
			name:     "erro sem código",
			err:      errors.New("disk full"),
			expected: APIError{Code: ErrInternalServer, Message: "disk full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromError(tt.err))
		})
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(ErrInvalidFormat))
	assert.Equal(t, http.StatusRequestEntityTooLarge, StatusFor(ErrPayloadTooLarge))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(ErrInsufficientData))
	assert.Equal(t, http.StatusTooManyRequests, StatusFor(ErrTooManyRequests))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("UNKNOWN"))
}

func TestWriteFromError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteFromError(rec, errors.New("open /var/secret: permission denied"), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code": "SRV_001", "message": "Internal server error"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteFromError(rec, codedErr{code: ErrEmptyDataset}, []string{"Dropped 3 rows with invalid dates"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{
		"code": "DATA_001",
		"message": "coded failure",
		"details": ["Dropped 3 rows with invalid dates"]
	}`, rec.Body.String())
}
