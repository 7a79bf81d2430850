package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{code: ErrInvalidPeriod, status: http.StatusBadRequest},
		{code: ErrNoData, status: http.StatusNotFound},
		{code: ErrInsufficientPrivilege, status: http.StatusForbidden},
		{code: ErrSyncInProgress, status: http.StatusConflict},
		{code: "UNKNOWN", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "boom", map[string]any{"week": 54})

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "boom", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrNoData).Code)

	apiErr := FromError(errors.New("no sales"), ErrNoData)
	assert.Equal(t, ErrNoData, apiErr.Code)
	assert.Equal(t, "no sales", apiErr.Message)
}
