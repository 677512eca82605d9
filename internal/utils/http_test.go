package utils

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-route-loader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusOK)
	require.NoError(t, err)

	assert.NotZero(t, n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
}

func TestWriteJSON_CustomStatusCode(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, math.Inf(1), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestEncodeJSON_MatchesWriteJSON(t *testing.T) {
	data := map[string]any{"u": 1, "list": []int{1, 2, 3}}

	encoded, err := EncodeJSON(data)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	_, err = WriteJSON(w, data, http.StatusOK)
	require.NoError(t, err)

	assert.Equal(t, encoded, w.Body.Bytes())
}

func TestWriteError_StatusRule(t *testing.T) {
	tests := []struct {
		name       string
		code       int
		wantStatus int
	}{
		{"unauthorized", http.StatusUnauthorized, http.StatusUnauthorized},
		{"ok code kept", http.StatusOK, http.StatusOK},
		{"below 200 becomes 500", 42, http.StatusInternalServerError},
		{"zero becomes 500", 0, http.StatusInternalServerError},
		{"out of range becomes 500", 1000, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, &models.ErrorResponse{Code: tt.code, Message: "boom"})

			assert.Equal(t, tt.wantStatus, w.Code)

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "boom", body.Message)
		})
	}
}
