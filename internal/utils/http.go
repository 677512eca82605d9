package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-route-loader/models"
)

// EncodeJSON serializes data exactly the way [WriteJSON] puts it on the wire.
// HEAD responses checksum this output, so both paths must share it.
func EncodeJSON(data any) ([]byte, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error writing data to JSON: %w", err)
	}
	return jsonData, nil
}

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := EncodeJSON(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes resp as the JSON error body. The HTTP status is
// resp.Code when that is a valid status (>= 200), otherwise 500.
func WriteError(w http.ResponseWriter, resp *models.ErrorResponse) {
	WriteJSON(w, resp, resp.Status())
}
