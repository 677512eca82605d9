package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-route-loader/internal/logger"
	"github.com/MKhiriev/go-route-loader/internal/utils"
	"github.com/MKhiriev/go-route-loader/models"
)

// writeError answers with {code, message}. A *models.ErrorResponse in the
// chain is written as is; other errors get their status from
// statusFromError and keep their message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var resp *models.ErrorResponse
	if !errors.As(err, &resp) {
		resp = &models.ErrorResponse{Code: statusFromError(err), Message: err.Error()}
	}

	event := logger.FromRequest(r).Warn()
	if resp.Status() >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", resp.Status()).Msg("request failed")

	utils.WriteError(w, resp)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, &models.ErrorResponse{Code: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound)})
}
