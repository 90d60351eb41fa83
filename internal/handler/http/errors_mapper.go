package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/gamey-gateway/internal/adapter"
	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/service"
	"github.com/MKhiriev/gamey-gateway/internal/utils"
	"github.com/MKhiriev/gamey-gateway/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins.
var errorMappings = []errorMapping{
	{target: errInvalidBody, status: http.StatusBadRequest, message: msgInvalidBody},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest, message: msgFieldsRequired},
	{target: service.ErrPasswordTooLong, status: http.StatusBadRequest, message: msgPasswordTooLong},
	{target: service.ErrUserConflict, status: http.StatusBadRequest, message: msgUserConflict},
	{target: service.ErrUserNotFound, status: http.StatusUnauthorized, message: msgUserNotFound},
	{target: service.ErrWrongPassword, status: http.StatusUnauthorized, message: msgWrongPassword},
	{target: service.ErrInvalidCellIndex, status: http.StatusBadRequest, message: msgInvalidCellIndex},
	{target: adapter.ErrInvalidBoard, status: http.StatusInternalServerError, message: msgInvalidBoard},
	{target: adapter.ErrEngineUnavailable, status: http.StatusInternalServerError, message: msgEngineCommunication},
}

// responseFromError maps err to the status and message sent to the client.
// Engine rejections pass the engine's own body through; anything unknown
// becomes a generic internal error.
func (h *Handler) responseFromError(err error) (int, string) {
	var engineErr *adapter.EngineError
	if errors.As(err, &engineErr) {
		return http.StatusInternalServerError, engineErr.Body
	}

	for _, m := range errorMappings {
		if !errors.Is(err, m.target) {
			continue
		}
		if m.status == http.StatusUnauthorized && h.unifyLoginErrors {
			return m.status, msgInvalidCredentials
		}
		return m.status, m.message
	}

	return http.StatusInternalServerError, msgInternal
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := h.responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.writeErrorMessage(w, r, status, message)
}

func (h *Handler) writeErrorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeJSON(w, r, models.ErrorResponse{Error: message}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
