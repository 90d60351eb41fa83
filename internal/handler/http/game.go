package http

import (
	"net/http"

	"github.com/MKhiriev/gamey-gateway/internal/logger"
	"github.com/MKhiriev/gamey-gateway/internal/service"
	"github.com/MKhiriev/gamey-gateway/models"
)

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.MoveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, err)
		return
	}

	index, ok := req.Index()
	if !ok {
		h.writeError(w, r, service.ErrInvalidCellIndex)
		return
	}

	if username := req.Username.String(); username != "" {
		log.Debug().Str("username", username).Int("cell_index", index).Msg("move requested")
	}

	state, err := h.services.GameService.Move(ctx, index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.MoveResponse{Board: state.Board, Winner: state.Winner}, http.StatusOK)
}

// reset ignores any request body.
func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	state, err := h.services.GameService.Reset(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, models.ResetResponse{Board: state.Board}, http.StatusOK)
}
