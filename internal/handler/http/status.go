package http

import (
	"net/http"

	"github.com/MKhiriev/gamey-gateway/models"
)

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, models.MessageResponse{Message: "OK"}, http.StatusOK)
}
