package http

import (
	"net/http"

	"github.com/MKhiriev/gamey-gateway/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	h.writeJSON(w, r, models.BuildInfoResponse{
		Version: info.BuildVersion(),
		Date:    info.BuildDate(),
		Commit:  info.BuildCommit(),
	}, http.StatusOK)
}
