package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetAppInfo(r.Context())

	_, _ = utils.WriteJSON(w, info, http.StatusOK)
}
