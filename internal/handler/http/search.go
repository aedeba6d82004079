package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-keeper/internal/utils"
)

// search runs one query over folders and applications.
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.search", err)
		return
	}

	params, err := searchParams(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.search", err)
		return
	}

	result, err := h.services.SearchService.Search(r.Context(), principal, params)
	if err != nil {
		writeError(w, r, "*Handler.search", err)
		return
	}

	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}
