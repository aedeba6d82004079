package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"github.com/MKhiriev/go-job-keeper/models"
)

func (h *Handler) createApplication(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.createApplication", err)
		return
	}

	var input models.ApplicationInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, "*Handler.createApplication", err)
		return
	}

	app, err := h.services.ApplicationService.Create(r.Context(), principal, input)
	if err != nil {
		writeError(w, r, "*Handler.createApplication", err)
		return
	}

	_, _ = utils.WriteJSON(w, app, http.StatusCreated)
}

func (h *Handler) getApplication(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.getApplication", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getApplication", err)
		return
	}

	app, err := h.services.ApplicationService.Get(r.Context(), principal, id)
	if err != nil {
		writeError(w, r, "*Handler.getApplication", err)
		return
	}

	_, _ = utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) updateApplication(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.updateApplication", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateApplication", err)
		return
	}

	var input models.ApplicationInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, "*Handler.updateApplication", err)
		return
	}

	app, err := h.services.ApplicationService.Update(r.Context(), principal, id, input)
	if err != nil {
		writeError(w, r, "*Handler.updateApplication", err)
		return
	}

	_, _ = utils.WriteJSON(w, app, http.StatusOK)
}

func (h *Handler) deleteApplication(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteApplication", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteApplication", err)
		return
	}

	if err = h.services.ApplicationService.Delete(r.Context(), principal, id); err != nil {
		writeError(w, r, "*Handler.deleteApplication", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchApplications(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.searchApplications", err)
		return
	}

	params, err := searchParams(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.searchApplications", err)
		return
	}

	page, err := h.services.ApplicationService.Search(r.Context(), principal, params)
	if err != nil {
		writeError(w, r, "*Handler.searchApplications", err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}
