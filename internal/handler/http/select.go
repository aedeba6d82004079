package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"github.com/MKhiriev/go-job-keeper/models"
)

// Lookup routes share one set of handlers; the {kind} segment ("tags",
// "statuses" or "priorities") picks the table.

func (h *Handler) createSelect(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.createSelect", err)
		return
	}

	kind, err := kindParam(r)
	if err != nil {
		writeError(w, r, "*Handler.createSelect", err)
		return
	}

	var input models.SelectInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, "*Handler.createSelect", err)
		return
	}

	item, err := h.services.SelectService.Create(r.Context(), principal, kind, input)
	if err != nil {
		writeError(w, r, "*Handler.createSelect", err)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) getSelect(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.getSelect", err)
		return
	}

	kind, err := kindParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getSelect", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getSelect", err)
		return
	}

	item, err := h.services.SelectService.Get(r.Context(), principal, kind, id)
	if err != nil {
		writeError(w, r, "*Handler.getSelect", err)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateSelect(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.updateSelect", err)
		return
	}

	kind, err := kindParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateSelect", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateSelect", err)
		return
	}

	var input models.SelectInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, "*Handler.updateSelect", err)
		return
	}

	item, err := h.services.SelectService.Update(r.Context(), principal, kind, id, input)
	if err != nil {
		writeError(w, r, "*Handler.updateSelect", err)
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

// deleteSelect removes the entry and detaches it from every application.
func (h *Handler) deleteSelect(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteSelect", err)
		return
	}

	kind, err := kindParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteSelect", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteSelect", err)
		return
	}

	if err = h.services.SelectService.Delete(r.Context(), principal, kind, id); err != nil {
		writeError(w, r, "*Handler.deleteSelect", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchSelects(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.searchSelects", err)
		return
	}

	kind, err := kindParam(r)
	if err != nil {
		writeError(w, r, "*Handler.searchSelects", err)
		return
	}

	params, err := searchParams(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.searchSelects", err)
		return
	}

	page, err := h.services.SelectService.Search(r.Context(), principal, kind, params)
	if err != nil {
		writeError(w, r, "*Handler.searchSelects", err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.catalog", err)
		return
	}

	catalog, err := h.services.SelectService.Catalog(r.Context(), principal)
	if err != nil {
		writeError(w, r, "*Handler.catalog", err)
		return
	}

	_, _ = utils.WriteJSON(w, catalog, http.StatusOK)
}
