package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"github.com/MKhiriev/go-job-keeper/models"
)

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.createFolder", err)
		return
	}

	var input models.FolderInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, "*Handler.createFolder", err)
		return
	}

	folder, err := h.services.FolderService.Create(r.Context(), principal, input)
	if err != nil {
		writeError(w, r, "*Handler.createFolder", err)
		return
	}

	_, _ = utils.WriteJSON(w, folder, http.StatusCreated)
}

func (h *Handler) getFolder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.getFolder", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.getFolder", err)
		return
	}

	folder, err := h.services.FolderService.Get(r.Context(), principal, id)
	if err != nil {
		writeError(w, r, "*Handler.getFolder", err)
		return
	}

	_, _ = utils.WriteJSON(w, folder, http.StatusOK)
}

func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.updateFolder", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.updateFolder", err)
		return
	}

	var input models.FolderInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, "*Handler.updateFolder", err)
		return
	}

	folder, err := h.services.FolderService.Update(r.Context(), principal, id, input)
	if err != nil {
		writeError(w, r, "*Handler.updateFolder", err)
		return
	}

	_, _ = utils.WriteJSON(w, folder, http.StatusOK)
}

// deleteFolder removes the folder; its applications stay and become unfiled.
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteFolder", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.deleteFolder", err)
		return
	}

	if err = h.services.FolderService.Delete(r.Context(), principal, id); err != nil {
		writeError(w, r, "*Handler.deleteFolder", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchFolders(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.searchFolders", err)
		return
	}

	params, err := searchParams(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.searchFolders", err)
		return
	}

	page, err := h.services.FolderService.Search(r.Context(), principal, params)
	if err != nil {
		writeError(w, r, "*Handler.searchFolders", err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.dashboard", err)
		return
	}

	query := r.URL.Query()
	page, err := intParam(query, paramPage)
	if err != nil {
		writeError(w, r, "*Handler.dashboard", err)
		return
	}
	perPage, err := intParam(query, paramPerPage)
	if err != nil {
		writeError(w, r, "*Handler.dashboard", err)
		return
	}

	summaries, err := h.services.FolderService.Dashboard(r.Context(), principal, page, perPage)
	if err != nil {
		writeError(w, r, "*Handler.dashboard", err)
		return
	}

	_, _ = utils.WriteJSON(w, summaries, http.StatusOK)
}

func (h *Handler) folderApplications(w http.ResponseWriter, r *http.Request) {
	principal, err := principalFrom(r)
	if err != nil {
		writeError(w, r, "*Handler.folderApplications", err)
		return
	}

	id, err := idParam(r)
	if err != nil {
		writeError(w, r, "*Handler.folderApplications", err)
		return
	}

	params, err := searchParams(r.URL.Query())
	if err != nil {
		writeError(w, r, "*Handler.folderApplications", err)
		return
	}

	page, err := h.services.FolderService.Applications(r.Context(), principal, id, params)
	if err != nil {
		writeError(w, r, "*Handler.folderApplications", err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}
