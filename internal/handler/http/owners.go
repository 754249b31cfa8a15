package http

import (
	"net/http"

	"github.com/MKhiriev/go-tab-keeper/internal/state"
	"github.com/MKhiriev/go-tab-keeper/models"
)

type addTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *Handler) addTag(w http.ResponseWriter, r *http.Request) {
	var req addTagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tag, err := h.state.AddTag(r.Context(), req.Name, req.Color)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tag)
}

func (h *Handler) addOwner(w http.ResponseWriter, r *http.Request) {
	var in state.NewOwner
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	owner, err := h.state.AddOwner(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, owner)
}

func (h *Handler) setPermissions(w http.ResponseWriter, r *http.Request) {
	var perms models.AppPermissions
	if err := decodeJSON(r, &perms); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.state.SetPermissions(r.Context(), perms); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
