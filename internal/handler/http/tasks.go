package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tab-keeper/internal/state"
)

func (h *Handler) addTask(w http.ResponseWriter, r *http.Request) {
	var in state.NewTask
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	if in.CreatedBy == nil {
		in.CreatedBy = actingOwner(r)
	}

	task, err := h.state.AddTask(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) completeTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.state.CompleteTask(r.Context(), chi.URLParam(r, "id"), actingOwner(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) uncompleteTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.state.UncompleteTask(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.state.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
