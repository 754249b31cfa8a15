package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tab-keeper/internal/state"
)

func (h *Handler) addScheduledEvent(w http.ResponseWriter, r *http.Request) {
	var in state.NewScheduledEvent
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	if in.CreatedBy == nil {
		in.CreatedBy = actingOwner(r)
	}

	event, err := h.state.AddScheduledEvent(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) deleteScheduledEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.state.DeleteScheduledEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
