package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-tab-keeper/internal/validators"
)

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state.Snapshot())
}

// replace builds a handler that decodes the full collection from the body,
// validates it and hands it to set.
func replace[T any](validator validators.Validator, set func(ctx context.Context, snapshot T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var snapshot T
		if err := decodeJSON(r, &snapshot); err != nil {
			writeError(w, r, err)
			return
		}

		if err := validator.Validate(r.Context(), snapshot); err != nil {
			writeError(w, r, err)
			return
		}

		set(r.Context(), snapshot)
		w.WriteHeader(http.StatusNoContent)
	}
}
