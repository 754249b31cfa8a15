package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
)

// ownerIDHeader names the acting owner. It fills created_by, completed_by
// and approved_by on mutations and may be absent.
const ownerIDHeader = "X-Owner-ID"

type errorResponse struct {
	Error string `json:"error"`
}

func actingOwner(r *http.Request) *string {
	id := r.Header.Get(ownerIDHeader)
	if id == "" {
		return nil
	}
	return &id
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError logs err and answers with the status mapped from it. Internal
// errors are not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, status, errorResponse{Error: message})
}
