package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tab-keeper/internal/state"
	"github.com/MKhiriev/go-tab-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON: http.StatusBadRequest,

	state.ErrInvalidInput:    http.StatusBadRequest,
	state.ErrNotFound:        http.StatusNotFound,
	state.ErrExpenseResolved: http.StatusConflict,

	validators.ErrInvalidSnapshot: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
