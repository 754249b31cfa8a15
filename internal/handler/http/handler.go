package http

import (
	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/validators"
)

type Handler struct {
	state     LocalState
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(state LocalState, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		state:     state,
		validator: validators.NewSnapshotValidator(),
		logger:    logger,
	}
}
