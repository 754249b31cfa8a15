package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
)

const DefaultResyncInterval = 5 * time.Minute

// ResyncWorker periodically re-dispatches every collection. Snapshots
// dropped because a sync was already in flight reach the remote on the next
// tick even if no further local change happens.
type ResyncWorker struct {
	resyncer Resyncer
	interval time.Duration
	logger   *logger.Logger
}

// NewResyncWorker returns a worker ticking every interval. If interval is
// zero or negative it defaults to 5 minutes.
func NewResyncWorker(resyncer Resyncer, interval time.Duration, log *logger.Logger) *ResyncWorker {
	if interval <= 0 {
		interval = DefaultResyncInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ResyncWorker{resyncer: resyncer, interval: interval, logger: log}
}

// Run implements Worker.
func (w *ResyncWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.logger.Debug().Dur("interval", w.interval).Msg("periodic resync")
			w.resyncer.Resync()
		}
	}
}
