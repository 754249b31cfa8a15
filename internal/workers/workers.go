package workers

import (
	"context"
	"sync"
)

// Workers runs a set of workers on background goroutines.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start stops any previously started run, then launches every worker on its
// own goroutine. Workers exit when ctx is cancelled or Stop is called.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(len(w.workers))
	w.mu.Unlock()

	for _, worker := range w.workers {
		go func() {
			defer w.wg.Done()
			worker.Run(runCtx)
		}()
	}
}

// Stop cancels the running workers and blocks until all of them have
// returned. Safe to call when nothing is running.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
