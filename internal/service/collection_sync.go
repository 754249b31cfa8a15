// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tab-keeper/internal/logger"
	"github.com/MKhiriev/go-tab-keeper/internal/utils"
	"github.com/MKhiriev/go-tab-keeper/models"
)

const (
	DefaultDebounceDelay = time.Second
	DefaultMaxAttempts   = 3
)

// SyncOptions tunes the debounce and retry behaviour of a collection sync.
type SyncOptions struct {
	DebounceDelay  time.Duration
	MaxAttempts    int
	RetryBaseDelay time.Duration
}

// DefaultSyncOptions returns a 1s debounce with 3 attempts backing off from
// 500ms.
func DefaultSyncOptions() SyncOptions {
	return SyncOptions{
		DebounceDelay:  DefaultDebounceDelay,
		MaxAttempts:    DefaultMaxAttempts,
		RetryBaseDelay: utils.DefaultRetryBaseDelay,
	}
}

func (o SyncOptions) withDefaults() SyncOptions {
	def := DefaultSyncOptions()
	if o.DebounceDelay < 0 {
		o.DebounceDelay = def.DebounceDelay
	}
	if o.MaxAttempts < 1 {
		o.MaxAttempts = def.MaxAttempts
	}
	if o.RetryBaseDelay <= 0 {
		o.RetryBaseDelay = def.RetryBaseDelay
	}
	return o
}

// CollectionSync mirrors one local collection to the remote store.
//
// Sync returns immediately. After DebounceDelay without another Sync, the
// latest snapshot goes through the guard and, if allowed, is transformed
// into remote rows and upserted with retries. Failures are logged, never
// returned.
type CollectionSync[S any] struct {
	collection  models.Collection
	state       *SyncState
	retrier     *utils.Retrier
	maxAttempts int
	upsert      func(ctx context.Context, snapshot S) error
	debouncer   *utils.Debouncer[S]
	logger      *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func newCollectionSync[S, P any](
	collection models.Collection,
	transform func(S) P,
	upsert func(ctx context.Context, payload P) error,
	opts SyncOptions,
	log *logger.Logger,
) *CollectionSync[S] {
	opts = opts.withDefaults()
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithCollection(collection.String())

	ctx, cancel := context.WithCancel(context.Background())
	cs := &CollectionSync[S]{
		collection:  collection,
		state:       NewSyncState(),
		retrier:     utils.NewRetrier(opts.RetryBaseDelay, log),
		maxAttempts: opts.MaxAttempts,
		upsert: func(ctx context.Context, snapshot S) error {
			return upsert(ctx, transform(snapshot))
		},
		logger: log,
		ctx:    ctx,
		cancel: cancel,
	}
	cs.debouncer = utils.NewDebouncer(opts.DebounceDelay, cs.run, cs.onError)

	return cs
}

// Sync schedules snapshot for upload, superseding any snapshot still
// waiting for its debounce delay.
func (c *CollectionSync[S]) Sync(snapshot S) {
	c.debouncer.Dispatch(snapshot)
}

// State exposes the guard of this collection.
func (c *CollectionSync[S]) State() *SyncState {
	return c.state
}

// Flush waits for a cycle already in flight, then runs a pending cycle now on
// the calling goroutine. A snapshot queued behind a running upsert is pushed
// instead of being skipped by the guard.
func (c *CollectionSync[S]) Flush() {
	c.debouncer.Wait()
	c.debouncer.Flush()
	c.debouncer.Wait()
}

// Stop drops a pending cycle and aborts backoff waits of a running one.
func (c *CollectionSync[S]) Stop() {
	c.debouncer.Stop()
	c.cancel()
}

// Wait blocks until every started cycle has returned.
func (c *CollectionSync[S]) Wait() {
	c.debouncer.Wait()
}

func (c *CollectionSync[S]) run(snapshot S) error {
	ok, reason := c.state.TryAcquire()
	if !ok {
		c.logger.Debug().Str("reason", string(reason)).Msg("sync skipped")
		return nil
	}
	defer c.state.Release()

	c.logger.Info().Msgf("syncing %s", c.collection)

	return c.retrier.Do(c.ctx, func(ctx context.Context) error {
		return c.upsert(ctx, snapshot)
	}, c.maxAttempts, c.collection.String())
}

func (c *CollectionSync[S]) onError(err error) {
	c.logger.Error().Err(err).Msgf("failed to sync %s", c.collection)
}
