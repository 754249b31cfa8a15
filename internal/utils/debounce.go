package utils

import (
	"fmt"
	"sync"
	"time"
)

// Debouncer collapses bursts of Dispatch calls into a single trailing call of
// op carrying the most recent argument. op runs on its own goroutine once
// delay has elapsed without another Dispatch.
//
// Errors (and panics) from op are handed to onError and never reach the
// caller of Dispatch. The pending timer and argument are cleared before op
// starts, so a failing op never prevents later dispatches from scheduling.
type Debouncer[T any] struct {
	delay   time.Duration
	op      func(T) error
	onError func(error)

	mu         sync.Mutex
	timer      *time.Timer
	pending    T
	hasPending bool
	// seq identifies the latest scheduled timer. A timer whose callback was
	// already running when Dispatch replaced it sees a newer seq and bails.
	seq uint64

	// inFlight counts calls of op that have started and not yet returned.
	// It shares mu with the pending state so Wait never misses a call that
	// take is about to start.
	inFlight int
	idle     *sync.Cond
}

// NewDebouncer returns a Debouncer that runs op delay after the last
// Dispatch. onError may be nil, in which case failures are dropped.
func NewDebouncer[T any](delay time.Duration, op func(T) error, onError func(error)) *Debouncer[T] {
	if onError == nil {
		onError = func(error) {}
	}
	d := &Debouncer[T]{
		delay:   delay,
		op:      op,
		onError: onError,
	}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Dispatch schedules op(arg) and returns immediately. A call made before the
// previous timer fired cancels it and discards its argument.
func (d *Debouncer[T]) Dispatch(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.seq++
	seq := d.seq
	d.pending = arg
	d.hasPending = true
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(seq)
	})
}

// Flush runs a pending call synchronously on the calling goroutine instead of
// waiting for its timer. It is a no-op when nothing is pending.
func (d *Debouncer[T]) Flush() {
	arg, ok := d.take(0, false)
	if !ok {
		return
	}
	defer d.done()
	d.run(arg)
}

// Stop drops a pending call, if any. Calls already running are not affected.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.clearLocked()
}

// Pending reports whether a call is scheduled but has not started yet.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.hasPending
}

// Wait blocks until every call that has already started has returned.
func (d *Debouncer[T]) Wait() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for d.inFlight > 0 {
		d.idle.Wait()
	}
}

func (d *Debouncer[T]) fire(seq uint64) {
	arg, ok := d.take(seq, true)
	if !ok {
		return
	}
	defer d.done()
	d.run(arg)
}

// take claims the pending argument and clears the timer state. When
// checkSeq is set, only the timer identified by seq may claim it.
func (d *Debouncer[T]) take(seq uint64, checkSeq bool) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if !d.hasPending || (checkSeq && seq != d.seq) {
		return zero, false
	}

	arg := d.pending
	d.clearLocked()
	d.inFlight++

	return arg, true
}

func (d *Debouncer[T]) done() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.inFlight--
	if d.inFlight == 0 {
		d.idle.Broadcast()
	}
}

func (d *Debouncer[T]) clearLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	var zero T
	d.pending = zero
	d.hasPending = false
	d.seq++
}

func (d *Debouncer[T]) run(arg T) {
	defer func() {
		if r := recover(); r != nil {
			d.onError(fmt.Errorf("%w: %v", ErrDebouncedPanic, r))
		}
	}()

	if err := d.op(arg); err != nil {
		d.onError(err)
	}
}
