package services

import (
	"context"
	"sync"
	"time"

	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/domain"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/core/ports/driving"
	"github.com/RonaldoArSan/clinicflow25-sub001/internal/logger"
)

// executeFunc runs an accepted query and returns its result page.
type executeFunc func(ctx context.Context, opts domain.SearchOptions) ([]domain.SearchResult, error)

// Debouncer serialises rapid successive query submissions into one
// effective query per quiet period. Each submission arms a timer; a newer
// submission stops the pending timer before it fires, so at most one
// execution is ever pending. The generation counter increments once per
// accepted query and tags every outcome, letting callers discard stale
// completions that finish out of order.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	execute executeFunc

	timer      *time.Timer
	pending    chan driving.SearchOutcome
	generation uint64
	closed     bool
}

// NewDebouncer creates a debounce coordinator with the given quiet period.
// A non-positive delay falls back to domain.DefaultDebounceDelay.
func NewDebouncer(delay time.Duration, execute executeFunc) *Debouncer {
	if delay <= 0 {
		delay = domain.DefaultDebounceDelay
	}
	return &Debouncer{delay: delay, execute: execute}
}

// Submit schedules a query for execution after the quiet period. The
// returned channel delivers exactly one outcome: the settled result page,
// a superseded marker when a newer submission replaced this one, or an
// error from the execution itself.
func (d *Debouncer) Submit(ctx context.Context, opts domain.SearchOptions) <-chan driving.SearchOutcome {
	ch := make(chan driving.SearchOutcome, 1)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		ch <- driving.SearchOutcome{Err: domain.ErrSessionClosed}
		return ch
	}

	// Cancel the pending timer, if any, and tell its waiter it lost.
	d.supersedePendingLocked()

	d.pending = ch
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(ctx, opts, ch)
	})

	return ch
}

// fire runs when a timer survives the quiet period uncancelled.
func (d *Debouncer) fire(ctx context.Context, opts domain.SearchOptions, ch chan driving.SearchOutcome) {
	d.mu.Lock()
	if d.pending != ch {
		// A newer submission raced the timer; its Submit already
		// delivered the superseded outcome on ch.
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.timer = nil
	d.generation++
	gen := d.generation
	d.mu.Unlock()

	logger.Debug("Debounce window settled, executing generation %d", gen)
	results, err := d.execute(ctx, opts)

	// A slow execution may have been overtaken by a newer generation.
	// The stale outcome is marked superseded so callers drop it.
	d.mu.Lock()
	stale := gen < d.generation
	d.mu.Unlock()

	if stale {
		logger.Debug("Generation %d superseded during execution", gen)
		ch <- driving.SearchOutcome{Generation: gen, Superseded: true}
		return
	}
	ch <- driving.SearchOutcome{Generation: gen, Results: results, Err: err}
}

// supersedePendingLocked stops the armed timer and resolves its waiter as
// superseded. Callers must hold d.mu.
func (d *Debouncer) supersedePendingLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.pending != nil {
		d.pending <- driving.SearchOutcome{Generation: d.generation, Superseded: true}
		d.pending = nil
	}
}

// Generation returns the latest accepted query generation.
func (d *Debouncer) Generation() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.generation
}

// Close cancels any pending submission and rejects future ones.
func (d *Debouncer) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.supersedePendingLocked()
	d.closed = true
	return nil
}
