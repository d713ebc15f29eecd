package lookup

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces rapid successive inputs into a single upstream fetch:
// only the most recent input after the settle delay triggers a request, and a
// stale in-flight response is never applied once a newer input was submitted.
//
// Each submission takes the next value of a monotonically increasing sequence;
// the fetched result is applied only while its sequence is still the latest.
type Debouncer[Q, R any] struct {
	delay time.Duration
	fetch func(ctx context.Context, query Q) (R, error)
	apply func(query Q, result R, err error)

	mu      sync.Mutex
	seq     uint64
	pending *time.Timer
	cancel  context.CancelFunc
}

func NewDebouncer[Q, R any](
	delay time.Duration,
	fetch func(ctx context.Context, query Q) (R, error),
	apply func(query Q, result R, err error),
) *Debouncer[Q, R] {
	return &Debouncer[Q, R]{
		delay: delay,
		fetch: fetch,
		apply: apply,
	}
}

// Submit schedules a fetch for query after the settle delay. A previously
// scheduled fetch that has not fired yet is cancelled; an in-flight fetch is
// invalidated and its context cancelled.
func (d *Debouncer[Q, R]) Submit(ctx context.Context, query Q) {
	d.mu.Lock()
	d.seq++
	seq := d.seq
	d.supersedeLocked()
	d.pending = time.AfterFunc(d.delay, func() {
		d.run(ctx, seq, query)
	})
	d.mu.Unlock()
}

// Cancel drops any pending or in-flight lookup without a replacement.
func (d *Debouncer[Q, R]) Cancel() {
	d.mu.Lock()
	d.seq++
	d.supersedeLocked()
	d.mu.Unlock()
}

func (d *Debouncer[Q, R]) supersedeLocked() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *Debouncer[Q, R]) run(ctx context.Context, seq uint64, query Q) {
	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()
		return
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.mu.Unlock()

	result, err := d.fetch(fetchCtx, query)
	cancel()

	d.mu.Lock()
	stale := seq != d.seq
	d.mu.Unlock()
	if stale {
		// A newer submission won the race; this response must not be applied.
		return
	}

	d.apply(query, result, err)
}
