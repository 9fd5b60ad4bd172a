package advisor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultDebounce is how long inputs must stay unchanged before a request is sent
const DefaultDebounce = 1500 * time.Millisecond

// Debouncer coalesces bursts of requests into one advisory call. Each Trigger
// cancels any pending or in-flight call; only the newest answer is delivered.
type Debouncer struct {
	adv      Advisor
	deliver  func(Insight)
	interval time.Duration
	timeout  time.Duration
	logger   *zap.Logger

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// DebouncerOption configures a Debouncer
type DebouncerOption func(*Debouncer)

// WithInterval overrides DefaultDebounce
func WithInterval(d time.Duration) DebouncerOption {
	return func(db *Debouncer) { db.interval = d }
}

// WithTimeout bounds each advisory call
func WithTimeout(d time.Duration) DebouncerOption {
	return func(db *Debouncer) { db.timeout = d }
}

// WithLogger sets the structured logger
func WithLogger(l *zap.Logger) DebouncerOption {
	return func(db *Debouncer) {
		if l != nil {
			db.logger = l
		}
	}
}

// NewDebouncer creates a debouncer. deliver is called from a background goroutine
// while the debouncer's lock is held, so it must not block or call back into d.
func NewDebouncer(adv Advisor, deliver func(Insight), opts ...DebouncerOption) *Debouncer {
	d := &Debouncer{
		adv:      adv,
		deliver:  deliver,
		interval: DefaultDebounce,
		timeout:  DefaultTimeout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger schedules req after the debounce interval, superseding earlier requests
func (d *Debouncer) Trigger(req Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.stopLocked()
	d.seq++
	seq := d.seq

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.wg.Add(1)
	d.timer = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()
		d.run(ctx, seq, req)
	})
}

func (d *Debouncer) run(ctx context.Context, seq uint64, req Request) {
	insight := Fetch(ctx, d.adv, req, d.timeout)

	if insight.Err != nil {
		d.logger.Warn("Advisory unavailable",
			zap.String("request_id", req.ID),
			zap.Duration("latency", insight.Latency),
			zap.Error(insight.Err))
	}

	if !d.deliverIfCurrent(ctx, seq, insight) {
		d.logger.Debug("Dropping superseded insight", zap.String("request_id", req.ID))
		return
	}
	d.logger.Info("Advisory delivered",
		zap.String("request_id", req.ID),
		zap.Duration("latency", insight.Latency),
		zap.Bool("fallback", insight.Fallback))
}

// deliverIfCurrent hands insight to deliver only while seq is still the newest
// request. The check and the hand-off share the lock so a concurrent Trigger
// cannot slip between them.
func (d *Debouncer) deliverIfCurrent(ctx context.Context, seq uint64, insight Insight) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if ctx.Err() != nil || d.closed || seq != d.seq {
		return false
	}
	d.deliver(insight)
	return true
}

// stopLocked cancels the pending timer and any in-flight call
func (d *Debouncer) stopLocked() {
	if d.timer != nil && d.timer.Stop() {
		// the callback will never run, so release its slot here
		d.wg.Done()
	}
	if d.cancel != nil {
		d.cancel()
	}
}

// Close cancels outstanding work and waits for running callbacks to finish
func (d *Debouncer) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	d.stopLocked()
	d.mu.Unlock()

	d.wg.Wait()
}
