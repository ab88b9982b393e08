package countdown

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/AdamBeresnev/futsal-cup/internal/logging"
	"github.com/google/uuid"
)

const defaultInterval = time.Second

type options struct {
	interval time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

type Option func(*options)

func WithInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Handle controls one running countdown.
type Handle struct {
	id       uuid.UUID
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	started  atomic.Bool
}

// Start ticks once right away and then every interval until the target has
// passed, Stop is called or ctx is done. A nil display schedules nothing and
// returns nil.
func Start(ctx context.Context, target time.Time, display Display, opts ...Option) *Handle {
	if display == nil {
		return nil
	}
	o := options{interval: defaultInterval, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		id:     uuid.New(),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go h.run(ctx, target, display, o)
	return h
}

func (h *Handle) run(ctx context.Context, target time.Time, display Display, o options) {
	defer close(h.done)
	defer h.cancel()

	logging.Debug(o.logger, "countdown started", logging.FieldTaskID, h.id, logging.FieldTarget, target)

	if h.tick(ctx, target, display, o) {
		return
	}

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Debug(o.logger, "countdown stopped", logging.FieldTaskID, h.id)
			return
		case <-ticker.C:
			if h.tick(ctx, target, display, o) {
				return
			}
		}
	}
}

func (h *Handle) tick(ctx context.Context, target time.Time, display Display, o options) bool {
	if ctx.Err() != nil {
		return true
	}
	if Tick(target, o.now(), display) {
		h.started.Store(true)
		logging.Info(o.logger, "countdown reached start", logging.FieldTaskID, h.id)
		return true
	}
	return false
}

func (h *Handle) ID() uuid.UUID {
	return h.id
}

// Stop cancels the countdown and waits for the tick goroutine to exit, so no
// tick lands after it returns. It must not be called from a Display method.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(h.cancel)
	<-h.done
}

// Done is closed once the countdown will produce no more ticks.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Started reports whether the terminal state was reached.
func (h *Handle) Started() bool {
	return h != nil && h.started.Load()
}

// Timer keeps at most one countdown running. Starting again stops the
// previous countdown first.
type Timer struct {
	mu      sync.Mutex
	current *Handle
	opts    []Option
}

func NewTimer(opts ...Option) *Timer {
	return &Timer{opts: opts}
}

func (t *Timer) Start(ctx context.Context, target time.Time, display Display) *Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current.Stop()
	t.current = Start(ctx, target, display, t.opts...)
	return t.current
}

func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current.Stop()
	t.current = nil
}

// Current returns the running handle, or nil.
func (t *Timer) Current() *Handle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}
