package debounce

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Debouncer.
type Option[T any] func(*Debouncer[T])

// WithClock sets the scheduler used for deferred commits.
func WithClock[T any](clock Clock) Option[T] {
	return func(d *Debouncer[T]) {
		if clock != nil {
			d.clock = clock
		}
	}
}

// WithOnCommit registers an observer notified after every commit.
func WithOnCommit[T any](fn func(T)) Option[T] {
	return func(d *Debouncer[T]) {
		if fn != nil {
			d.addObserver(fn)
		}
	}
}

// WithLogger sets the logger used for schedule and commit tracing.
func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(d *Debouncer[T]) {
		d.logger = logger
	}
}

// Debouncer is a timer-driven debounce session. All methods are safe for
// concurrent use. Observers run on the timer goroutine, outside the lock.
type Debouncer[T any] struct {
	mu        sync.Mutex
	clock     Clock
	delay     time.Duration
	state     session[T]
	timer     Timer
	observers map[uint64]func(T)
	nextObs   uint64
	logger    zerolog.Logger
}

// New creates a session whose committed value starts at initial. Negative
// delays are treated as zero.
func New[T any](initial T, delay time.Duration, opts ...Option[T]) *Debouncer[T] {
	d := &Debouncer[T]{
		clock:     RealClock(),
		delay:     normalizeDelay(delay),
		state:     newSession(initial),
		observers: make(map[uint64]func(T)),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDefault creates a session using DefaultDelay.
func NewDefault[T any](initial T, opts ...Option[T]) *Debouncer[T] {
	return New(initial, DefaultDelay, opts...)
}

// Observe records v and reschedules the commit using the current delay.
func (d *Debouncer[T]) Observe(v T) {
	d.mu.Lock()
	delay := d.delay
	d.mu.Unlock()
	d.ObserveWithDelay(v, delay)
}

// ObserveWithDelay records v, cancels the pending commit and schedules a new
// one after delay. The delay becomes the session's current delay.
func (d *Debouncer[T]) ObserveWithDelay(v T, delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	seq, ok := d.state.observe(v)
	if !ok {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.delay = normalizeDelay(delay)
	d.timer = d.clock.AfterFunc(d.delay, func() { d.fire(seq) })
	d.logger.Trace().Uint64("seq", seq).Dur("delay", d.delay).Msg("debounce commit scheduled")
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.mu.Lock()
	if !d.state.commit(seq) {
		d.mu.Unlock()
		d.logger.Trace().Uint64("seq", seq).Msg("stale debounce timer discarded")
		return
	}
	d.timer = nil
	value := d.state.committed
	observers := make([]func(T), 0, len(d.observers))
	for _, fn := range d.observers {
		observers = append(observers, fn)
	}
	d.mu.Unlock()

	d.logger.Trace().Uint64("seq", seq).Msg("debounce committed")
	for _, fn := range observers {
		fn(value)
	}
}

// Value returns the committed value.
func (d *Debouncer[T]) Value() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.committed
}

// Latest returns the most recently observed value.
func (d *Debouncer[T]) Latest() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.latest
}

// Pending reports whether a commit is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.pending
}

// Delay returns the delay applied by Observe.
func (d *Debouncer[T]) Delay() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.delay
}

// Subscribe registers fn to be called with every committed value and returns
// a function that removes it.
func (d *Debouncer[T]) Subscribe(fn func(T)) func() {
	d.mu.Lock()
	id := d.addObserver(fn)
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		delete(d.observers, id)
		d.mu.Unlock()
	}
}

// addObserver must be called with mu held or before the session is shared.
func (d *Debouncer[T]) addObserver(fn func(T)) uint64 {
	d.nextObs++
	d.observers[d.nextObs] = fn
	return d.nextObs
}

// Close tears the session down. A pending commit is cancelled and later
// observations are ignored. Close is idempotent.
func (d *Debouncer[T]) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.state.close() {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.logger.Trace().Msg("debounce session closed")
}
