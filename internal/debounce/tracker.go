package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"
)

// CommitMsg is delivered by the tick scheduled from Tracker.Observe.
// Only the tracker that issued it, and only for its latest observation,
// will accept it.
type CommitMsg struct {
	ID  string
	Seq uint64
}

// Tracker is a debounce session driven by the Bubble Tea event loop.
// Scheduled ticks cannot be withdrawn, so superseded ticks are discarded when
// they arrive. A Tracker must only be used from the model's Update.
type Tracker[T any] struct {
	id    string
	delay time.Duration
	state session[T]
}

// NewTracker creates an event-loop session whose committed value starts at
// initial.
func NewTracker[T any](initial T, delay time.Duration) *Tracker[T] {
	return &Tracker[T]{
		id:    ulid.Make().String(),
		delay: normalizeDelay(delay),
		state: newSession(initial),
	}
}

// ID returns the identifier carried by this tracker's CommitMsg values.
func (t *Tracker[T]) ID() string {
	return t.id
}

// Observe records v and returns the command that delivers its commit after
// the current delay. It returns nil once the tracker is closed.
func (t *Tracker[T]) Observe(v T) tea.Cmd {
	return t.ObserveWithDelay(v, t.delay)
}

// ObserveWithDelay is Observe with an explicit delay, which becomes the
// tracker's current delay.
func (t *Tracker[T]) ObserveWithDelay(v T, delay time.Duration) tea.Cmd {
	seq, ok := t.state.observe(v)
	if !ok {
		return nil
	}
	t.delay = normalizeDelay(delay)

	id := t.id
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		return CommitMsg{ID: id, Seq: seq}
	})
}

// Update applies msg if it is the live CommitMsg for this tracker and reports
// whether the committed value changed hands.
func (t *Tracker[T]) Update(msg tea.Msg) bool {
	commit, ok := msg.(CommitMsg)
	if !ok || commit.ID != t.id {
		return false
	}
	return t.state.commit(commit.Seq)
}

// Value returns the committed value.
func (t *Tracker[T]) Value() T {
	return t.state.committed
}

// Latest returns the most recently observed value.
func (t *Tracker[T]) Latest() T {
	return t.state.latest
}

// Pending reports whether a commit is outstanding.
func (t *Tracker[T]) Pending() bool {
	return t.state.pending
}

// Delay returns the delay applied by Observe.
func (t *Tracker[T]) Delay() time.Duration {
	return t.delay
}

// Close tears the session down; ticks already in flight are ignored.
func (t *Tracker[T]) Close() {
	t.state.close()
}
