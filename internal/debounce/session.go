package debounce

import "time"

// DefaultDelay is the quiet period used when no delay is supplied.
const DefaultDelay = time.Second

// session is the state shared by both drivers. It is not safe for concurrent
// use; Debouncer guards it with a mutex and Tracker relies on the event loop.
//
// seq identifies the one commit that may still fire. Every observation and the
// teardown bump it, so a superseded timer or tick is recognized as stale even
// if it could not be withdrawn in time.
type session[T any] struct {
	latest    T
	committed T
	seq       uint64
	pending   bool
	closed    bool
}

func newSession[T any](initial T) session[T] {
	return session[T]{latest: initial, committed: initial}
}

// observe records v and returns the generation of the commit to schedule.
// It reports false once the session is closed.
func (s *session[T]) observe(v T) (uint64, bool) {
	if s.closed {
		return 0, false
	}
	s.latest = v
	s.seq++
	s.pending = true
	return s.seq, true
}

// commit promotes latest to committed if seq is still the live generation.
func (s *session[T]) commit(seq uint64) bool {
	if s.closed || !s.pending || seq != s.seq {
		return false
	}
	s.committed = s.latest
	s.pending = false
	return true
}

// close invalidates any outstanding generation. It reports whether the
// session was open.
func (s *session[T]) close() bool {
	if s.closed {
		return false
	}
	s.closed = true
	s.seq++
	s.pending = false
	return true
}

// normalizeDelay maps negative delays to zero, which fires on the next tick.
func normalizeDelay(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
