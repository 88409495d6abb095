// Package debounce delays the promotion of a rapidly changing value until the
// input has been quiet for a configured period.
//
// A debounce session holds the latest observed value and the committed value
// that consumers read. Every observation cancels the pending commit and
// schedules a new one, so the committed value only ever moves to the most
// recent input once no newer input arrived within the delay:
//
//	d := debounce.New("", 300*time.Millisecond, debounce.WithOnCommit(func(q string) {
//	    search(q)
//	}))
//	defer d.Close()
//
//	d.Observe("a")
//	d.Observe("ab")
//	d.Observe("abc") // only "abc" is committed, 300ms after this call
//
// Two drivers share the same session contract:
//   - Debouncer: timer based and safe for concurrent use.
//   - Tracker: driven by the Bubble Tea event loop through tea.Tick commands,
//     for models that must stay single-threaded.
//
// Closing a session cancels any pending commit; nothing is committed after
// Close returns.
package debounce
