// The trigger side of the wrapper.
//
// A Handle is the only thing asynchronous code needs to hold. It is a
// bare atomic flag: setting it never allocates, never blocks, and never
// touches the stream handle, so it cannot deadlock against an operation
// that is mid-I/O. The wrapper and every copy of its *Handle share the
// same flag; the garbage collector keeps the flag alive for as long as
// any holder remains, so a Handle stays safe to fire after its wrapper
// is gone (it just sets a flag nobody reads anymore).
package reopen

import "sync/atomic"

// Handle signals a companion wrapper to reopen its underlying stream on
// the next operation. The zero value is ready to use; *Handle values
// are freely shareable across goroutines.
type Handle struct {
	pending atomic.Bool
}

// NewHandle creates an unpaired handle. It can be attached to a wrapper
// later with NewReaderWith or NewWriterWith, which is useful when the
// trigger must exist before the stream does. Attaching one handle to
// multiple wrappers will not work as expected: the first wrapper to
// observe the flag clears it and the others never reopen.
func NewHandle() *Handle {
	return new(Handle)
}

// Reopen requests that the companion wrapper swap in a fresh handle on
// its next operation. Any number of requests before that operation
// collapse into a single reopen. Safe to call from any goroutine at any
// time, including after the wrapper has been closed or dropped.
func (h *Handle) Reopen() {
	h.pending.Store(true)
}

// take consumes a pending request, returning whether one was set.
// A compare-and-swap keeps the no-request fast path read-only.
func (h *Handle) take() bool {
	return h.pending.CompareAndSwap(true, false)
}
