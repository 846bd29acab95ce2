// Core wrapper state and the reopen scheduling policy.
//
// Every operation acquires mu for its full duration, so exactly one
// logical call manipulates the underlying handle at a time. The pending
// flag lives outside mu, in the shared *Handle, and is consulted once
// at operation entry: bulk calls therefore land on one handle even when
// a trigger fires while they run. The suppression count is a separate
// atomic so Lock never needs mu either.
//
// On a successful swap the old handle is closed if it supports closing;
// the close error is discarded, since the handle is being abandoned and
// surfacing it would make a successful reopen look failed. On a failed
// swap the old handle stays installed and the pending flag stays
// cleared, so a persistently failing factory yields one error per
// explicit request rather than an error storm.
package reopen

import (
	"io"
	"sync"
	"sync/atomic"
)

// stream is the state shared by Reader and Writer: the current handle,
// the factory that replaces it, and the trigger bookkeeping.
type stream[H any] struct {
	handle  H
	factory func() (H, error)
	h       *Handle
	hold    atomic.Int32
	mu      sync.Mutex
	closed  bool
}

// open runs the factory once for construction. Failure produces no
// wrapper at all.
func open[H any](h *Handle, factory func() (H, error)) (*stream[H], error) {
	fd, err := factory()
	if err != nil {
		return nil, err
	}
	return &stream[H]{handle: fd, factory: factory, h: h}, nil
}

// Handle returns the wrapper's trigger. The same *Handle is returned
// every time; it remains valid (and harmless) after Close or after the
// wrapper is dropped.
func (s *stream[H]) Handle() *Handle {
	return s.h
}

// Lock suspends automatic reopening until the returned release
// function is called. Nested calls stack; reopening resumes only after
// every release has run. A trigger fired while locked stays pending and
// is honored by the first operation after the final release; release
// itself performs no reopen. The release function is idempotent, so
// deferring it alongside an explicit call is safe.
func (s *stream[H]) Lock() (release func()) {
	s.hold.Add(1)
	var once sync.Once
	return func() {
		once.Do(func() { s.hold.Add(-1) })
	}
}

// Close closes the current handle if it supports closing and marks the
// wrapper closed. Subsequent operations return ErrClosed; a pending
// trigger on a closed wrapper is never honored. Idempotent.
func (s *stream[H]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := any(s.handle).(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// check is the single scheduling point, run at the entry of every
// operation with mu held. It consumes at most one pending request; on
// factory failure the previous handle stays installed and the request
// is not re-armed.
func (s *stream[H]) check() error {
	if s.closed {
		return ErrClosed
	}
	if s.hold.Load() > 0 {
		return nil
	}
	if !s.h.take() {
		return nil
	}
	fd, err := s.factory()
	if err != nil {
		return &OpenError{Err: err}
	}
	if c, ok := any(s.handle).(io.Closer); ok {
		c.Close()
	}
	s.handle = fd
	return nil
}
