// The read-side view of the wrapper.
//
// Reaching EOF is not necessarily final here: draining the current
// handle returns EOF as usual, but a reopen may make the stream
// readable again with fresh content. ReadAll and WriteTo are the bulk
// paths and run under one lock with one entry check each.
package reopen

import "io"

// Reader is an io.Reader proxy that can reopen the underlying object.
// It is constructed with a factory that opens a new instance; when its
// Handle is fired, the next operation drops the old instance and swaps
// in a fresh one before reading. All methods are safe for concurrent
// use and are serialized on the underlying handle.
type Reader[H io.Reader] struct {
	*stream[H]
}

// NewReader calls factory once and wraps the result. The factory must
// be safe to call repeatedly over the process lifetime; it runs again
// on every reopen. If the initial call fails its error is returned and
// no Reader is produced.
func NewReader[H io.Reader](factory func() (H, error)) (*Reader[H], error) {
	return NewReaderWith(NewHandle(), factory)
}

// NewReaderWith is NewReader with a caller-supplied Handle, for when
// the trigger must exist before the stream does.
func NewReaderWith[H io.Reader](h *Handle, factory func() (H, error)) (*Reader[H], error) {
	s, err := open(h, factory)
	if err != nil {
		return nil, err
	}
	return &Reader[H]{stream: s}, nil
}

// Read performs one read on the current handle, reopening first if a
// request is pending. A reopen failure is returned as *OpenError
// without attempting the read; errors from the handle itself,
// including io.EOF, pass through unchanged.
func (r *Reader[H]) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(); err != nil {
		return 0, err
	}
	return r.handle.Read(p)
}

// ReadAll reads the current handle until EOF and returns the data. The
// reopen check runs once at entry and the handle lock is held
// throughout, so the result comes from a single handle.
func (r *Reader[H]) ReadAll() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(); err != nil {
		return nil, err
	}
	return io.ReadAll(r.handle)
}

// WriteTo copies the current handle to dst until EOF. Same single
// check, single handle policy as ReadAll.
func (r *Reader[H]) WriteTo(dst io.Writer) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(); err != nil {
		return 0, err
	}
	return io.Copy(dst, r.handle)
}
