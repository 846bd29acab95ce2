// The write-side view of the wrapper.
//
// Write is one logical operation: the reopen check runs once, then a
// single Write goes to the current handle. ReadFrom is the bulk path:
// it drains its source under one lock with one entry check, so a
// trigger fired mid-copy takes effect only on the next call. Both
// satisfy the standard io interfaces, which routes io.Copy and friends
// through the bulk path automatically.
package reopen

import "io"

// Writer is an io.Writer proxy that can reopen the underlying object.
// It is constructed with a factory that opens a new instance; when its
// Handle is fired, the next operation drops the old instance and swaps
// in a fresh one before writing. All methods are safe for concurrent
// use and are serialized on the underlying handle.
type Writer[H io.Writer] struct {
	*stream[H]
}

// NewWriter calls factory once and wraps the result. The factory must
// be safe to call repeatedly over the process lifetime; it runs again
// on every reopen. If the initial call fails its error is returned and
// no Writer is produced.
func NewWriter[H io.Writer](factory func() (H, error)) (*Writer[H], error) {
	return NewWriterWith(NewHandle(), factory)
}

// NewWriterWith is NewWriter with a caller-supplied Handle, for when
// the trigger must exist before the stream does.
func NewWriterWith[H io.Writer](h *Handle, factory func() (H, error)) (*Writer[H], error) {
	s, err := open(h, factory)
	if err != nil {
		return nil, err
	}
	return &Writer[H]{stream: s}, nil
}

// Write performs one write on the current handle, reopening first if a
// request is pending. A reopen failure is returned as *OpenError
// without attempting the write; errors from the handle itself pass
// through unchanged.
func (w *Writer[H]) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.check(); err != nil {
		return 0, err
	}
	return w.handle.Write(p)
}

// WriteString writes s to the current handle, using its WriteString
// method when it has one. Same reopen policy as Write.
func (w *Writer[H]) WriteString(s string) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.check(); err != nil {
		return 0, err
	}
	return io.WriteString(w.handle, s)
}

// ReadFrom copies src to the current handle until EOF. The reopen
// check runs once at entry and the handle lock is held throughout, so
// the whole copy lands on a single handle even if a trigger fires
// mid-copy.
func (w *Writer[H]) ReadFrom(src io.Reader) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.check(); err != nil {
		return 0, err
	}
	return io.Copy(w.handle, src)
}

// Flush flushes the current handle if it supports flushing (a Flush
// method as on bufio.Writer, or Sync as on os.File) and is a no-op
// otherwise. Runs the same entry check as Write, so a pending reopen
// happens first and flushes the new, empty handle.
func (w *Writer[H]) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.check(); err != nil {
		return err
	}
	switch f := any(w.handle).(type) {
	case interface{ Flush() error }:
		return f.Flush()
	case interface{ Sync() error }:
		return f.Sync()
	}
	return nil
}
