// Package reopen wraps a byte stream so the underlying handle can be
// closed and recreated while callers keep using the same logical
// stream. The motivating case is a long-running process writing an
// append-only log file: logrotate moves the file aside and expects the
// writer to start a fresh descriptor without a restart, conventionally
// signalled by SIGHUP.
//
// A Writer or Reader owns the current handle and a factory that can
// produce a replacement. A Handle is a cheap shareable trigger: calling
// its Reopen method sets a flag, and the next operation on the wrapper
// swaps in a freshly opened handle before doing its I/O. The flag is a
// plain atomic, separate from the lock guarding the stream, so a
// trigger can fire from anywhere (another goroutine, a timer, signal
// delivery) without ever contending with in-flight I/O.
//
// Reopening is checked once per logical operation. A bulk call such as
// ReadFrom or ReadAll stays on one handle for its whole duration, so a
// rotation can never split a single logical write across two files.
// Lock suspends the check entirely for a caller-chosen span.
//
// Seek and buffered-read surfaces are deliberately absent: their
// behavior across a reopen would be confusing if not outright wrong.
package reopen

import "errors"

// ErrClosed is returned by any operation on a wrapper after Close.
// Callers can test for it with errors.Is.
var ErrClosed = errors.New("stream is closed")

// OpenError wraps a factory failure during a reopen, so callers can
// tell "the stream refused to reopen" apart from an I/O error on the
// stream itself. Unwrap exposes the factory's error for errors.Is and
// errors.As; the operation that triggered the reopen returns the
// OpenError instead of performing its I/O.
type OpenError struct {
	Err error
}

func (e *OpenError) Error() string {
	return "reopen: " + e.Err.Error()
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
