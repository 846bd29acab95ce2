//go:build unix

package reopen

import "golang.org/x/sys/unix"

// RegisterHangup binds h to SIGHUP, the conventional signal logrotate
// sends after moving a log file aside.
func (h *Handle) RegisterHangup() SignalToken {
	return h.RegisterSignal(unix.SIGHUP)
}
