//go:build unix

package reopen

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// waitForReopen sends writes until the factory has been called more
// than n times, failing the test if signal delivery never lands.
func waitForReopen(t *testing.T, w *Writer[*histWriter], hist *history, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for hist.count() <= n {
		if time.Now().After(deadline) {
			t.Fatalf("no reopen after signal; factory calls = %d", hist.count())
		}
		if _, err := w.Write([]byte("tick")); err != nil {
			t.Fatalf("Write: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHangupReopens(t *testing.T) {
	w, hist := openTestWriter(t)
	tok := w.Handle().RegisterHangup()
	defer Unregister(tok)

	if err := unix.Kill(unix.Getpid(), unix.SIGHUP); err != nil {
		t.Fatalf("kill: %v", err)
	}
	waitForReopen(t, w, hist, 1)
}

// One delivery fans out to every handle bound to the signal, across
// independent wrappers.
func TestSignalFanOut(t *testing.T) {
	w1, hist1 := openTestWriter(t)
	w2, hist2 := openTestWriter(t)
	tok1 := w1.Handle().RegisterSignal(unix.SIGUSR1)
	tok2 := w2.Handle().RegisterSignal(unix.SIGUSR1)
	defer Unregister(tok1)
	defer Unregister(tok2)

	if err := unix.Kill(unix.Getpid(), unix.SIGUSR1); err != nil {
		t.Fatalf("kill: %v", err)
	}
	waitForReopen(t, w1, hist1, 1)
	waitForReopen(t, w2, hist2, 1)
}

// Unregistering one binding leaves others for the same signal intact,
// and the unregistered handle no longer fires.
func TestUnregisterStopsDelivery(t *testing.T) {
	wa, hista := openTestWriter(t)
	wb, histb := openTestWriter(t)
	toka := wa.Handle().RegisterSignal(unix.SIGUSR2)
	tokb := wb.Handle().RegisterSignal(unix.SIGUSR2)
	defer Unregister(tokb)

	Unregister(toka)
	if err := unix.Kill(unix.Getpid(), unix.SIGUSR2); err != nil {
		t.Fatalf("kill: %v", err)
	}
	waitForReopen(t, wb, histb, 1)

	// The delivery that reopened wb has long since been relayed;
	// wa's binding was gone before the kill, so it must not move.
	for i := 0; i < 5; i++ {
		wa.Write([]byte("tick"))
		time.Sleep(10 * time.Millisecond)
	}
	if got := hista.count(); got != 1 {
		t.Errorf("factory calls on unregistered wrapper = %d, want 1", got)
	}
}
