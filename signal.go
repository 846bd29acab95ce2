// Signal-to-trigger bindings.
//
// The runtime owns the actual signal handler; os/signal hands
// deliveries to a channel, and a relay goroutine per binding forwards
// each delivery to Handle.Reopen and does nothing else. No user code
// runs on the delivery path and Reopen itself is a lone atomic store,
// so the binding stays safe however hostile the delivery timing is.
//
// Bindings are process-global and keyed by token. Several handles may
// bind the same signal (every binding gets its own channel, so all of
// them fire) and one handle may bind several signals.
package reopen

import (
	"os"
	"os/signal"
	"sync"
)

// SignalToken identifies one signal binding for Unregister.
type SignalToken uint64

// bindings is the process-global registry. The mutex guards the map
// and token counter only; delivery runs entirely outside it.
var bindings struct {
	mu   sync.Mutex
	next SignalToken
	live map[SignalToken]*binding
}

type binding struct {
	ch   chan os.Signal
	done chan struct{}
}

// RegisterSignal arranges for h.Reopen to be called each time one of
// the given signals is delivered to the process, and returns a token
// that releases the binding when passed to Unregister. The binding
// holds its own delivery channel, so multiple registrations for the
// same signal all fire, and it keeps h alive even after the companion
// wrapper is dropped (the trigger then becomes a harmless no-op).
func (h *Handle) RegisterSignal(sigs ...os.Signal) SignalToken {
	b := &binding{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	signal.Notify(b.ch, sigs...)
	go func() {
		for {
			select {
			case <-b.ch:
				h.Reopen()
			case <-b.done:
				return
			}
		}
	}()

	bindings.mu.Lock()
	defer bindings.mu.Unlock()
	if bindings.live == nil {
		bindings.live = make(map[SignalToken]*binding)
	}
	bindings.next++
	t := bindings.next
	bindings.live[t] = b
	return t
}

// Unregister releases a binding: the signal is no longer relayed to
// the handle and the relay goroutine exits. Idempotent; unknown or
// already-released tokens are ignored. Other bindings for the same
// signal are unaffected.
func Unregister(t SignalToken) {
	bindings.mu.Lock()
	b := bindings.live[t]
	delete(bindings.live, t)
	bindings.mu.Unlock()
	if b == nil {
		return
	}
	signal.Stop(b.ch)
	close(b.done)
}
