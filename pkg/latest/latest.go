// Package latest guards against stale asynchronous responses.
//
// A caller that re-issues a lookup whenever its input changes takes a
// ticket before each request and checks it after the response arrives.
// If a newer ticket was issued in the meantime, the response belongs to
// a superseded input state and must be discarded instead of rendered.
package latest

import (
	"errors"
	"sync"
)

// ErrStale is returned when a response no longer corresponds to the
// most recently issued request.
var ErrStale = errors.New("latest: response superseded by a newer request")

// Ticket identifies one issued request.
type Ticket uint64

// Guard issues monotonically increasing tickets for one lookup kind.
// The zero value is ready to use.
type Guard struct {
	mu   sync.Mutex
	last Ticket
}

// Next issues a new ticket, superseding all previously issued ones.
func (g *Guard) Next() Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.last++
	return g.last
}

// Current reports whether t is still the most recently issued ticket.
func (g *Guard) Current(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return t == g.last
}

// Check returns ErrStale when t has been superseded.
func (g *Guard) Check(t Ticket) error {
	if !g.Current(t) {
		return ErrStale
	}
	return nil
}
