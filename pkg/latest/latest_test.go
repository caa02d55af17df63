package latest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextSupersedesPreviousTickets(t *testing.T) {
	var g Guard

	first := g.Next()
	second := g.Next()

	assert.False(t, g.Current(first))
	assert.True(t, g.Current(second))
	assert.ErrorIs(t, g.Check(first), ErrStale)
	assert.NoError(t, g.Check(second))
}

func TestZeroValueGuard(t *testing.T) {
	var g Guard

	ticket := g.Next()

	assert.NoError(t, g.Check(ticket))
}

func TestConcurrentTicketsAreUnique(t *testing.T) {
	var g Guard

	const n = 100
	tickets := make(chan Ticket, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tickets <- g.Next()
		}()
	}
	wg.Wait()
	close(tickets)

	seen := make(map[Ticket]struct{}, n)
	for ticket := range tickets {
		_, dup := seen[ticket]
		assert.False(t, dup, "duplicate ticket %d", ticket)
		seen[ticket] = struct{}{}
	}
	assert.Len(t, seen, n)

	// Exactly one ticket survives as current.
	current := 0
	for ticket := range seen {
		if g.Current(ticket) {
			current++
		}
	}
	assert.Equal(t, 1, current)
}
