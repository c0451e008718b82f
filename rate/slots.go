package rate

import (
	"context"
	"sync"

	"github.com/Oleg520/crpt-go/errors"
)

// Slots bounds the number of submissions simultaneously in flight,
// independent of elapsed time. It complements SlidingWindow: the window
// limits how many requests start per interval, Slots limits how many are
// outstanding at once when the registry responds slowly.
type Slots struct {
	sem chan struct{}
}

func NewSlots(max int) (*Slots, error) {
	if max <= 0 {
		return nil, &errors.ConfigError{Field: "max", Reason: "must be positive"}
	}
	return &Slots{sem: make(chan struct{}, max)}, nil
}

// Acquire blocks until fewer than max submissions are in flight, then
// claims a slot. The returned release must be called exactly once on
// every exit path; calling it more than once is a no-op. If ctx ends
// first, Acquire returns ctx.Err() and no slot is held.
func (s *Slots) Acquire(ctx context.Context) (release func(), err error) {
	select {
	case s.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() { <-s.sem })
		}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// InFlight returns the number of currently held slots.
func (s *Slots) InFlight() int {
	return len(s.sem)
}
