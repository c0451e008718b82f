package rate

import (
	"context"
	"sync"
	"time"

	"github.com/Oleg520/crpt-go/errors"
)

// SlidingWindow admits at most limit callers within any trailing window.
//
// It keeps the timestamps of recent admissions, oldest first, and prunes
// them lazily on every attempt. A caller that finds the window full sleeps
// until the oldest admission ages out, then re-checks: wakeups are not
// exclusive, so several sleepers may race for one freed slot and the losers
// go back to sleep. Admission order between waiting callers is unspecified.
type SlidingWindow struct {
	mu         sync.Mutex
	window     time.Duration
	limit      int
	timestamps []time.Time
}

var _ Limiter = &SlidingWindow{}

func NewSlidingWindow(limit int, window time.Duration) (*SlidingWindow, error) {
	if limit <= 0 {
		return nil, &errors.ConfigError{Field: "limit", Reason: "must be positive"}
	}
	if window <= 0 {
		return nil, &errors.ConfigError{Field: "window", Reason: "must be positive"}
	}
	return &SlidingWindow{
		window:     window,
		limit:      limit,
		timestamps: make([]time.Time, 0, limit),
	}, nil
}

// Wait blocks until admitting one more request would not exceed limit
// admissions within the trailing window, records the current instant as
// an admission, and returns nil. If ctx ends while waiting, Wait returns
// ctx.Err() without recording an admission.
func (s *SlidingWindow) Wait(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.mu.Lock()
		now := time.Now()
		s.prune(now)

		if len(s.timestamps) < s.limit {
			s.timestamps = append(s.timestamps, now)
			s.mu.Unlock()
			return nil
		}

		// Full. The slot frees when the oldest admission leaves the window.
		wait := s.window - now.Sub(s.timestamps[0])
		s.mu.Unlock()

		if wait <= 0 {
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return ctx.Err()
		}
	}
}

// prune drops admissions older than now-window. Callers must hold mu.
func (s *SlidingWindow) prune(now time.Time) {
	cutoff := now.Add(-s.window)
	i := 0
	for i < len(s.timestamps) && !s.timestamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		s.timestamps = append(s.timestamps[:0], s.timestamps[i:]...)
	}
}
