package rate

import "context"

// Limiter controls the rate of outbound requests to the CRPT registry.
//
// The Limiter interface provides rate limiting functionality to prevent
// exceeding the registry's API rate limits. Implementations can use
// different strategies such as:
//   - Sliding window counting (see SlidingWindow)
//   - Token bucket algorithm (see NewTokenBucket)
//   - Fixed window counting
//   - Leaky bucket algorithm
//
// Wait is called before each request leaves the process and blocks the
// caller until sending one more request would stay within the configured
// rate. Implementations must be safe for concurrent use by multiple
// goroutines and must honor ctx: a cancelled context terminates the wait
// promptly with ctx.Err().
type Limiter interface {
	// Wait blocks until the caller may proceed, records the admission,
	// and returns nil; or returns ctx.Err() if ctx ends first.
	Wait(ctx context.Context) error
}
