package rate

import (
	"context"

	xrate "golang.org/x/time/rate"

	"github.com/Oleg520/crpt-go/errors"
)

// tokenBucket adapts golang.org/x/time/rate to the Limiter interface.
// Unlike SlidingWindow it allows bursts up to burst tokens, which suits
// callers that prefer smoothed throughput over a hard per-window count.
type tokenBucket struct {
	limiter *xrate.Limiter
}

var _ Limiter = &tokenBucket{}

func NewTokenBucket(rps float64, burst int) (Limiter, error) {
	if rps <= 0 {
		return nil, &errors.ConfigError{Field: "rps", Reason: "must be positive"}
	}
	if burst <= 0 {
		return nil, &errors.ConfigError{Field: "burst", Reason: "must be positive"}
	}
	return &tokenBucket{
		limiter: xrate.NewLimiter(xrate.Limit(rps), burst),
	}, nil
}

func (t *tokenBucket) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
