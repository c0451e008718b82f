package retry

// Retry provides a standardized interface for implementing retry logic
// with different strategies. The submission pipeline itself never retries:
// a transport failure or a non-200 answer is terminal for that call, and
// resubmission is the caller's decision. This package is that caller-side
// helper, used by the background submitter and available to library users.
//
// Usage Example:
//
//	retry := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(100*time.Millisecond),
//	    retry.WithLogger(myLogger),
//	)
//
//	err := retry.Do(3, "create-document", func(attempt int) (error, retry.ExitStrategy) {
//	    _, err := client.Documents().Create(ctx, doc, signature)
//	    if err != nil {
//	        if crpt_errors.IsTransport(err) {
//	            return err, retry.Continue // transient, retry
//	        }
//	        return err, retry.StopNow // rejected by the registry, don't
//	    }
//	    return nil, retry.StopNow
//	})
//
// The RetriableFn function receives the current attempt number (0-based) and
// returns an error and an ExitStrategy. The ExitStrategy determines whether
// to continue retrying (Continue) or stop immediately (StopNow), regardless
// of remaining attempts.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
