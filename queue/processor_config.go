package queue

import (
	"github.com/Oleg520/crpt-go/logger"
	"github.com/Oleg520/crpt-go/retry"
)

type ProcessorConfig struct {
	// MaxWorkers bounds the goroutines submitting queued messages
	// (one of them runs the dispatch loop). The client's rate gate
	// still owns pacing; workers only add parallelism up to the
	// concurrency cap.
	// default: 4
	MaxWorkers int

	// MaxBufferSize is the capacity of the internal message channel;
	// Add blocks once it fills.
	// default: 500
	MaxBufferSize int

	// MaxRetries is the number of attempts per message. Only transport
	// failures are retried; a registry rejection is terminal.
	// default: 1 (no retry)
	MaxRetries int

	// Retry is the backoff strategy used between attempts.
	// default: retry.NewExponentialRetry()
	Retry retry.Retry

	// Logger for processor diagnostics.
	// default: logger.Noop
	Logger logger.Logger
}

func applyProcessorConfig(config ProcessorConfig) ProcessorConfig {
	if config.MaxWorkers < 2 {
		config.MaxWorkers = 4
	}
	if config.MaxBufferSize <= 0 {
		config.MaxBufferSize = 500
	}
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}
	if config.Retry == nil {
		config.Retry = retry.NewExponentialRetry()
	}
	if config.Logger == nil {
		config.Logger = &logger.Noop{}
	}
	return config
}
