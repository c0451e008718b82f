package crpt_go

import (
	"github.com/Oleg520/crpt-go/logger"
	"github.com/Oleg520/crpt-go/queue"
	"github.com/Oleg520/crpt-go/retry"
)

type submitterConfig struct {
	// workers bounds the goroutines draining the queue
	// (maps to ProcessorConfig.MaxWorkers)
	// default: 4
	workers int

	// bufferSize determines the buffer size of the internal request
	// channel to prevent blocking on Add() calls
	// (maps to ProcessorConfig.MaxBufferSize)
	// default: 500
	bufferSize int

	// retryTimes sets the maximum number of attempts per document;
	// only transport failures are retried
	// (maps to ProcessorConfig.MaxRetries)
	// default: 1
	retryTimes int

	// retry configures the retry strategy
	// (exponential backoff, delays, etc.) between attempts
	// (maps to ProcessorConfig.Retry)
	// default: retry.NewExponentialRetry()
	retry retry.Retry

	// logger provides logging functionality for debugging
	// and monitoring background submission
	// (maps to ProcessorConfig.Logger)
	// default: logger.Noop
	logger logger.Logger

	// responseChan is an optional channel for receiving
	// submission outcomes.
	// If nil - the caller won't get any responses
	// from the background submitter.
	// default: nil
	responseChan chan<- queue.Response
}

func defaultSubmitterConfig() submitterConfig {
	return submitterConfig{
		workers:      4,
		bufferSize:   500,
		retryTimes:   1,
		retry:        retry.NewExponentialRetry(),
		logger:       logger.Noop{},
		responseChan: nil,
	}
}

type SubmitterConfigOption func(c *submitterConfig)

func WithSubmitterWorkers(workers int) SubmitterConfigOption {
	return func(c *submitterConfig) {
		c.workers = workers
	}
}

func WithSubmitterBufferSize(bufferSize int) SubmitterConfigOption {
	return func(c *submitterConfig) {
		c.bufferSize = bufferSize
	}
}

func WithSubmitterRetryTimes(times int) SubmitterConfigOption {
	return func(c *submitterConfig) {
		c.retryTimes = times
	}
}

func WithSubmitterRetry(retry retry.Retry) SubmitterConfigOption {
	return func(c *submitterConfig) {
		c.retry = retry
	}
}

func WithSubmitterLogger(logger logger.Logger) SubmitterConfigOption {
	return func(c *submitterConfig) {
		c.logger = logger
	}
}

func WithSubmitterResponseListener(res chan queue.Response) SubmitterConfigOption {
	return func(c *submitterConfig) {
		c.responseChan = res
	}
}
