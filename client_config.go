package crpt_go

import (
	"net/http"
	"time"

	"github.com/Oleg520/crpt-go/api"
	"github.com/Oleg520/crpt-go/logger"
	"github.com/Oleg520/crpt-go/rate"
)

const (
	defaultRequestLimit = 10
	defaultWindow       = time.Second
)

type config struct {
	// transport specifies the HTTP transport mechanism
	// for making requests.
	// It's useful for mocking or if customers
	// want to add extra logging, headers, etc.
	// default: http.DefaultTransport
	transport http.RoundTripper

	// timeout sets the maximum duration for HTTP requests
	// before they are cancelled
	// default: 30 seconds
	timeout time.Duration

	// logger provides logging functionality for all internal
	// crpt-go client operations
	// default: logger.Noop
	logger logger.Logger

	// limiter overrides the sliding-window gate built from
	// limit and window when set
	// default: nil (build rate.SlidingWindow from limit/window)
	limiter rate.Limiter

	// limit and window size the sliding-window gate: at most
	// limit submissions per rolling window
	// default: 10 per second
	limit  int
	window time.Duration

	// maxInFlight caps concurrently outstanding submissions.
	// 0 means "same as limit".
	maxInFlight int

	// baseUrl is the registry endpoint prefix
	// default: the production CRPT endpoint
	baseUrl string
}

func defaultConfig() *config {
	return &config{
		transport: http.DefaultTransport,
		timeout:   30 * time.Second,
		logger:    logger.Noop{},
		limit:     defaultRequestLimit,
		window:    defaultWindow,
		baseUrl:   api.DefaultBaseUrl,
	}
}

type ConfigOption func(c *config)

func WithTransport(transport http.RoundTripper) ConfigOption {
	return func(c *config) {
		c.transport = transport
	}
}

func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *config) {
		c.timeout = timeout
	}
}

func WithLogger(logger logger.Logger) ConfigOption {
	return func(c *config) {
		c.logger = logger
	}
}

// WithRateLimit sizes the sliding-window gate: at most limit submissions
// within any rolling window. The concurrency cap follows limit unless
// WithConcurrencyCap overrides it.
func WithRateLimit(limit int, window time.Duration) ConfigOption {
	return func(c *config) {
		c.limit = limit
		c.window = window
	}
}

// WithRateLimiter replaces the sliding-window gate with a custom pacing
// strategy, e.g. rate.NewTokenBucket.
func WithRateLimiter(limiter rate.Limiter) ConfigOption {
	return func(c *config) {
		c.limiter = limiter
	}
}

func WithConcurrencyCap(max int) ConfigOption {
	return func(c *config) {
		c.maxInFlight = max
	}
}

func WithBaseUrl(baseUrl string) ConfigOption {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}
