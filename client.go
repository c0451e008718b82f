package crpt_go

import (
	"net/http"

	"github.com/Oleg520/crpt-go/api"
	"github.com/Oleg520/crpt-go/rate"
)

// Client is a CRPT registry client. One Client owns one rate gate and one
// concurrency cap, so all submissions made through it share the same
// outbound budget. Construct it once and reuse it.
type Client struct {
	httpClient *http.Client

	documents *api.Documents
}

// NewClient builds a Client that authorizes with the given bearer token.
// By default submissions are limited to 10 per rolling second with at
// most 10 in flight; use WithRateLimit and WithConcurrencyCap to size
// both, or WithRateLimiter to supply a custom pacing strategy. An invalid
// limit or window fails here, never at call time.
func NewClient(token string, opts ...ConfigOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	limiter := cfg.limiter
	if limiter == nil {
		sw, err := rate.NewSlidingWindow(cfg.limit, cfg.window)
		if err != nil {
			return nil, err
		}
		limiter = sw
	}

	maxInFlight := cfg.maxInFlight
	if maxInFlight == 0 {
		maxInFlight = cfg.limit
	}
	slots, err := rate.NewSlots(maxInFlight)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{}
	httpClient.Transport = cfg.transport
	httpClient.Timeout = cfg.timeout

	return &Client{
		httpClient: httpClient,
		documents: api.NewDocumentsApi(
			token, cfg.baseUrl, httpClient, cfg.logger, limiter, slots,
		),
	}, nil
}

func (c *Client) Documents() *api.Documents {
	return c.documents
}
