// Package rates implements the outbound client for the third-party currency
// exchange-rate API (GET <base-url>/latest/{BASE}).
//
// Failure modes are kept distinct so callers can map them to transport
// semantics:
//   - the provider answered with a non-2xx status: *UpstreamError, carrying
//     the upstream status code and body verbatim;
//   - the provider was unreachable (no response at all): ErrProviderUnavailable;
//   - the provider answered 2xx but the payload is missing the "base" or
//     "rates" fields: ErrMalformedResponse.
package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/expenso-app/expenso/internal/logging"
)

var (
	ErrProviderUnavailable = errors.New("rate provider unreachable")
	ErrMalformedResponse   = errors.New("malformed rate provider response")
)

// UpstreamError reports a non-success response from the rate provider. The
// status code and body are propagated to the caller unchanged.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("rate provider returned %d: %s", e.StatusCode, e.Body)
}

// Rates is the provider's answer for one base currency.
type Rates struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

type Client struct {
	baseURL string
	hc      *http.Client
	logger  logging.Logger
}

// NewClient builds a rate-provider client. timeout bounds each attempt;
// a transport-level failure is retried once, an upstream error response never.
func NewClient(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		logger:  logger.With("module", "rates"),
	}
}

// maxAttempts covers the initial request plus one retry on transport failure.
const maxAttempts = 2

// GetRates fetches the live rates for base. The base code is normalized to
// uppercase before use, so "usd" and "USD" behave identically.
func (c *Client) GetRates(ctx context.Context, base string) (*Rates, error) {

	base = strings.ToUpper(strings.TrimSpace(base))
	url := fmt.Sprintf("%s/latest/%s", c.baseURL, base)

	var resp *http.Response
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}

		resp, lastErr = c.hc.Do(req)
		if lastErr == nil {
			break
		}
		c.logger.Warn(ctx, "rate provider request failed", "base", base, "attempt", attempt, "error", lastErr.Error())
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, lastErr)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var payload struct {
		Base  *string            `json:"base"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if payload.Base == nil || payload.Rates == nil {
		return nil, ErrMalformedResponse
	}

	return &Rates{Base: *payload.Base, Rates: payload.Rates}, nil
}
