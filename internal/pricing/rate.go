package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/permapress/permapress-backend/internal/fault"
)

// RateClient queries an external rate oracle for the native-to-fiat
// conversion rate.
type RateClient struct {
	url  string
	http *http.Client
}

// NewRateClient constructs a rate oracle client. rawURL must include the
// scheme.
func NewRateClient(rawURL string, timeout time.Duration) (*RateClient, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rate oracle url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rate oracle url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rate oracle url missing host")
	}
	return &RateClient{
		url:  rawURL,
		http: &http.Client{Timeout: timeout},
	}, nil
}

type rateResponse struct {
	Rate json.Number `json:"rate"`
}

// NativeToFiat returns the current conversion rate.
func (c *RateClient) NativeToFiat(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("build rate request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Decimal{}, fault.Errorf(fault.KindTransient, "query rate oracle: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fault.Errorf(fault.KindTransient, "query rate oracle: unexpected status %d", resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Decimal{}, fault.Errorf(fault.KindTransient, "decode rate response: %w", err)
	}

	rate, err := decimal.NewFromString(body.Rate.String())
	if err != nil {
		return decimal.Decimal{}, fault.Errorf(fault.KindTransient, "parse rate %q: %w", body.Rate, err)
	}
	if rate.IsNegative() {
		return decimal.Decimal{}, fault.Errorf(fault.KindTransient, "negative rate %s", rate)
	}
	return rate, nil
}
