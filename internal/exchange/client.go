// Package exchange fetches currency exchange rates from the provider
// and caches them so aggregation never waits on the network twice a day.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mercura/storefront-analytics/internal/analytics/money"
	pkgerrors "github.com/mercura/storefront-analytics/pkg/errors"
)

const (
	defaultBaseURL             = "https://api.exchangerate.host"
	responseBodyReadLimit int64 = 1024
)

// Client calls the exchange-rate provider's REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the provider base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// NewClient builds the provider client. The API key is optional; when
// set it is passed as the access_key query parameter.
func NewClient(apiKey string, opts ...Option) *Client {
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client
}

// Latest fetches the current rate table for the base currency.
func (c *Client) Latest(ctx context.Context, baseCurrency string) (money.RateTable, error) {
	if c == nil {
		return money.RateTable{}, pkgerrors.New(pkgerrors.CodeDependency, "exchange client not configured")
	}
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	if base == "" {
		return money.RateTable{}, pkgerrors.New(pkgerrors.CodeValidation, "base currency is required")
	}

	query := url.Values{"base": []string{base}}
	if c.apiKey != "" {
		query.Set("access_key", c.apiKey)
	}
	endpoint := fmt.Sprintf("%s/latest?%s", strings.TrimRight(c.baseURL, "/"), query.Encode())

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return money.RateTable{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build rates request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return money.RateTable{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute rates request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return money.RateTable{}, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "rates request failed")
	}

	var apiResp struct {
		Base  string             `json:"base"`
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return money.RateTable{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode rates response")
	}
	if apiResp.Base == "" {
		apiResp.Base = base
	}

	rates := make(map[string]decimal.Decimal, len(apiResp.Rates))
	for code, rate := range apiResp.Rates {
		rates[strings.ToUpper(code)] = decimal.NewFromFloat(rate)
	}
	return money.RateTable{Base: strings.ToUpper(apiResp.Base), Rates: rates}, nil
}
