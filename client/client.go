// Package client is a thin Box API client. Its job is to get requests out
// and hand every non-2xx response to apierr.
package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/oauth2"

	"github.com/bodrovis/boxapi/apierr"
)

const (
	defaultBaseURL     = "https://api.box.com/2.0/"
	defaultUserAgent   = "boxapi/0.1"
	defaultConcurrency = 4
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client

	tokenSource  oauth2.TokenSource
	errBodyLimit int64
	concurrency  int
	logger       *slog.Logger
	metrics      *metrics
}

// NewClient builds a client. A non-empty token is sent as a static bearer
// token unless WithTokenSource overrides it.
func NewClient(token string, opts ...Option) (*Client, error) {
	c := &Client{
		BaseURL:      defaultBaseURL,
		UserAgent:    defaultUserAgent,
		HTTPClient:   &http.Client{},
		errBodyLimit: apierr.DefaultBodyLimit,
		concurrency:  defaultConcurrency,
		logger:       slog.New(slog.DiscardHandler),
	}
	if token != "" {
		c.tokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// do sends the request, returns non-2xx as *apierr.APIError, and optionally decodes JSON into v.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, v any) (*http.Response, error) {
	url := c.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.tokenSource != nil {
		tok, err := c.tokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("token: %w", err)
		}
		tok.SetAuthHeader(req)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := apierr.FromHTTP(resp, c.errBodyLimit)
		c.observe(ctx, method, path, apiErr)
		return resp, apiErr
	}

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return resp, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp, nil
}
