package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/oauth2"
)

type Option func(*Client) error

// WithBaseURL points the client at another API root. A trailing slash is
// added when missing.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("base url: %q is not absolute", raw)
		}
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		c.BaseURL = raw
		return nil
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		c.HTTPClient = hc
		return nil
	}
}

func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("http timeout: negative duration %v", d)
		}
		c.HTTPClient.Timeout = d
		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(ua) == "" {
			return errors.New("user agent is empty")
		}
		c.UserAgent = ua
		return nil
	}
}

// WithTokenSource supplies bearer tokens per request.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) error {
		if ts == nil {
			return errors.New("token source is nil")
		}
		c.tokenSource = ts
		return nil
	}
}

// WithErrorBodyLimit caps how many bytes of an error body are kept.
func WithErrorBodyLimit(n int64) Option {
	return func(c *Client) error {
		if n <= 0 {
			return fmt.Errorf("error body limit must be positive, got %d", n)
		}
		c.errBodyLimit = n
		return nil
	}
}

// WithConcurrency bounds parallel requests in batch calls like GetUsers.
func WithConcurrency(n int) Option {
	return func(c *Client) error {
		if n < 1 {
			return fmt.Errorf("concurrency must be >= 1, got %d", n)
		}
		c.concurrency = n
		return nil
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		c.logger = l
		return nil
	}
}

// WithMetrics registers the API error counter with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) error {
		if reg == nil {
			return errors.New("metrics registerer is nil")
		}
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		c.metrics = m
		return nil
	}
}
