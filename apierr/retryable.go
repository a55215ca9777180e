package apierr

import (
	"context"
	"errors"
	"io"
	"net/http"
	"syscall"
)

// IsRetryable says "worth another shot?". It only classifies; whether and
// when to retry is up to the caller.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	// caller gave up
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// timeouts from net/http, http2, tls, etc.
	var to interface{ Timeout() bool }
	if errors.As(err, &to) && to.Timeout() {
		return true
	}

	// flaky connections / short reads
	if errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, syscall.ECONNRESET) {
		return true
	}

	// server returned non-2xx
	if apiErr, ok := As(err); ok {
		switch apiErr.Status {
		case http.StatusRequestTimeout, // 408
			http.StatusTooEarly,            // 425
			http.StatusTooManyRequests,     // 429
			http.StatusInternalServerError, // 500
			http.StatusBadGateway,          // 502
			http.StatusServiceUnavailable,  // 503
			http.StatusGatewayTimeout:      // 504
			return true
		}
	}
	return false
}

// IsRateLimited reports a 429 anywhere in err's chain.
func IsRateLimited(err error) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Status == http.StatusTooManyRequests
}
