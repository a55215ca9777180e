package apierr_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/bodrovis/boxapi/apierr"
)

// mock net.Error
type mockNetErr struct {
	msg     string
	timeout bool
}

func (m mockNetErr) Error() string { return m.msg }
func (m mockNetErr) Timeout() bool { return m.timeout }

func TestIsRetryable_TransportErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("some build error"), false},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("wrap: %w", context.DeadlineExceeded), true},
		{"canceled", context.Canceled, false},
		{"net timeout", mockNetErr{msg: "i/o timeout", timeout: true}, true},
		{"net non-timeout", mockNetErr{msg: "conn refused"}, false},
		{"unexpected eof", fmt.Errorf("read: %w", io.ErrUnexpectedEOF), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := apierr.IsRetryable(tc.err); got != tc.want {
				t.Fatalf("IsRetryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestIsRetryable_APIStatuses(t *testing.T) {
	retryables := []int{
		http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	}
	for _, st := range retryables {
		t.Run(fmt.Sprintf("status_%d_retryable", st), func(t *testing.T) {
			err := apierr.Parse(nil, st, apierr.Header{})
			if !apierr.IsRetryable(err) {
				t.Fatalf("IsRetryable(%d) = false, want true", st)
			}
			if !apierr.IsRetryable(fmt.Errorf("wrap: %w", err)) {
				t.Fatalf("IsRetryable(wrapped %d) = false, want true", st)
			}
		})
	}

	nonRetryables := []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusConflict,
	}
	for _, st := range nonRetryables {
		t.Run(fmt.Sprintf("status_%d_nonretryable", st), func(t *testing.T) {
			if apierr.IsRetryable(&apierr.APIError{Status: st}) {
				t.Fatalf("IsRetryable(%d) = true, want false", st)
			}
		})
	}
}

func TestIsRateLimited(t *testing.T) {
	err429 := &apierr.APIError{Status: http.StatusTooManyRequests}
	if !apierr.IsRateLimited(err429) {
		t.Fatalf("IsRateLimited(429) = false, want true")
	}
	if !apierr.IsRateLimited(fmt.Errorf("wrap: %w", err429)) {
		t.Fatalf("IsRateLimited(wrapped 429) = false, want true")
	}
	if apierr.IsRateLimited(&apierr.APIError{Status: http.StatusServiceUnavailable}) {
		t.Fatalf("IsRateLimited(503) = true, want false")
	}
	if apierr.IsRateLimited(nil) {
		t.Fatalf("IsRateLimited(nil) = true")
	}
}
