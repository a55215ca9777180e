package client

import (
	"context"
	"log/slog"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bodrovis/boxapi/apierr"
)

// observe reports a translated API error to the span in ctx, the error
// counter and the debug log.
func (c *Client) observe(ctx context.Context, method, path string, e *apierr.APIError) {
	reason := e.Payload.Reason().Or("")

	span := trace.SpanFromContext(ctx)
	span.RecordError(e, trace.WithAttributes(
		attribute.Int("http.response.status_code", e.Status),
		attribute.String("box.request_id", e.RequestID),
		attribute.String("box.error_code", reason),
	))
	span.SetStatus(codes.Error, e.Message)

	if c.metrics != nil {
		c.metrics.errors.WithLabelValues(strconv.Itoa(e.Status), reason).Inc()
	}

	c.logger.DebugContext(ctx, "api error",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", e.Status),
		slog.String("request_id", e.RequestID),
		slog.String("code", reason),
	)
}
