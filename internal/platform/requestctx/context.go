// Package requestctx carries per-request correlation data across the dashboard.
package requestctx

import "context"

type contextKey string

const requestIDKey contextKey = "octofit-request-id"

// HeaderRequestID is the header used to propagate request IDs upstream.
const HeaderRequestID = "X-Request-ID"

// WithRequestID stores the request ID on the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID retrieves the ID stored by WithRequestID.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
