// Package requestcontext carries request-scoped metadata through context so
// services and stores can read it without importing net/http.
//
// Middleware sets the values; tests inject them directly:
//
//	ctx = requestcontext.WithRequestID(ctx, "req-1")
package requestcontext

import (
	"context"
)

type key int

const (
	requestIDKey key = iota
	clientIPKey
	userAgentKey
)

func value(ctx context.Context, k key) string {
	if v, ok := ctx.Value(k).(string); ok {
		return v
	}
	return ""
}

// RequestID returns the id assigned by the RequestID middleware, or "".
func RequestID(ctx context.Context) string {
	return value(ctx, requestIDKey)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func ClientIP(ctx context.Context) string {
	return value(ctx, clientIPKey)
}

func UserAgent(ctx context.Context) string {
	return value(ctx, userAgentKey)
}

// WithClientMetadata stores the caller's IP and User-Agent.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, clientIPKey, clientIP)
	return context.WithValue(ctx, userAgentKey, userAgent)
}

// LogAttrs returns the non-empty request metadata as slog key/value pairs.
func LogAttrs(ctx context.Context) []any {
	var out []any
	if id := RequestID(ctx); id != "" {
		out = append(out, "request_id", id)
	}
	if ip := ClientIP(ctx); ip != "" {
		out = append(out, "client_ip", ip)
	}
	return out
}
