// Package context carries per-request state from the HTTP edge into the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderXNetworkVersion reports the network snapshot version a request was served against.
	HeaderXNetworkVersion = "X-Network-Version"

	echoKeyScope = "request_scope"
)

type scopeKey struct{}

// RequestScope is what the edge knows about a request when it enters the service.
// NetworkVersion is the snapshot that was current on arrival; a write may publish a newer one.
type RequestScope struct {
	RequestID      string
	NetworkVersion int64
	Logger         *slog.Logger
}

// WithScope stores the scope in both the echo context and the request context.
func WithScope(c echo.Context, scope *RequestScope) {
	c.Set(echoKeyScope, scope)
	ctx := context.WithValue(c.Request().Context(), scopeKey{}, scope)
	c.SetRequest(c.Request().WithContext(ctx))
}

// ScopeFromContext returns the scope of the request, if the middleware ran.
func ScopeFromContext(ctx context.Context) (*RequestScope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*RequestScope)

	return scope, ok && scope != nil
}

// RequestID returns the request ID stored on c, or "" outside a scoped request.
func RequestID(c echo.Context) string {
	if scope, ok := c.Get(echoKeyScope).(*RequestScope); ok && scope != nil {
		return scope.RequestID
	}

	return ""
}

// RequestIDFromContext returns the request ID, or "" outside a scoped request.
func RequestIDFromContext(ctx context.Context) string {
	if scope, ok := ScopeFromContext(ctx); ok {
		return scope.RequestID
	}

	return ""
}

// LoggerOrDefault returns the request-scoped logger, or fallback outside a scoped request.
func LoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := ScopeFromContext(ctx); ok && scope.Logger != nil {
		return scope.Logger
	}

	return fallback
}
