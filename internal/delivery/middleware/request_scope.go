package middleware

import (
	"log/slog"
	"strconv"

	deliverycontext "transitflow/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// NetworkVersionSource reports the version of the network snapshot currently served
type NetworkVersionSource interface {
	NetworkVersion() int64
}

// RequestScopeMiddleware assigns each request an ID, pins the network version it arrived on
// and builds the request-scoped logger carrying both
type RequestScopeMiddleware struct {
	logger   *slog.Logger
	versions NetworkVersionSource
}

// NewRequestScopeMiddleware creates a new request scope middleware
func NewRequestScopeMiddleware(logger *slog.Logger, versions NetworkVersionSource) *RequestScopeMiddleware {
	return &RequestScopeMiddleware{
		logger:   logger,
		versions: versions,
	}
}

// Process runs before every handler
func (m *RequestScopeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		version := m.versions.NetworkVersion()

		header := c.Response().Header()
		header.Set(deliverycontext.HeaderXRequestID, requestID)
		header.Set(deliverycontext.HeaderXNetworkVersion, strconv.FormatInt(version, 10))

		deliverycontext.WithScope(c, &deliverycontext.RequestScope{
			RequestID:      requestID,
			NetworkVersion: version,
			Logger: m.logger.With(
				slog.String("request_id", requestID),
				slog.Int64("network_version", version),
			),
		})

		return next(c)
	}
}
