package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "transitflow/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedVersion int64

func (v fixedVersion) NetworkVersion() int64 {
	return int64(v)
}

func TestRequestScopeMiddleware_Process(t *testing.T) {
	tests := []struct {
		name          string
		headerID      string
		wantGenerated bool
	}{
		{name: "client request id", headerID: "req-abc"},
		{name: "generated request id", wantGenerated: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			m := NewRequestScopeMiddleware(logger, fixedVersion(7))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/route", nil)
			if tt.headerID != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.headerID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var scope *deliverycontext.RequestScope
			err := m.Process(func(c echo.Context) error {
				var ok bool
				scope, ok = deliverycontext.ScopeFromContext(c.Request().Context())
				require.True(t, ok)
				deliverycontext.LoggerOrDefault(c.Request().Context(), nil).Info("handled")

				return nil
			})(c)
			require.NoError(t, err)

			if tt.wantGenerated {
				assert.Len(t, scope.RequestID, 36)
			} else {
				assert.Equal(t, tt.headerID, scope.RequestID)
			}
			assert.Equal(t, int64(7), scope.NetworkVersion)
			assert.Equal(t, scope.RequestID, deliverycontext.RequestID(c))
			assert.Equal(t, scope.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, "7", rec.Header().Get(deliverycontext.HeaderXNetworkVersion))
			assert.Contains(t, buf.String(), "request_id="+scope.RequestID)
			assert.Contains(t, buf.String(), "network_version=7")
		})
	}
}

func TestRequestScope_OutsideRequest(t *testing.T) {
	fallback := slog.Default()
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	assert.Empty(t, deliverycontext.RequestIDFromContext(ctx))
	assert.Same(t, fallback, deliverycontext.LoggerOrDefault(ctx, fallback))
}
