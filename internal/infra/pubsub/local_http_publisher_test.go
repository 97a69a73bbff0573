package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"transitflow/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishNetworkChanged(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := &service.NetworkChangedEvent{
		RequestID:     "req-1",
		Version:       3,
		StationCount:  19,
		EdgeCount:     40,
		AddedStations: []string{"Rajpur"},
		BuiltAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	err := publisher.PublishNetworkChanged(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "3", received.Message.Attributes["version"])
	assert.Equal(t, eventTypeNetworkChanged, received.Message.Attributes["event_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.NetworkChangedEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"Rajpur"}, decoded.AddedStations)
	assert.Equal(t, int64(3), decoded.Version)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishNetworkChanged(context.Background(), &service.NetworkChangedEvent{Version: 1})
	assert.ErrorContains(t, err, "503")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(discardLogger())

	assert.NoError(t, publisher.PublishNetworkChanged(context.Background(), &service.NetworkChangedEvent{}))
	assert.NoError(t, publisher.Close())
}
