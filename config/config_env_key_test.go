package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"routing": map[string]any{
			"rebuildTimeout":  "30s",
			"presetEdgesPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "ROUTING_REBUILDTIMEOUT", want: "routing.rebuildTimeout"},
		{envKey: "ROUTING_PRESETEDGESPATH", want: "routing.presetEdgesPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, PersistenceDriverFile, cfg.Persistence.Driver)
	assert.Equal(t, defaultStationsFile, cfg.Persistence.FilePath)
	assert.Equal(t, 2, cfg.Routing.NeighborCount)
	assert.InDelta(t, 100.0, cfg.Routing.WeightDivisor, 1e-9)
	assert.Equal(t, 30*time.Second, cfg.Routing.RebuildTimeout)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "M", cfg.QRCode.ErrorCorrectionLevel)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	t.Setenv("ROUTING_NEIGHBORCOUNT", "3")
	t.Setenv("ROUTING_REBUILDTIMEOUT", "5s")
	t.Setenv("PERSISTENCE_FILEPATH", "/tmp/stations.json")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "transitflow", cfg.Env.ServiceName)
	assert.Equal(t, 3, cfg.Routing.NeighborCount)
	assert.Equal(t, 5*time.Second, cfg.Routing.RebuildTimeout)
	assert.Equal(t, "/tmp/stations.json", cfg.Persistence.FilePath)
	assert.Equal(t, "data/preset_edges.csv", cfg.Routing.PresetEdgesPath)
}
