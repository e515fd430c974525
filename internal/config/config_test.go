package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.test/")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/drishti")
	t.Setenv("AGENT_BASE_URL", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("MEDIA_AUTO_INCIDENT", "")
	t.Setenv("CAMERA_DEMO", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test", cfg.APIBaseURL)
	assert.Equal(t, cfg.APIBaseURL, cfg.AgentBaseURL)
	assert.Equal(t, 5*time.Second, cfg.PollResponders)
	assert.Equal(t, 10*time.Second, cfg.PollZones)
	assert.Equal(t, 30*time.Second, cfg.PollIncidents)
	assert.Equal(t, time.Duration(0), cfg.UpstreamTimeout)
	assert.Equal(t, "drishti:session:", cfg.SessionKeyPrefix)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.True(t, cfg.MediaAutoIncident)
	assert.False(t, cfg.CameraDemo)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.test")
	t.Setenv("AGENT_BASE_URL", "https://agent.example.test")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/drishti")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	t.Setenv("POLL_INTERVAL_ZONES", "2s")
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("MEDIA_AUTO_INCIDENT", "false")
	t.Setenv("CAMERA_DEMO", "1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://agent.example.test", cfg.AgentBaseURL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 2*time.Second, cfg.PollZones)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.False(t, cfg.MediaAutoIncident)
	assert.True(t, cfg.CameraDemo)
}

func TestLoadConfig_RequiresAPIBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/drishti")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "API_BASE_URL")
}
