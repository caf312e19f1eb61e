package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "DATABASE_URL",
		"CACHE_ENABLED", "REDIS_ADDR", "REDIS_DB", "CACHE_TTL_SECONDS",
		"EVENTS_ENABLED", "KAFKA_BROKERS", "KAFKA_TOPIC_ENTITY_EVENTS", "KAFKA_CONSUMER_GROUP",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "entity-events", cfg.Kafka.TopicEvents)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("EVENTS_ENABLED", "1")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestGetBoolEnv(t *testing.T) {
	t.Setenv("FLAG", "")
	assert.True(t, getBoolEnv("FLAG", true))
	assert.False(t, getBoolEnv("FLAG", false))

	t.Setenv("FLAG", "true")
	assert.True(t, getBoolEnv("FLAG", false))

	t.Setenv("FLAG", "nonsense")
	assert.False(t, getBoolEnv("FLAG", false))
}
