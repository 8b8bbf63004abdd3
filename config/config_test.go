package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APP.PORT)
	assert.Equal(t, BackendRabbitMQ, cfg.DeadLetter.Backend)
	assert.Equal(t, "failed.transaction.exchange", cfg.RabbitMQ.Exchange)
	assert.Equal(t, "failed.transaction.routingkey", cfg.RabbitMQ.RoutingKey)
	assert.Equal(t, 60*time.Second, cfg.Scheduler.RescueInterval)
	assert.Equal(t, 24*time.Hour, cfg.Scheduler.PendingDeadline)

	retry := cfg.Retry.GetRetryConfig()
	assert.Equal(t, 3, retry.MaxAttempts)
	assert.Equal(t, time.Second, retry.BaseDelay)
	assert.False(t, retry.Jitter)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("EXTERNAL_RETRY_MAX_ATTEMPTS", "5")
	t.Setenv("EXTERNAL_RETRY_BASE_DELAY", "250ms")
	t.Setenv("DEAD_LETTER_BACKEND", "kafka")
	t.Setenv("APP_ROLES", "rescuer, consumer")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Retry.GetRetryConfig().MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Retry.GetRetryConfig().BaseDelay)
	assert.Equal(t, BackendKafka, cfg.DeadLetter.Backend)
	assert.True(t, cfg.APP.HasRole(RoleConsumer))
	assert.True(t, cfg.APP.HasRole(RoleRescuer))
	assert.False(t, cfg.APP.HasRole(RoleAPI))
}

func TestNew_InvalidDuration(t *testing.T) {
	t.Setenv("SCHEDULER_RESCUE_INTERVAL", "soon")

	_, err := New()
	assert.Error(t, err)
}

func TestAPP_IsLocal(t *testing.T) {
	assert.True(t, APP{ENV: "local"}.IsLocal())
	assert.True(t, APP{ENV: "test"}.IsLocal())
	assert.False(t, APP{ENV: "production"}.IsLocal())
}
