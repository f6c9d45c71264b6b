package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventflux/domain-eventbus-go/example/shared/shell/config"
)

func Test_ParseEnv_AppliesDefaults_WhenEnvironmentIsEmpty(t *testing.T) {
	// act
	cfg, err := config.ParseEnv()

	// assert
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.PoolSize)
	assert.Equal(t, 256, cfg.QueueCapacity)
	assert.Equal(t, config.EngineMemory, cfg.ProjectionEngine)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func Test_ParseEnv_ReadsValuesFromEnvironment(t *testing.T) {
	// arrange
	t.Setenv("EVENTBUS_POOL_SIZE", "4")
	t.Setenv("EVENTBUS_QUEUE_CAPACITY", "32")
	t.Setenv("PROJECTION_ENGINE", "sqlite")

	// act
	cfg, err := config.ParseEnv()

	// assert
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.PoolSize)
	assert.Equal(t, 32, cfg.QueueCapacity)
	assert.Equal(t, config.EngineSQLite, cfg.ProjectionEngine)
}

func Test_ParseEnv_RejectsUnknownProjectionEngine(t *testing.T) {
	// arrange
	t.Setenv("PROJECTION_ENGINE", "cassandra")

	// act
	_, err := config.ParseEnv()

	// assert
	assert.ErrorIs(t, err, config.ErrUnknownProjectionEngine)
}
