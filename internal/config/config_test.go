package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"GREETING_MESSAGE", "ENVIRONMENT", "SERVICE_VERSION", "LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		GreetingMessage: "Hello from Guild!",
		Environment:     "dev",
		ServiceVersion:  "1.0.0",
		LogLevel:        "INFO",
	}, cfg)
}

func TestLoad_EmptyValuesAreKept(t *testing.T) {
	for _, k := range []string{"GREETING_MESSAGE", "ENVIRONMENT", "SERVICE_VERSION", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{}, cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GREETING_MESSAGE", "Hello from Environment!")
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("SERVICE_VERSION", "2.0.0")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		GreetingMessage: "Hello from Environment!",
		Environment:     "test",
		ServiceVersion:  "2.0.0",
		LogLevel:        "DEBUG",
	}, cfg)
}
