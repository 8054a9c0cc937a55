// Package config loads the hello function's settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Defaults apply only to variables that are unset. A variable set to the
// empty string keeps the empty value.
const (
	DefaultGreeting       = "Hello from Guild!"
	DefaultEnvironment    = "dev"
	DefaultServiceVersion = "1.0.0"
	DefaultLogLevel       = "INFO"
)

// Config holds the environment-provided settings. Every field is optional.
type Config struct {
	// GreetingMessage is the fallback greeting used when the parameter store
	// cannot be read.
	GreetingMessage string `env:"GREETING_MESSAGE"`

	// Environment tags responses with the deployment stage (dev, prod, ...).
	Environment string `env:"ENVIRONMENT"`

	// ServiceVersion tags responses with the deployed build.
	ServiceVersion string `env:"SERVICE_VERSION"`

	// LogLevel accepts DEBUG, INFO, WARNING, ERROR or CRITICAL.
	LogLevel string `env:"LOG_LEVEL"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("error getting env configs: %w", err)
	}

	// envDefault would also replace set-but-empty values.
	for _, d := range []struct {
		key   string
		field *string
		value string
	}{
		{"GREETING_MESSAGE", &cfg.GreetingMessage, DefaultGreeting},
		{"ENVIRONMENT", &cfg.Environment, DefaultEnvironment},
		{"SERVICE_VERSION", &cfg.ServiceVersion, DefaultServiceVersion},
		{"LOG_LEVEL", &cfg.LogLevel, DefaultLogLevel},
	} {
		if _, ok := os.LookupEnv(d.key); !ok {
			*d.field = d.value
		}
	}
	return cfg, nil
}
