package main

import (
	"github.com/harrybrwn/env"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config is read from LINEAR_* environment variables. Flags that were set
// on the command line win over the environment.
type Config struct {
	AverageServiceMinutes int    `env:"AVERAGE_SERVICE_MINUTES"`
	RingCapacity          int    `env:"RING_CAPACITY"`
	LogLevel              string `env:"LOG_LEVEL"`
}

func defaultConfig() Config {
	return Config{
		AverageServiceMinutes: 10,
		RingCapacity:          5,
		LogLevel:              "info",
	}
}

func (c *Config) Validate() error {
	if c.AverageServiceMinutes <= 0 {
		return errors.Errorf("average service time must be positive, got %d", c.AverageServiceMinutes)
	}
	if c.RingCapacity < 0 {
		return errors.Errorf("ring capacity cannot be negative, got %d", c.RingCapacity)
	}
	return nil
}

// load reads the environment into every field whose flag was not
// changed.
func (c *Config) load(flags *pflag.FlagSet) error {
	fromEnv := *c
	err := env.ReadEnvPrefixed("linear", &fromEnv)
	if err != nil {
		return errors.Wrap(err, "failed to read environment")
	}
	if !flags.Changed("average") {
		c.AverageServiceMinutes = fromEnv.AverageServiceMinutes
	}
	if !flags.Changed("capacity") {
		c.RingCapacity = fromEnv.RingCapacity
	}
	if !flags.Changed("log-level") {
		c.LogLevel = fromEnv.LogLevel
	}
	return c.Validate()
}
