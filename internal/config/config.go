// Package config loads application configuration from the environment.
package config

import "github.com/kelseyhightower/envconfig"

// Config holds every configurable value for the API.
type Config struct {
	Env         string   `envconfig:"ENV" default:"development"`
	Port        string   `envconfig:"PORT" default:"8080"`
	DatabaseURL string   `envconfig:"DATABASE_URL" required:"true"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`

	// ProcessDefaultStatus is the status given to a process when the first
	// action for its lead is recorded. Reconciliation never overwrites the
	// status afterwards.
	ProcessDefaultStatus string `envconfig:"PROCESS_DEFAULT_STATUS" default:"active"`
}

// Load reads the environment and populates a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
