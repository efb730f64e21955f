package config

import "time"

// Config represents the bulk-runner configuration file structure
type Config struct {
	// DefaultTarget is the target used when --target is not given
	DefaultTarget string `yaml:"defaultTarget,omitempty" json:"defaultTarget,omitempty"`

	// Targets is a map of target names to their configurations
	Targets map[string]TargetConfig `yaml:"targets,omitempty" json:"targets,omitempty"`

	// Defaults contains default settings for runs
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// TargetConfig represents configuration for a single endpoint target
// (an LLM gateway, an evaluation service, an export sink)
type TargetConfig struct {
	// URL is the endpoint each task payload is posted to
	URL string `yaml:"url" json:"url"`

	// APIKeyEnv names the environment variable holding the bearer token.
	// The key itself never lives in the config file.
	APIKeyEnv string `yaml:"apiKeyEnv,omitempty" json:"apiKeyEnv,omitempty"`

	// Headers are added to every request to this target
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	// Labels for organizing targets
	Labels map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`

	// Enabled indicates if this target may be used for runs
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// DefaultsConfig contains default configuration values for runs
type DefaultsConfig struct {
	// Concurrency is the number of tasks in flight at once
	Concurrency int `yaml:"concurrency,omitempty" json:"concurrency,omitempty"`

	// MaxRetries is the per-task retry budget
	MaxRetries int `yaml:"maxRetries,omitempty" json:"maxRetries,omitempty"`

	// ExitOnError stops dispatching once a task permanently fails
	ExitOnError bool `yaml:"exitOnError,omitempty" json:"exitOnError,omitempty"`

	// Timeout for each request to a target
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// OutputFormat is the default output format (table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`
}
