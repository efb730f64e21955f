package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

const (
	defaultConfigName = ".pxbulk"
	defaultConfigDir  = ".pxbulk"
	envPrefix         = "PXBULK"
)

// Manager handles bulk-runner configuration
type Manager struct {
	configPath string
	config     *Config
	viper      *viper.Viper
}

// NewManager creates a new configuration manager
func NewManager(configPath string) *Manager {
	return &Manager{
		configPath: configPath,
		viper:      viper.New(),
		config:     &Config{},
	}
}

// Load loads the configuration from file
func (m *Manager) Load() (*Config, error) {
	// Set up config file path
	if m.configPath != "" {
		m.viper.SetConfigFile(m.configPath)
	} else {
		// Try multiple locations
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		// Check ~/.pxbulk/config.yaml
		m.viper.AddConfigPath(filepath.Join(home, defaultConfigDir))
		// Check ~/.pxbulk.yaml
		m.viper.AddConfigPath(home)
		m.viper.SetConfigName(defaultConfigName)
		m.viper.SetConfigType("yaml")
	}

	// Set environment variable support
	m.viper.SetEnvPrefix(envPrefix)
	m.viper.AutomaticEnv()

	// Initialize config to ensure defaults are set even for empty configs
	m.config = &Config{}

	// Read config file
	if err := m.viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// File doesn't exist, apply defaults and return
		m.applyDefaults()
		return m.config, nil
	}

	// Unmarshal into config struct
	if err := m.viper.Unmarshal(m.config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply defaults
	m.applyDefaults()

	return m.config, nil
}

// Save saves the current configuration to file
func (m *Manager) Save() error {
	if m.configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir := filepath.Join(home, defaultConfigDir)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		m.configPath = filepath.Join(configDir, "config.yaml")
	}

	// Ensure directory exists
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write config to file
	if err := m.viper.WriteConfigAs(m.configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration
func (m *Manager) GetConfig() *Config {
	return m.config
}

// GetTargetConfig returns configuration for a specific target
func (m *Manager) GetTargetConfig(name string) (*TargetConfig, bool) {
	if m.config.Targets == nil {
		return nil, false
	}

	target, ok := m.config.Targets[name]
	return &target, ok
}

// SetTargetConfig sets or updates configuration for a target
func (m *Manager) SetTargetConfig(name string, config TargetConfig) {
	if m.config.Targets == nil {
		m.config.Targets = make(map[string]TargetConfig)
	}

	m.config.Targets[name] = config
	m.viper.Set("targets", m.config.Targets)
}

// SetDefaultTarget sets the target used when none is named
func (m *Manager) SetDefaultTarget(name string) {
	m.config.DefaultTarget = name
	m.viper.Set("defaulttarget", name)
}

// RemoveTargetConfig removes configuration for a target
func (m *Manager) RemoveTargetConfig(name string) {
	if m.config.Targets == nil {
		return
	}

	delete(m.config.Targets, name)
	m.viper.Set("targets", m.config.Targets)
}

// EnabledTargets returns a list of enabled target names
func (m *Manager) EnabledTargets() []string {
	if m.config.Targets == nil {
		return nil
	}

	enabled := make([]string, 0)
	for name, target := range m.config.Targets {
		if target.Enabled {
			enabled = append(enabled, name)
		}
	}

	return enabled
}

// TargetsByLabel returns targets matching the given labels
func (m *Manager) TargetsByLabel(labels map[string]string) []string {
	if m.config.Targets == nil {
		return nil
	}

	matching := make([]string, 0)
	for name, target := range m.config.Targets {
		if !target.Enabled {
			continue
		}

		if matchesLabels(target.Labels, labels) {
			matching = append(matching, name)
		}
	}

	return matching
}

// ResolveTarget picks the target for a run: the explicit name when given,
// the configured default otherwise.
func (m *Manager) ResolveTarget(name string) (string, *TargetConfig, bool) {
	if name == "" {
		name = m.config.DefaultTarget
	}
	if name == "" {
		return "", nil, false
	}

	cfg, ok := m.GetTargetConfig(name)
	if !ok {
		return name, nil, false
	}
	return name, cfg, true
}

// applyDefaults sets default values for configuration
func (m *Manager) applyDefaults() {
	if m.config == nil {
		return
	}

	if m.config.Defaults.Concurrency == 0 {
		m.config.Defaults.Concurrency = 5
	}

	if m.config.Defaults.Timeout == 0 {
		m.config.Defaults.Timeout = 30 * time.Second
	}

	if m.config.Defaults.OutputFormat == "" {
		m.config.Defaults.OutputFormat = "table"
	}
}

// matchesLabels checks if target labels match the required labels
func matchesLabels(targetLabels, requiredLabels map[string]string) bool {
	if len(requiredLabels) == 0 {
		return true
	}

	for key, value := range requiredLabels {
		targetValue, exists := targetLabels[key]
		if !exists || targetValue != value {
			return false
		}
	}

	return true
}
