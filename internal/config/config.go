package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"fxpick/internal/eventbus"
)

// DefaultEndpoint is the reference dataset of countries. The full dataset is
// fetched per lookup cycle; filtering happens client-side.
const DefaultEndpoint = "https://restcountries.com/v3.1/all?fields=name,flag,currencies"

// Config represents the application configuration
type Config struct {
	Version          int        `toml:"version"`
	Endpoint         string     `toml:"endpoint"`
	RequestTimeoutMS int        `toml:"request_timeout_ms"`
	UISettings       UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DebounceMS  int    `toml:"debounce_ms"`
	Placeholder string `toml:"placeholder"`
	MaxVisible  int    `toml:"max_visible"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	appDir := filepath.Join(configDir, "fxpick")
	os.MkdirAll(appDir, 0755)

	return &configService{
		filePath: filepath.Join(appDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Endpoint: cfg.Endpoint})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Endpoint: cfg.Endpoint})
	}

	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills in zero values left by a partial config file
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.RequestTimeoutMS <= 0 {
		c.RequestTimeoutMS = d.RequestTimeoutMS
	}
	if c.UISettings.DebounceMS <= 0 {
		c.UISettings.DebounceMS = d.UISettings.DebounceMS
	}
	if c.UISettings.Placeholder == "" {
		c.UISettings.Placeholder = d.UISettings.Placeholder
	}
	if c.UISettings.MaxVisible <= 0 {
		c.UISettings.MaxVisible = d.UISettings.MaxVisible
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:          1,
		Endpoint:         DefaultEndpoint,
		RequestTimeoutMS: 10000,
		UISettings: UISettings{
			DebounceMS:  300,
			Placeholder: "Search...",
			MaxVisible:  8,
		},
	}
}
