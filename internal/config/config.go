package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"vlist/internal/domain"
	"vlist/internal/eventbus"
)

// ErrInvalidConfig is wrapped by validation failures
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the application configuration
type Config struct {
	Version int          `toml:"version"`
	List    ListSettings `toml:"list"`
	UI      UISettings   `toml:"ui"`
}

// ListSettings configures the virtual list engine
type ListSettings struct {
	Keeps         int    `toml:"keeps"`
	Buffer        int    `toml:"buffer"`
	Size          int    `toml:"size"`      // size hint for unmeasured items, 0 to learn it
	Direction     string `toml:"direction"` // vertical or horizontal
	DebounceMS    int    `toml:"debounce_ms"`
	ThrottleMS    int    `toml:"throttle_ms"`
	BottomRetries int    `toml:"bottom_retries"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowStatus bool   `toml:"show_status"`
	Wrap       bool   `toml:"wrap"`
	LogLevel   string `toml:"log_level"`
}

// Axis returns the configured scroll axis
func (s ListSettings) Axis() domain.Axis {
	return domain.Axis(s.Direction)
}

// Debounce returns the debounce interval
func (s ListSettings) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// Throttle returns the throttle interval
func (s ListSettings) Throttle() time.Duration {
	return time.Duration(s.ThrottleMS) * time.Millisecond
}

// Validate checks values the engine would otherwise accept silently
func (c *Config) Validate() error {
	if c.List.Keeps < 1 {
		return fmt.Errorf("%w: keeps must be at least 1, got %d", ErrInvalidConfig, c.List.Keeps)
	}
	if c.List.Buffer < 0 {
		return fmt.Errorf("%w: buffer must not be negative, got %d", ErrInvalidConfig, c.List.Buffer)
	}
	if c.List.Buffer >= c.List.Keeps {
		return fmt.Errorf("%w: buffer %d must be smaller than keeps %d", ErrInvalidConfig, c.List.Buffer, c.List.Keeps)
	}
	if c.List.Size < 0 {
		return fmt.Errorf("%w: size must not be negative, got %d", ErrInvalidConfig, c.List.Size)
	}
	if !c.List.Axis().Valid() {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, c.List.Direction)
	}
	if c.List.DebounceMS < 0 || c.List.ThrottleMS < 0 {
		return fmt.Errorf("%w: intervals must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "vlist", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	if path != "" {
		cs.filePath = path
	}
	cs.bus = bus
	return cs
}

// Path returns the default config path
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults if no file exists
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:  cs.filePath,
			Keeps: cfg.List.Keeps,
		})
	}
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		List: ListSettings{
			Keeps:         30,
			Buffer:        10,
			Direction:     string(domain.AxisVertical),
			BottomRetries: 10,
		},
		UI: UISettings{
			ShowStatus: true,
			Wrap:       true,
			LogLevel:   "info",
		},
	}
}
