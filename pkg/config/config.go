package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/updeck/internal/core/domain"
	"github.com/kamal-hamza/updeck/internal/core/services"
)

// EnvServerURL overrides server_url when set
const EnvServerURL = "UPDECK_SERVER_URL"

type Config struct {
	// Server
	ServerURL      string `yaml:"server_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	RetryMax       int    `yaml:"retry_max"`

	// Table
	PageSize            int    `yaml:"page_size"`
	ScrollThresholdRows int    `yaml:"scroll_threshold_rows"`
	DefaultSort         string `yaml:"default_sort"`
	ReverseSort         bool   `yaml:"reverse_sort"`

	// Catalog
	TileSize     int   `yaml:"tile_size"`
	PreviewBytes int64 `yaml:"preview_bytes"`

	// UI Settings
	DisplayDateFormat string `yaml:"display_date_format"`
	ColorTheme        string `yaml:"color_theme"`

	// Misc
	LogLevel    string `yaml:"log_level"`
	OpenCommand string `yaml:"open_command"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:           "http://localhost:3000",
		TimeoutSeconds:      10,
		RetryMax:            3,
		PageSize:            50,
		ScrollThresholdRows: 10,
		DefaultSort:         "",
		ReverseSort:         false,
		TileSize:            services.DefaultTileSize,
		PreviewBytes:        64 * 1024,
		DisplayDateFormat:   "2006-01-02 15:04",
		ColorTheme:          "auto",
		LogLevel:            "info",
		OpenCommand:         "",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.ServerURL) == "" {
		cfg.ServerURL = defaults.ServerURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if cfg.RetryMax < 0 {
		cfg.RetryMax = 0
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaults.PageSize
	}
	if cfg.ScrollThresholdRows <= 0 {
		cfg.ScrollThresholdRows = defaults.ScrollThresholdRows
	}
	if cfg.TileSize == 0 {
		cfg.TileSize = defaults.TileSize
	}
	if cfg.PreviewBytes <= 0 {
		cfg.PreviewBytes = defaults.PreviewBytes
	}
	if cfg.DisplayDateFormat == "" {
		cfg.DisplayDateFormat = defaults.DisplayDateFormat
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = defaults.ColorTheme
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}

	cfg.TileSize = services.ClampTileSize(cfg.TileSize)

	// Validate DefaultSort; "" keeps server order
	if field, err := domain.ParseSortField(cfg.DefaultSort); err == nil {
		cfg.DefaultSort = string(field)
	} else {
		cfg.DefaultSort = ""
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvServerURL)); v != "" {
		c.ServerURL = v
	}
}

// Timeout returns the HTTP timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
