package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/DonovanMods/cfapi/apierr"
)

// FileName is the name of the configuration file inside a config directory.
const FileName = "config.yaml"

const (
	defaultBaseURL  = "https://api.curseforge.com"
	defaultLogLevel = "info"
)

// Config holds the settings needed to build a client
type Config struct {
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		BaseURL:  defaultBaseURL,
		LogLevel: defaultLogLevel,
	}
}

// Load reads configuration from the given directory
func Load(configDir string) (*Config, error) {
	cfg, err := load(filepath.Join(configDir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil // Return defaults
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from an explicit file path, which must exist.
func LoadFile(path string) (*Config, error) {
	path, err := ParseConfigPath(path)
	if err != nil {
		return nil, err
	}
	return load(path)
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing config: %v", apierr.ErrInvalidConfig, err)
	}

	// Keys present but left blank fall back to defaults
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return cfg, nil
}

// Save writes configuration to the given directory
func (c *Config) Save(configDir string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	// The file holds the API key
	configPath := filepath.Join(configDir, FileName)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate reports whether the configuration can build a client.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return apierr.ErrMissingAPIKey
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base_url %q is not an http(s) URL", apierr.ErrInvalidConfig, c.BaseURL)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty level means info.
func (c *Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log_level: %v", apierr.ErrInvalidConfig, err)
	}
	return level, nil
}
