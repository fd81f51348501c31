package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultAPIBaseURL is the computation backend. Override at build time with:
// go build -ldflags "-X github.com/prakharDvedi/PanditAI/internal/config.DefaultAPIBaseURL=https://api.panditai.app"
var DefaultAPIBaseURL = "http://localhost:8000"

// DefaultGeocoderURL is the city-search endpoint of the geocoding service.
const DefaultGeocoderURL = "https://nominatim.openstreetmap.org/search"

// UserAgent identifies the client to the geocoding service, which requires
// an identifying agent header.
const UserAgent = "PanditAI/1.0"

// Config is the application configuration.
type Config struct {
	APIBaseURL  string  `yaml:"api_base_url" mapstructure:"api_base_url"`
	GeocoderURL string  `yaml:"geocoder_url" mapstructure:"geocoder_url"`
	Ayanamsa    string  `yaml:"ayanamsa" mapstructure:"ayanamsa"`
	Timezone    float64 `yaml:"timezone" mapstructure:"timezone"`
}

var (
	configPath string
	configDir  string
)

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
	configDir = filepath.Join(home, ".panditai")
	configPath = filepath.Join(configDir, "config.yaml")
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() string {
	return configPath
}

// GetConfigDir returns the config directory. The prediction cache and log
// file live here too.
func GetConfigDir() string {
	return configDir
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIBaseURL:  DefaultAPIBaseURL,
		GeocoderURL: DefaultGeocoderURL,
		Ayanamsa:    "LAHIRI",
		Timezone:    5.5,
	}
}

// Load loads the configuration from file, creating a default config on
// first run.
func Load() (*Config, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Backfill fields missing from older config files.
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.GeocoderURL == "" {
		cfg.GeocoderURL = DefaultGeocoderURL
	}
	if cfg.Ayanamsa == "" {
		cfg.Ayanamsa = "LAHIRI"
	}
	if cfg.Timezone == 0 {
		cfg.Timezone = 5.5
	}

	return &cfg, nil
}

// Save writes the configuration to file.
func Save(cfg *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
