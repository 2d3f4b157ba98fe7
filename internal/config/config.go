// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"vm-pricing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing API configuration
	Pricing PricingConfig `json:"pricing"`

	// Server contains API server configuration
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing API settings
type PricingConfig struct {
	// RetailEndpoint is the Azure Retail Prices API base URL
	RetailEndpoint string `json:"retail_endpoint"`

	// HTTPTimeoutSeconds bounds a single pricing API call (0 = no timeout)
	HTTPTimeoutSeconds int `json:"http_timeout_seconds"`

	// DefaultProvider is the cloud provider catalogs are keyed by
	DefaultProvider string `json:"default_provider"`
}

// ServerConfig contains API server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// ReadTimeoutSeconds bounds request reads
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`
}

// HTTPTimeout returns the pricing API timeout as a duration
func (p PricingConfig) HTTPTimeout() time.Duration {
	return time.Duration(p.HTTPTimeoutSeconds) * time.Second
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			RetailEndpoint:     "https://prices.azure.com/api/retail/prices",
			HTTPTimeoutSeconds: 0,
			DefaultProvider:    "azure",
		},
		Server: ServerConfig{
			Addr:               ":8080",
			ReadTimeoutSeconds: 30,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
