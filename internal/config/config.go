package config

import (
	"os"
	"strconv"

	"varlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	API    APIConfig
	Data   DataConfig
	Charts ChartConfig
}

// ServerConfig holds dashboard server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// APIConfig holds JSON API server settings
type APIConfig struct {
	Port string
}

// DataConfig holds data source settings
type DataConfig struct {
	// StatsFile is the path to the season stats file (.csv or .xlsx). Empty
	// means the synthetic fallback season is used.
	StatsFile string
}

// ChartConfig holds chart rendering settings
type ChartConfig struct {
	OutputDir string
	Theme     string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		API: APIConfig{
			Port: getEnvOrDefault("API_PORT", "8090"),
		},
		Data: DataConfig{
			StatsFile: getEnvOrDefault("STATS_FILE", ""),
		},
		Charts: ChartConfig{
			OutputDir: getEnvOrDefault("CHART_OUT_DIR", "reports"),
			Theme:     getEnvOrDefault("CHART_THEME", "light"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Charts.OutputDir == "" {
		return errors.ConfigInvalid("chart output directory is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid("server port must be numeric")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
