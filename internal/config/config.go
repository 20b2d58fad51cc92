// Package config loads service configuration from a TOML file and
// environment variables. Environment variables take precedence over
// file values.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tlcpharma/dashboard-backend/internal/api"
)

// ProviderMode selects where metric data comes from.
const (
	ProviderMemory = "memory"
	ProviderHTTP   = "http"
)

// UpstreamConfig holds settings for the HTTP data-service provider.
type UpstreamConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxRetries  int           `mapstructure:"max_retries"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
	MaxDelay    time.Duration `mapstructure:"max_delay"`
}

// LoggerConfig controls log output.
type LoggerConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// ProviderConfig selects and seeds the metric provider.
type ProviderConfig struct {
	Mode     string `mapstructure:"mode"`
	DemoDays int    `mapstructure:"demo_days"`
}

// Config is the global configuration for the dashboard backend.
type Config struct {
	HTTP     api.Config     `mapstructure:"http"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Provider ProviderConfig `mapstructure:"provider"`
}

// Load reads configuration from cfgFile (TOML) and the environment.
// A missing file is not an error; the service can run on env vars and
// defaults alone.
func Load(cfgFile string) (*Config, error) {
	viper.SetConfigType("toml")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars()
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./config")
		viper.AddConfigPath("/etc/pharmacy-dashboard")
		_ = viper.ReadInConfig()
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	switch config.Provider.Mode {
	case ProviderMemory, ProviderHTTP:
	default:
		return nil, fmt.Errorf("unknown provider mode %q", config.Provider.Mode)
	}
	if config.Provider.Mode == ProviderHTTP && config.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("provider mode %q requires upstream.base_url", ProviderHTTP)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("http.port", "8080")
	viper.SetDefault("http.request_timeout", "30s")
	viper.SetDefault("upstream.timeout", "15s")
	viper.SetDefault("upstream.max_retries", 3)
	viper.SetDefault("upstream.retry_delay", "500ms")
	viper.SetDefault("upstream.max_delay", "8s")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("provider.mode", ProviderMemory)
	viper.SetDefault("provider.demo_days", 460)
}

// bindEnvVars binds flat env var names alongside the nested
// double-underscore form, e.g. both HTTP_PORT and HTTP__PORT work.
func bindEnvVars() {
	viper.BindEnv("http.port", "HTTP_PORT")
	viper.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	viper.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")

	viper.BindEnv("upstream.base_url", "UPSTREAM_BASE_URL")
	viper.BindEnv("upstream.timeout", "UPSTREAM_TIMEOUT")
	viper.BindEnv("upstream.max_retries", "UPSTREAM_MAX_RETRIES")
	viper.BindEnv("upstream.retry_delay", "UPSTREAM_RETRY_DELAY")
	viper.BindEnv("upstream.max_delay", "UPSTREAM_MAX_DELAY")

	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.development", "LOG_DEVELOPMENT")

	viper.BindEnv("provider.mode", "PROVIDER_MODE")
	viper.BindEnv("provider.demo_days", "PROVIDER_DEMO_DAYS")
}
