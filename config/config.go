package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all fahrplan configuration.
type Config struct {
	API      APIConfig
	Logger   LoggerConfig
	Output   OutputConfig
	Timezone string
}

// APIConfig configures the timetable service client.
type APIConfig struct {
	URL             string
	Timeout         time.Duration
	Proxy           string
	RetryAttempts   int
	RetryDelay      time.Duration
	RateLimitPerMin int
	CacheTTL        time.Duration
	CacheSize       int
	// Limit is the number of connections to request, 0 leaves it to the server.
	Limit int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OutputConfig struct {
	Full bool
}

// Load loads configuration using Viper.
// Config file name: fahrplan.yaml, searched in $HOME/.config/fahrplan, ., /etc/fahrplan/
// unless file is given explicitly.
func Load(file string) (*Config, error) {
	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("fahrplan")
		v.SetConfigType("yaml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fahrplan"))
		}
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/fahrplan/")
	}

	v.SetEnvPrefix("fahrplan")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.API.URL = strings.TrimRight(v.GetString("api.url"), "/")
	cfg.API.Timeout = v.GetDuration("api.timeout")
	cfg.API.Proxy = expandEnvVar(v.GetString("api.proxy"))
	cfg.API.RetryAttempts = v.GetInt("api.retry_attempts")
	cfg.API.RetryDelay = v.GetDuration("api.retry_delay")
	cfg.API.RateLimitPerMin = v.GetInt("api.rate_limit_per_min")
	cfg.API.CacheTTL = v.GetDuration("api.cache_ttl")
	cfg.API.CacheSize = v.GetInt("api.cache_size")
	cfg.API.Limit = v.GetInt("api.limit")

	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Timezone = v.GetString("timezone")
	cfg.Output.Full = v.GetBool("output.full")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.url", "http://transport.opendata.ch/v1")
	v.SetDefault("api.timeout", "10s")
	v.SetDefault("api.proxy", "")
	v.SetDefault("api.retry_attempts", 2)
	v.SetDefault("api.retry_delay", "500ms")
	v.SetDefault("api.rate_limit_per_min", 60)
	v.SetDefault("api.cache_ttl", "1m")
	v.SetDefault("api.cache_size", 128)
	v.SetDefault("api.limit", 0)

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", false)

	v.SetDefault("timezone", "Europe/Zurich")
	v.SetDefault("output.full", false)
}

func validate(cfg *Config) error {
	if cfg.API.URL == "" {
		return fmt.Errorf("api.url is required")
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	if cfg.API.RetryAttempts < 0 {
		return fmt.Errorf("api.retry_attempts must not be negative")
	}
	if cfg.API.CacheSize < 0 {
		return fmt.Errorf("api.cache_size must not be negative")
	}
	if cfg.API.Limit < 0 {
		return fmt.Errorf("api.limit must not be negative")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(value[2 : len(value)-1])
	}
	return value
}
