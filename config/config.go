package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	GoogleCalendar GoogleCalendarConfig
	Cache          CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// GoogleCalendarConfig configures upstream access. APIKey is the normal
// path; CredentialsPath switches to a service-account transport.
type GoogleCalendarConfig struct {
	APIKey          string
	CredentialsPath string
	BaseURL         string // override for tests, empty means production
	RateLimitPerSec float64
}

// CacheConfig selects and tunes the cache backend.
type CacheConfig struct {
	Backend    string // "bolt" or "memory"
	Path       string // bolt database file
	Prefix     string // key namespace shared by all entries
	MemorySize int    // max entries for the memory backend
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.GoogleCalendar.APIKey = viper.GetString("google_calendar.api_key")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.BaseURL = viper.GetString("google_calendar.base_url")
	cfg.GoogleCalendar.RateLimitPerSec = viper.GetFloat64("google_calendar.rate_limit_per_sec")
	if apiKey := viper.GetString("google_api_key"); apiKey != "" {
		cfg.GoogleCalendar.APIKey = apiKey
	}
	if creds := viper.GetString("google_calendar_credentials"); creds != "" {
		cfg.GoogleCalendar.CredentialsPath = creds
	}

	cfg.Cache.Backend = viper.GetString("cache.backend")
	cfg.Cache.Path = viper.GetString("cache.path")
	cfg.Cache.Prefix = viper.GetString("cache.prefix")
	cfg.Cache.MemorySize = viper.GetInt("cache.memory_size")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.rate_limit_per_sec", 10)
	viper.SetDefault("cache.backend", "bolt")
	viper.SetDefault("cache.path", "calendar-cache.db")
	viper.SetDefault("cache.prefix", "gcal_cache_")
	viper.SetDefault("cache.memory_size", 1024)
}
