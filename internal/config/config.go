package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration, loaded from a TOML file.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	PartyAPI    PartyAPIConfig    `toml:"party_api"`
	AuthService AuthServiceConfig `toml:"auth_service"`
	Cache       CacheConfig       `toml:"cache"`
	I18n        I18nConfig        `toml:"i18n"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig logging settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PartyAPIConfig settings for the remote booking store client.
type PartyAPIConfig struct {
	URL            string  `toml:"url"`
	Timeout        int     `toml:"timeout"` // seconds
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// AuthServiceConfig settings for the credential service client.
type AuthServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// CacheConfig slot cache settings.
type CacheConfig struct {
	// WindowMonthsBack / WindowMonthsForward bound the warm-up
	// fetch-all window around today.
	WindowMonthsBack    int `toml:"window_months_back"`
	WindowMonthsForward int `toml:"window_months_forward"`
}

// I18nConfig message catalog settings.
type I18nConfig struct {
	Locale      string `toml:"locale"`
	MessagesDir string `toml:"messages_dir"`
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "sc-booking-console"
	}
	if c.PartyAPI.Timeout == 0 {
		c.PartyAPI.Timeout = 10
	}
	if c.PartyAPI.RateLimitRPS == 0 {
		c.PartyAPI.RateLimitRPS = 20
	}
	if c.PartyAPI.RateLimitBurst == 0 {
		c.PartyAPI.RateLimitBurst = 10
	}
	if c.AuthService.Timeout == 0 {
		c.AuthService.Timeout = 10
	}
	if c.Cache.WindowMonthsBack == 0 {
		c.Cache.WindowMonthsBack = 12
	}
	if c.Cache.WindowMonthsForward == 0 {
		c.Cache.WindowMonthsForward = 12
	}
	if c.I18n.Locale == "" {
		c.I18n.Locale = "es"
	}
	if c.I18n.MessagesDir == "" {
		c.I18n.MessagesDir = "messages"
	}
}

func (c *Config) validate() error {
	if c.PartyAPI.URL == "" {
		return fmt.Errorf("config: party_api.url is required")
	}
	if c.AuthService.URL == "" {
		return fmt.Errorf("config: auth_service.url is required")
	}
	return nil
}
