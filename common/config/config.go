// Package config holds the configuration pieces shared by all mock servers and
// the viper plumbing each service uses to load its own Config.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultURL is where every mock server listens unless told otherwise.
const DefaultURL = "http://127.0.0.1:8000"

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	// URL is the base URL the server is reachable at; its host and port are
	// used as the listen address.
	URL             string        `mapstructure:"url"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// CORSOrigins enables CORS for the listed origins. Empty disables it.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// Addr returns the host:port to listen on.
func (s ServerConfig) Addr() (string, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return "", fmt.Errorf("invalid server url %q: %w", s.URL, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("invalid server url %q: missing host", s.URL)
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

// BaseURL returns URL without a trailing slash.
func (s ServerConfig) BaseURL() string {
	return strings.TrimRight(s.URL, "/")
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	URL     string `mapstructure:"url"`
	Enabled bool   `mapstructure:"enabled"`
}

// NATSConfig holds NATS message broker configuration.
type NATSConfig struct {
	URL           string        `mapstructure:"url"`
	Enabled       bool          `mapstructure:"enabled"`
	ReconnectWait time.Duration `mapstructure:"reconnect_wait"`
}

// NewViper returns a viper instance reading configPath (or config.yaml from the
// working directory when empty) with environment overrides under envPrefix.
// SERVER_URL style keys map to server.url.
func NewViper(envPrefix, configPath string) *viper.Viper {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetCommonDefaults(v)
	return v
}

// SetCommonDefaults sets the defaults for the shared config sections.
func SetCommonDefaults(v *viper.Viper) {
	v.SetDefault("server.url", DefaultURL)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Read loads the config file, if any, and unmarshals everything into out.
// A missing default config file is not an error; a missing explicit one is.
func Read(v *viper.Viper, out interface{}) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}
