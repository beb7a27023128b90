package config

import (
	"github.com/telhawk-systems/sdk-mockservers/common/config"
)

type Config struct {
	Server  config.ServerConfig  `mapstructure:"server"`
	Symbols SymbolsConfig        `mapstructure:"symbols"`
	Redis   config.RedisConfig   `mapstructure:"redis"`
	Logging config.LoggingConfig `mapstructure:"logging"`
}

// SymbolsConfig names the organization and project whose endpoints are served.
type SymbolsConfig struct {
	Org         string `mapstructure:"org"`
	Project     string `mapstructure:"project"`
	MaxBodySize int64  `mapstructure:"max_body_size"`
}

func Load(configPath string) (*Config, error) {
	v := config.NewViper("SYMBOLS", configPath)

	v.SetDefault("symbols.org", "sentry-sdks")
	v.SetDefault("symbols.project", "sentry-unity")
	v.SetDefault("symbols.max_body_size", 64<<20)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.url", "redis://localhost:6379/0")

	var cfg Config
	if err := config.Read(v, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
