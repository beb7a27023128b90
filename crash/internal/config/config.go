package config

import (
	"github.com/telhawk-systems/sdk-mockservers/common/config"
)

type Config struct {
	Server  config.ServerConfig  `mapstructure:"server"`
	Crash   CrashConfig          `mapstructure:"crash"`
	Logging config.LoggingConfig `mapstructure:"logging"`
}

type CrashConfig struct {
	// PreviewLimit is how many characters of each body are logged.
	PreviewLimit int   `mapstructure:"preview_limit"`
	MaxBodySize  int64 `mapstructure:"max_body_size"`
}

func Load(configPath string) (*Config, error) {
	v := config.NewViper("CRASH", configPath)

	v.SetDefault("crash.preview_limit", 1000)
	v.SetDefault("crash.max_body_size", 100<<20)

	var cfg Config
	if err := config.Read(v, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
