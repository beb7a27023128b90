package config

import (
	"github.com/telhawk-systems/sdk-mockservers/common/config"
)

type Config struct {
	Server   config.ServerConfig  `mapstructure:"server"`
	Envelope EnvelopeConfig       `mapstructure:"envelope"`
	NATS     config.NATSConfig    `mapstructure:"nats"`
	Logging  config.LoggingConfig `mapstructure:"logging"`
}

type EnvelopeConfig struct {
	// Dir receives one envelope_<uuid>.json file per stored envelope.
	Dir string `mapstructure:"dir"`
	// PathMarker selects the POSTs that carry envelopes.
	PathMarker  string `mapstructure:"path_marker"`
	MaxBodySize int64  `mapstructure:"max_body_size"`
}

func Load(configPath string) (*Config, error) {
	v := config.NewViper("ENVELOPE", configPath)

	v.SetDefault("envelope.dir", "envelopes")
	v.SetDefault("envelope.path_marker", "/envelope/")
	v.SetDefault("envelope.max_body_size", 100<<20)
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("nats.reconnect_wait", "2s")

	var cfg Config
	if err := config.Read(v, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
