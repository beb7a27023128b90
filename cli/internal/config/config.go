package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	commonconfig "github.com/telhawk-systems/sdk-mockservers/common/config"
)

const DefaultNATSURL = "nats://127.0.0.1:4222"

// Config is the mockctl configuration file, ~/.mockctl/config.yaml by default.
type Config struct {
	CurrentProfile string              `yaml:"current_profile" json:"current_profile"`
	Profiles       map[string]*Profile `yaml:"profiles" json:"profiles"`
	path           string
}

// Profile is one mock server deployment mockctl can talk to.
type Profile struct {
	URL     string `yaml:"url" json:"url"`
	NATSURL string `yaml:"nats_url,omitempty" json:"nats_url,omitempty"`
}

func Default() *Config {
	return &Config{
		CurrentProfile: "default",
		Profiles:       make(map[string]*Profile),
	}
}

// DefaultProfile is used when no profile is configured.
func DefaultProfile() *Profile {
	return &Profile{URL: commonconfig.DefaultURL, NATSURL: DefaultNATSURL}
}

func Load(cfgFile string) (*Config, error) {
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfgFile = filepath.Join(home, ".mockctl", "config.yaml")
	}

	cfg := Default()
	cfg.path = cfgFile

	data, err := os.ReadFile(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]*Profile)
	}

	return cfg, nil
}

func (c *Config) Save() error {
	if c.path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.path = filepath.Join(home, ".mockctl", "config.yaml")
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0o600)
}

func (c *Config) SaveProfile(name, url, natsURL string) error {
	if c.Profiles == nil {
		c.Profiles = make(map[string]*Profile)
	}

	c.Profiles[name] = &Profile{
		URL:     url,
		NATSURL: natsURL,
	}

	c.CurrentProfile = name
	return c.Save()
}

// GetProfile returns the named profile, the current one for "". The
// "default" profile falls back to DefaultProfile when it was never saved.
func (c *Config) GetProfile(name string) (*Profile, error) {
	if name == "" {
		name = c.CurrentProfile
	}

	profile, ok := c.Profiles[name]
	if !ok {
		if name == "default" || name == "" {
			return DefaultProfile(), nil
		}
		return nil, fmt.Errorf("profile '%s' not found", name)
	}

	return profile, nil
}

func (c *Config) RemoveProfile(name string) error {
	if _, ok := c.Profiles[name]; !ok {
		return fmt.Errorf("profile '%s' not found", name)
	}

	delete(c.Profiles, name)

	if c.CurrentProfile == name {
		c.CurrentProfile = ""
	}

	return c.Save()
}

// ProfileNames returns the configured profile names in order.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
