package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml, trying the working directory first.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./configs/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	return loadFromBytes(data)
}

// LoadAppConfigFrom loads and validates the configuration from an explicit
// path, for the --config flag.
func LoadAppConfigFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return loadFromBytes(data)
}

func loadFromBytes(data []byte) error {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Graph); err != nil {
		return err
	}
	// feeds are optional; if present validate each
	for _, f := range cfg.Feeds {
		if err := v.Struct(f); err != nil {
			return err
		}
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

func applyDefaults(c *AppConfig) {
	if c.Server.Port == 0 {
		c.Server.Port = 8090
	}
	if c.Server.CacheSize == 0 {
		c.Server.CacheSize = 512
	}
	if c.Server.CacheTTLSec == 0 {
		c.Server.CacheTTLSec = 60
	}
	if c.Server.ShutdownGrace == 0 {
		c.Server.ShutdownGrace = 5
	}
}

// SelectFeed chooses a feed by name, falling back to the first configured
// feed. The zero FeedConfig comes back when nothing is configured.
func SelectFeed(name string) FeedConfig {
	if name != "" {
		for _, f := range Config.Feeds {
			if f.Name == name {
				return f
			}
		}
	}
	if len(Config.Feeds) > 0 {
		return Config.Feeds[0]
	}
	return FeedConfig{}
}
