// Package config holds the tuning knobs that are not secrets: server
// settings and the matcher threshold. Connection strings stay in the
// environment (see data.NewPool).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

type MatcherConfig struct {
	// MaxDistance is the strict edit-distance gate for fuzzy directory
	// matches; resolution misses beat wrong contact info.
	MaxDistance int `yaml:"maxDistance"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Matcher MatcherConfig `yaml:"matcher"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:           3000,
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Matcher: MatcherConfig{
			MaxDistance: 2,
		},
	}
}

// Load reads a yaml config over the defaults. An empty path means
// defaults only.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %s: %w", path, err)
	}
	if cfg.Server.Port <= 0 {
		return cfg, fmt.Errorf("config %s has invalid server port %d", path, cfg.Server.Port)
	}
	if cfg.Matcher.MaxDistance < 0 {
		return cfg, fmt.Errorf("config %s has negative matcher distance", path)
	}
	return cfg, nil
}
