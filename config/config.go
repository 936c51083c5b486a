// Package config loads the service configuration from YAML or JSON files,
// layered with FP_-prefixed environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ecomodal/footprint/core/metrics"
)

type Config struct {
	Server  ServerConfig   `json:"server"`
	Catalog CatalogConfig  `json:"catalog"`
	Metrics metrics.Config `json:"metrics"`
}

// Load reads the configuration at path. An empty path skips the file and
// runs on defaults. Environment variables prefixed with FP_ override file
// values either way, with __ separating nested keys: FP_SERVER__LISTEN
// overrides server.listen.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
