// Package benchcfg loads configuration from file and environment via Koanf.
package benchcfg

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the environment variable prefix for overrides.
const EnvPrefix = "HWBENCH_"

// Load builds a Config from defaults, an optional YAML file, and environment
// variables, in that priority order (later sources win). An empty path skips
// the file layer. The result is verified before it is returned.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// File layer (optional).
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Environment layer: HWBENCH_CACHE_FLUSH → cache.flush.
	transform := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "_", ".")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", transform), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	// Unmarshal over defaults: only keys present in a layer override.
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Verify(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
