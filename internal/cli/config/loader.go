package config

import (
	"fmt"

	"github.com/yndnr/jsettings-go/internal/infra/confloader"
)

// Load builds the configuration from defaults, the YAML file at path (if
// any), the environment and flags. flags holds only values the user set
// explicitly, keyed by dotted path.
func Load(path string, flags map[string]any) (*Config, error) {
	cfg := Default()

	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithFlags(flags),
	)
	if err := l.Load(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Verify(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
