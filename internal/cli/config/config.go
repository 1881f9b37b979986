package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/yndnr/jsettings-go/internal/cli/output"
	"github.com/yndnr/jsettings-go/internal/telemetry/logger"
	"github.com/yndnr/jsettings-go/pkg/jsettings"
)

// Config is the configuration for the jsettings tool.
type Config struct {
	Settings SettingsConfig `koanf:"settings"`
	Report   ReportConfig   `koanf:"report"`
	Log      LogConfig      `koanf:"log"`
	Output   OutputConfig   `koanf:"output"`
	Watch    WatchConfig    `koanf:"watch"`
}

// SettingsConfig names the documents to load.
type SettingsConfig struct {
	File   string `koanf:"file"`
	Schema string `koanf:"schema"`
	Policy string `koanf:"policy"` // strict, lenient
}

// ReportConfig selects the diagnostic sink.
type ReportConfig struct {
	Console bool `koanf:"console"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"` // text, json
}

// OutputConfig configures command output.
type OutputConfig struct {
	Format string `koanf:"format"` // table, json, yaml
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	Metrics  string        `koanf:"metrics"` // listen address, empty disables
	Interval time.Duration `koanf:"interval"`
}

// Default returns the default tool configuration.
func Default() *Config {
	return &Config{
		Settings: SettingsConfig{
			File:   jsettings.DefaultSettingsFile,
			Schema: jsettings.DefaultSchemaFile,
			Policy: string(jsettings.PolicyStrict),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format: string(output.FormatTable),
		},
		Watch: WatchConfig{
			Interval: time.Second,
		},
	}
}

// Verify checks the configuration for values no command can work with.
func (c *Config) Verify() error {
	var errs []error

	if c.Settings.File == "" {
		errs = append(errs, errors.New("settings.file is required"))
	}
	if c.Settings.Schema == "" {
		errs = append(errs, errors.New("settings.schema is required"))
	}
	if _, err := jsettings.ParsePolicy(c.Settings.Policy); err != nil {
		errs = append(errs, fmt.Errorf("settings.policy: %w", err))
	}
	if !logger.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unsupported level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: unsupported format %q (text, json)", c.Log.Format))
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if c.Watch.Interval < 0 {
		errs = append(errs, errors.New("watch.interval must not be negative"))
	}

	return errors.Join(errs...)
}
