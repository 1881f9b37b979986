package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/jsettings-go/internal/cli/config"
	"github.com/yndnr/jsettings-go/internal/infra/buildinfo"
	"github.com/yndnr/jsettings-go/internal/telemetry/logger"
	"github.com/yndnr/jsettings-go/pkg/jsettings"
)

const configKey = "config"

// flagKeys maps global flags to their configuration keys.
var flagKeys = map[string]string{
	"settings":   "settings.file",
	"schema":     "settings.schema",
	"policy":     "settings.policy",
	"console":    "report.console",
	"log-level":  "log.level",
	"log-format": "log.format",
	"output":     "output.format",
}

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "jsettings",
		Usage:   "Load JSON settings and validate them against a JSON Schema",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ValidateCommand(),
			ShowCommand(),
			GetCommand(),
			WatchCommand(),
		},
		Before: setup,
	}
}

// globalFlags returns the global CLI flags. Their defaults live in
// config.Default so that unset flags never override the config file or
// the environment.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path to a YAML tool configuration file",
		},
		&cli.StringFlag{
			Name:    "settings",
			Aliases: []string{"s"},
			Usage:   "Settings document (default: settings.json)",
		},
		&cli.StringFlag{
			Name:  "schema",
			Usage: "JSON Schema document (default: settings_schema.json)",
		},
		&cli.BoolFlag{
			Name:  "console",
			Usage: "Print diagnostics as 'level: message' lines instead of logging them",
		},
		&cli.StringFlag{
			Name:  "policy",
			Usage: "Load policy: strict, lenient (default: strict)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error (default: info)",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json (default: text)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml (default: table)",
		},
	}
}

// setup resolves the tool configuration and installs the process logger.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), setFlags(c))
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	c.App.Metadata[configKey] = cfg
	return nil
}

// setFlags collects the global flags the user set explicitly.
func setFlags(c *cli.Context) map[string]any {
	flags := make(map[string]any)
	for name, key := range flagKeys {
		if !c.IsSet(name) {
			continue
		}
		if name == "console" {
			flags[key] = c.Bool(name)
			continue
		}
		flags[key] = c.String(name)
	}
	return flags
}

// GetConfig retrieves the tool configuration resolved by the Before hook.
func GetConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// newLoader builds a settings loader from the tool configuration.
// Console diagnostics go to the app's writer.
func newLoader(c *cli.Context, cfg *config.Config, extra ...jsettings.Option) (*jsettings.Loader, error) {
	policy, err := jsettings.ParsePolicy(cfg.Settings.Policy)
	if err != nil {
		return nil, err
	}

	opts := []jsettings.Option{
		jsettings.WithSettingsFile(cfg.Settings.File),
		jsettings.WithSchemaFile(cfg.Settings.Schema),
		jsettings.WithPolicy(policy),
		jsettings.WithConsole(cfg.Report.Console),
		jsettings.WithConsoleWriter(c.App.Writer),
		jsettings.WithLogger(logger.Default()),
	}
	return jsettings.New(append(opts, extra...)...), nil
}

// diagnosticSink returns the sink newLoader would route diagnostics to,
// for callers that decorate it.
func diagnosticSink(c *cli.Context, cfg *config.Config) jsettings.Sink {
	if cfg.Report.Console {
		return jsettings.ConsoleSink{W: c.App.Writer}
	}
	return jsettings.LoggerSink{L: logger.Default()}
}
