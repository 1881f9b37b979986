package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/jsettings-go/internal/cli/output"
	"github.com/yndnr/jsettings-go/internal/telemetry/logger"
	"github.com/yndnr/jsettings-go/pkg/jsettings"
)

// ValidateCommand returns the validate command.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:   "validate",
		Usage:  "Validate the settings document against the schema",
		Action: validateAction,
	}
}

// ShowCommand returns the show command.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the validated settings",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reveal",
				Usage: "Print sensitive values instead of redacting them",
			},
		},
		Action: showAction,
	}
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print one setting as JSON",
		ArgsUsage: "PATH",
		Action:    getAction,
	}
}

func validateAction(c *cli.Context) error {
	cfg := GetConfig(c)
	l, err := newLoader(c, cfg)
	if err != nil {
		return err
	}

	if err := l.LoadSettings(); err != nil {
		return err
	}

	if l.Policy() == jsettings.PolicyLenient && l.Document() == nil {
		fmt.Fprintf(c.App.Writer, "- %s was not validated: empty document\n", l.SettingsFile())
		return nil
	}
	fmt.Fprintf(c.App.Writer, "✓ %s is valid against %s\n", l.SettingsFile(), l.SchemaFile())
	return nil
}

func showAction(c *cli.Context) error {
	cfg := GetConfig(c)
	l, err := newLoader(c, cfg)
	if err != nil {
		return err
	}

	if err := l.LoadSettings(); err != nil {
		return err
	}

	var data any = l.Settings()
	if doc := l.Document(); doc != nil {
		if _, ok := doc.(map[string]any); !ok {
			data = doc
		}
	}
	if m, ok := data.(map[string]any); ok && !c.Bool("reveal") {
		data = logger.RedactMap(m)
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(c.App.Writer, data)
}

func getAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("setting path required")
	}

	cfg := GetConfig(c)
	l, err := newLoader(c, cfg)
	if err != nil {
		return err
	}

	if err := l.LoadSettings(); err != nil {
		return err
	}

	value, ok := l.Lookup(path)
	if !ok {
		return fmt.Errorf("no setting at %s", path)
	}
	return (&output.JSONFormatter{}).Format(c.App.Writer, value)
}
