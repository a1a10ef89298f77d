package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/systemstart/kickstart/pkg/api"
	"github.com/systemstart/kickstart/pkg/logging"
	"github.com/systemstart/kickstart/pkg/report"
	"github.com/systemstart/kickstart/pkg/templates"
	"github.com/urfave/cli/v3"
)

var version = "dev"

const (
	_ = iota
	exitFailure
)

const envPrefix = "KICKSTART_"

func main() {
	envErr := godotenv.Load()

	display := report.NewDisplay(os.Stdout).ErrorsTo(os.Stderr)
	app := newApp(display)
	app.Before = func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if err := logging.Initialize(cmd.String("logging-type"), cmd.String("log-level")); err != nil {
			return ctx, err
		}
		includeEnv(envErr)
		return ctx, nil
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		slog.Debug("kickstart failed", "error", err)
		display.Error(errorMessage(err))
		os.Exit(exitFailure)
	}
}

func newApp(display *report.Display) *cli.Command {
	return &cli.Command{
		Name:    "kickstart",
		Usage:   "Create a new project from a template",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "project name, also the name of the created folder", Sources: envVars("NAME")},
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "template id: jemn, basic or custom", Sources: envVars("TEMPLATE")},
			&cli.StringFlag{Name: "template-path", Usage: "folder of the custom template", Sources: envVars("TEMPLATE_PATH")},
			&cli.BoolFlag{Name: "git", Usage: "initialize a git repository", Sources: envVars("GIT")},
			&cli.BoolFlag{Name: "use-package-manager", Usage: "set up the project with a package manager", Sources: envVars("USE_PACKAGE_MANAGER")},
			&cli.StringFlag{Name: "package-manager", Aliases: []string{"p"}, Usage: "package manager: npm, yarn or pnpm", Sources: envVars("PACKAGE_MANAGER")},
			&cli.BoolFlag{Name: "install", Usage: "install dependencies after creating the project", Sources: envVars("INSTALL")},
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "do not ask, use flags and defaults", Sources: envVars("YES")},
			&cli.StringFlag{Name: "defaults", Usage: "defaults file (.yaml, .toml or .json)", Sources: envVars("DEFAULTS")},
			&cli.StringFlag{Name: "templates-dir", Usage: "folder holding one folder per template id, replaces the bundled templates", Sources: envVars("TEMPLATES_DIR")},
			&cli.StringFlag{Name: "git-strategy", Usage: "git implementation: cli or embedded", Sources: envVars("GIT_STRATEGY")},
			&cli.DurationFlag{Name: "timeout", Usage: "abort the project steps after this duration (0 = no limit)", Sources: envVars("TIMEOUT")},
			&cli.BoolFlag{Name: "accessible", Usage: "use plain prompts suited for screen readers", Sources: envVars("ACCESSIBLE")},
			&cli.BoolFlag{Name: "list-templates", Usage: "list available templates and exit"},
			&cli.StringFlag{Name: "logging-type", Value: logging.Tint, Usage: "logging type: json, text, tint or charm", Sources: envVars("LOGGING_TYPE")},
			&cli.StringFlag{Name: "log-level", Value: "warn", Usage: "logging level: debug, info, warn, error", Sources: envVars("LOG_LEVEL")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("list-templates") {
				listTemplates(cmd.Root().Writer)
				return nil
			}
			return run(ctx, cmd, display)
		},
	}
}

func envVars(name string) cli.ValueSourceChain {
	return cli.EnvVars(envPrefix + name)
}

func includeEnv(err error) {
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to load .env", "error", err)
			return
		}
		slog.Info("no .env file found")
	} else {
		slog.Info("using .env file")
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrUnknownTemplate), errors.Is(err, api.ErrTemplateUnreadable):
		return "Invalid template name"
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("timed out: %v", err)
	default:
		return err.Error()
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func listTemplates(w io.Writer) {
	fmt.Fprintln(w, "Available templates:")
	fmt.Fprintln(w)
	for _, t := range templates.Catalog {
		fmt.Fprintf(w, "  %-8s  %-22s  %s\n", t.ID, t.Label, t.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use: kickstart --template <id>")
}
