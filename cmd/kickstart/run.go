package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/systemstart/kickstart/pkg/api"
	"github.com/systemstart/kickstart/pkg/prompt"
	"github.com/systemstart/kickstart/pkg/report"
	"github.com/systemstart/kickstart/pkg/scaffold"
	"github.com/systemstart/kickstart/pkg/steps"
)

const navigationHint = "Use the up and down arrow keys to navigate multi-choice questions"

// flagSource is the part of *cli.Command the option handling reads.
type flagSource interface {
	IsSet(name string) bool
	String(name string) string
	Bool(name string) bool
	Duration(name string) time.Duration
}

func run(ctx context.Context, cmd flagSource, display *report.Display) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	defaults, err := loadDefaults(cmd)
	if err != nil {
		return err
	}

	var sel api.Selection
	if cmd.Bool("yes") {
		sel = selectionFromDefaults(cmd, defaults)
	} else {
		display.Hint(navigationHint)
		sel, err = prompt.Ask(ctx, prompt.NewTerminal(cmd.Bool("accessible")), defaults,
			prompt.OSEnvironment(workDir), initialSelection(cmd))
		if err != nil {
			return err
		}
	}
	slog.Debug("selection", "selection", sel)

	cfg, err := scaffold.NewConfiguration(sel, workDir, cmd.String("templates-dir"))
	if err != nil {
		return err
	}

	collaborators, err := steps.NewCollaborators(defaults.GitStrategy)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	if _, err := scaffold.Create(ctx, cfg, collaborators, display); err != nil {
		return err
	}

	display.Done()
	return nil
}

// loadDefaults reads the defaults file when one is given and applies the
// flags that were set explicitly on top.
func loadDefaults(cmd flagSource) (api.Defaults, error) {
	defaults := api.DefaultDefaults()
	if filename := cmd.String("defaults"); filename != "" {
		var err error
		defaults, err = api.LoadDefaults(filename)
		if err != nil {
			return api.Defaults{}, err
		}
		slog.Info("loaded defaults", "filename", filename)
	}

	if cmd.IsSet("template") {
		defaults.Template = cmd.String("template")
	}
	if cmd.IsSet("package-manager") {
		defaults.PackageManager = cmd.String("package-manager")
	}
	if cmd.IsSet("git") {
		defaults.InitGit = cmd.Bool("git")
	}
	if cmd.IsSet("use-package-manager") {
		defaults.UsePackageManager = cmd.Bool("use-package-manager")
	}
	if cmd.IsSet("install") {
		defaults.InstallDependencies = cmd.Bool("install")
	}
	if cmd.IsSet("git-strategy") {
		defaults.GitStrategy = cmd.String("git-strategy")
	}

	if err := defaults.Validate(); err != nil {
		return api.Defaults{}, fmt.Errorf("validating defaults: %w", err)
	}
	return defaults, nil
}

func selectionFromDefaults(cmd flagSource, d api.Defaults) api.Selection {
	return api.Selection{
		ProjectName:         cmd.String("name"),
		Template:            d.Template,
		TemplatePath:        cmd.String("template-path"),
		InitGit:             d.InitGit,
		UsePackageManager:   d.UsePackageManager,
		PackageManager:      d.PackageManager,
		InstallDependencies: d.UsePackageManager && d.InstallDependencies,
	}
}

func initialSelection(cmd flagSource) api.Selection {
	sel := api.Selection{
		ProjectName:  cmd.String("name"),
		TemplatePath: cmd.String("template-path"),
	}
	if cmd.IsSet("template") {
		sel.Template = cmd.String("template")
	}
	return sel
}
