// Package scaffold turns a selection into a new project directory.
package scaffold

import (
	"context"
	"log/slog"

	"github.com/systemstart/kickstart/pkg/api"
	"github.com/systemstart/kickstart/pkg/pipeline"
	"github.com/systemstart/kickstart/pkg/steps"
)

// Create runs the preflight checks and then the project steps. A preflight
// failure returns a nil result and nothing is touched on disk.
func Create(ctx context.Context, cfg *api.Configuration, c steps.Collaborators, observers ...pipeline.Observer) (*pipeline.Result, error) {
	if err := Preflight(cfg); err != nil {
		return nil, err
	}

	slog.Info("creating project",
		"name", cfg.ProjectName,
		"template", cfg.Template,
		"source", cfg.TemplateDirectory,
		"target", cfg.TargetDirectory)

	result, err := pipeline.Run(ctx, steps.ProjectSteps(c), cfg, observers...)
	if err != nil {
		slog.Error("project creation failed", "target", cfg.TargetDirectory, "error", err)
		return result, err
	}

	slog.Info("project created", "target", cfg.TargetDirectory,
		"completed", len(result.Titles(pipeline.StateCompleted)),
		"skipped", len(result.Titles(pipeline.StateSkipped)))
	return result, nil
}
