package steps

import (
	"context"

	"github.com/systemstart/kickstart/pkg/api"
	"github.com/systemstart/kickstart/pkg/pipeline"
)

const (
	TitleCopyTemplate   = "Copy template"
	TitleInitGit        = "Initialize git"
	TitleUpdateManifest = "Update manifest"
	TitleInstall        = "Install dependencies"

	ReasonNoInstall = "No dependencies will be installed"
)

// ProjectSteps builds the ordered project creation steps on top of c.
func ProjectSteps(c Collaborators) []pipeline.Step[*api.Configuration] {
	return []pipeline.Step[*api.Configuration]{
		{
			Title: TitleCopyTemplate,
			Action: func(ctx context.Context, cfg *api.Configuration) error {
				data := TemplateData(cfg.ProjectName, cfg.Template, cfg.PackageManager)
				return c.Copier.Copy(ctx, cfg.TemplateFS, cfg.TargetDirectory, data)
			},
		},
		{
			Title:   TitleInitGit,
			Enabled: func(cfg *api.Configuration) bool { return cfg.InitGit },
			Action: func(ctx context.Context, cfg *api.Configuration) error {
				return c.Git.Init(ctx, cfg.TargetDirectory)
			},
		},
		{
			Title:   TitleUpdateManifest,
			Enabled: func(cfg *api.Configuration) bool { return cfg.Template != api.TemplateBasic },
			Action: func(_ context.Context, cfg *api.Configuration) error {
				return c.Manifest.SetName(cfg.TargetDirectory, cfg.ProjectName)
			},
		},
		{
			Title: TitleInstall,
			Skip: func(cfg *api.Configuration) pipeline.Decision {
				if !cfg.InstallDependencies {
					return pipeline.Skip(ReasonNoInstall)
				}
				return pipeline.Proceed()
			},
			Action: func(ctx context.Context, cfg *api.Configuration) error {
				return c.Installer.Install(ctx, cfg.TargetDirectory, cfg.PackageManager)
			},
		},
	}
}
