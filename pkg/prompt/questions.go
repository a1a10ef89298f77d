// Package prompt collects the project choices interactively. The flow is a
// list of guarded questions run by the same pipeline as project creation.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/systemstart/kickstart/pkg/api"
	"github.com/systemstart/kickstart/pkg/pipeline"
	"github.com/systemstart/kickstart/pkg/templates"
)

// Answers accumulates the choices as questions are answered.
type Answers struct {
	api.Selection
}

// Environment is what validation needs to know about the machine.
type Environment struct {
	WorkDir string
	Exists  func(path string) bool
}

// OSEnvironment uses the real filesystem.
func OSEnvironment(workDir string) Environment {
	return Environment{WorkDir: workDir, Exists: pathExists}
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Questions returns the ordered question flow. Follow-up questions are
// guarded by Enabled predicates over the answers given so far.
func Questions(p Prompter, d api.Defaults, env Environment) []pipeline.Step[*Answers] {
	return []pipeline.Step[*Answers]{
		{
			Title: "project name",
			Action: func(ctx context.Context, a *Answers) error {
				name, err := p.Input(ctx, InputQuestion{
					Title:    "Project name:",
					Default:  a.ProjectName,
					Validate: ProjectNameValidator(env),
				})
				a.ProjectName = name
				return err
			},
		},
		{
			Title: "template",
			Action: func(ctx context.Context, a *Answers) error {
				def := a.Template
				if def == "" {
					def = d.Template
				}
				id, err := p.Select(ctx, SelectQuestion{
					Title:   "Please choose a project template to use",
					Options: templateOptions(),
					Default: def,
				})
				a.Template = id
				return err
			},
		},
		{
			Title:   "custom template path",
			Enabled: func(a *Answers) bool { return a.Template == api.TemplateCustom },
			Action: func(ctx context.Context, a *Answers) error {
				path, err := p.Input(ctx, InputQuestion{
					Title:    "Enter full path to custom template folder:",
					Default:  a.TemplatePath,
					Validate: TemplatePathValidator(env),
				})
				a.TemplatePath = filepath.Clean(path)
				return err
			},
		},
		{
			Title: "git",
			Action: func(ctx context.Context, a *Answers) error {
				ok, err := p.Confirm(ctx, ConfirmQuestion{
					Title:   "Initialize a git repository?",
					Default: a.InitGit || d.InitGit,
				})
				a.InitGit = ok
				return err
			},
		},
		{
			Title: "use package manager",
			Action: func(ctx context.Context, a *Answers) error {
				ok, err := p.Confirm(ctx, ConfirmQuestion{
					Title:   "Use a package manager?",
					Default: a.UsePackageManager || d.UsePackageManager,
				})
				a.UsePackageManager = ok
				if !ok {
					a.InstallDependencies = false
				}
				return err
			},
		},
		{
			Title:   "package manager",
			Enabled: func(a *Answers) bool { return a.UsePackageManager },
			Action: func(ctx context.Context, a *Answers) error {
				def := a.PackageManager
				if def == "" {
					def = d.PackageManager
				}
				pm, err := p.Select(ctx, SelectQuestion{
					Title:   "Please choose a package manager",
					Options: packageManagerOptions(),
					Default: def,
				})
				a.PackageManager = pm
				return err
			},
		},
		{
			Title:   "install",
			Enabled: func(a *Answers) bool { return a.UsePackageManager },
			Action: func(ctx context.Context, a *Answers) error {
				ok, err := p.Confirm(ctx, ConfirmQuestion{
					Title:   "Install dependencies?",
					Default: a.InstallDependencies || d.InstallDependencies,
				})
				a.InstallDependencies = ok
				return err
			},
		},
	}
}

// Ask runs the question flow. initial pre-fills answers, for example from
// command line flags. Any prompt failure, including the user aborting, is
// returned.
func Ask(ctx context.Context, p Prompter, d api.Defaults, env Environment, initial api.Selection) (api.Selection, error) {
	answers := &Answers{Selection: initial}

	_, err := pipeline.Run(ctx, Questions(p, d, env), answers)
	if err != nil {
		var stepErr *pipeline.StepError
		if errors.As(err, &stepErr) {
			return answers.Selection, fmt.Errorf("asking %s: %w", stepErr.Title, stepErr.Err)
		}
		return answers.Selection, err
	}

	if answers.PackageManager == "" {
		answers.PackageManager = d.PackageManager
	}
	return answers.Selection, nil
}

// ProjectNameValidator checks the name pattern and that no folder with the
// name exists in the working directory.
func ProjectNameValidator(env Environment) func(string) error {
	return func(name string) error {
		if err := api.ValidateProjectName(name); err != nil {
			return err
		}
		if env.Exists != nil && env.Exists(filepath.Join(env.WorkDir, name)) {
			return fmt.Errorf("%w: a project named %q already exists at this location", api.ErrTargetExists, name)
		}
		return nil
	}
}

// TemplatePathValidator checks that the custom template path exists.
func TemplatePathValidator(env Environment) func(string) error {
	return func(path string) error {
		if path == "" {
			return fmt.Errorf("template path is required")
		}
		if env.Exists == nil || !env.Exists(filepath.Clean(path)) {
			return fmt.Errorf("template path %q does not exist", path)
		}
		if env.WorkDir != "" && contains(path, env.WorkDir) {
			return fmt.Errorf("%w: the project would be created inside %q", api.ErrTargetInsideTemplate, path)
		}
		return nil
	}
}

// contains reports whether path is parent itself or lies below it.
func contains(parent, path string) bool {
	absParent, err := filepath.Abs(parent)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absParent, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func templateOptions() []Option {
	options := make([]Option, 0, len(templates.Catalog))
	for _, t := range templates.Catalog {
		options = append(options, Option{Label: t.Label, Value: t.ID})
	}
	return options
}

func packageManagerOptions() []Option {
	options := make([]Option, 0, len(api.PackageManagers))
	for _, pm := range api.PackageManagers {
		options = append(options, Option{Label: pm, Value: pm})
	}
	return options
}
