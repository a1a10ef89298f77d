package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/systemstart/kickstart/pkg/api"
	"github.com/systemstart/kickstart/pkg/templates"
)

// NewConfiguration builds the configuration for sel. The target directory
// is workDir joined with the project name. templatesRoot overrides the
// bundled templates when set.
func NewConfiguration(sel api.Selection, workDir, templatesRoot string) (*api.Configuration, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	fsys, where, err := templates.Open(sel.Template, sel.TemplatePath, templatesRoot)
	if err != nil {
		return nil, err
	}

	pm := sel.PackageManager
	if pm == "" {
		pm = api.PackageManagerNPM
	}

	return &api.Configuration{
		ProjectName:         sel.ProjectName,
		Template:            sel.Template,
		TemplateDirectory:   where,
		TemplateFS:          fsys,
		TemplateSourceDir:   templates.SourceDir(sel.Template, sel.TemplatePath, templatesRoot),
		TargetDirectory:     filepath.Join(workDir, sel.ProjectName),
		PackageManager:      pm,
		InitGit:             sel.InitGit,
		UsePackageManager:   sel.UsePackageManager,
		InstallDependencies: sel.UsePackageManager && sel.InstallDependencies,
	}, nil
}

// Preflight checks what must hold before any step runs: a valid
// configuration, a readable template, a target outside the template tree and
// a free target directory.
func Preflight(cfg *api.Configuration) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := templates.CheckReadable(cfg.TemplateFS); err != nil {
		return fmt.Errorf("template %s: %w", cfg.TemplateDirectory, err)
	}

	if err := checkOutsideTemplate(cfg.TemplateSourceDir, cfg.TargetDirectory); err != nil {
		return err
	}

	_, err := os.Stat(cfg.TargetDirectory)
	if err == nil {
		return fmt.Errorf("%w: %s", api.ErrTargetExists, cfg.TargetDirectory)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking target directory %s: %w", cfg.TargetDirectory, err)
	}
	return nil
}

// checkOutsideTemplate fails when target is templateDir or lies below it;
// the copy would otherwise walk into its own output.
func checkOutsideTemplate(templateDir, target string) error {
	if templateDir == "" {
		return nil
	}

	absTemplate, err := filepath.Abs(templateDir)
	if err != nil {
		return fmt.Errorf("resolving template directory %s: %w", templateDir, err)
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolving target directory %s: %w", target, err)
	}

	rel, err := filepath.Rel(absTemplate, absTarget)
	if err != nil {
		return nil
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil
	}
	return fmt.Errorf("%w: %s is inside %s", api.ErrTargetInsideTemplate, absTarget, absTemplate)
}
