package api

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	ErrInvalidProjectName    = errors.New("invalid project name")
	ErrTargetExists          = errors.New("target directory already exists")
	ErrTemplateUnreadable    = errors.New("template directory is not readable")
	ErrTargetInsideTemplate  = errors.New("target directory is inside the template directory")
	ErrUnknownTemplate       = errors.New("unknown template")
	ErrUnknownPackageManager = errors.New("unknown package manager")
	ErrUnknownGitStrategy    = errors.New("unknown git strategy")
)

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

var validTemplates = map[string]bool{
	TemplateJEMN:   true,
	TemplateBasic:  true,
	TemplateCustom: true,
}

// ValidateProjectName checks that name starts with a letter and only
// contains letters, digits, underscores and hyphens.
func ValidateProjectName(name string) error {
	if !projectNamePattern.MatchString(name) {
		return fmt.Errorf("%w %q: must start with a letter and may only include letters, numbers, underscores and hyphens",
			ErrInvalidProjectName, name)
	}
	return nil
}

// ValidatePackageManager checks pm against the allowed set.
func ValidatePackageManager(pm string) error {
	if !slices.Contains(PackageManagers, pm) {
		return fmt.Errorf("%w %q (valid: %s)", ErrUnknownPackageManager, pm, strings.Join(PackageManagers, ", "))
	}
	return nil
}

// Validate checks the selection for errors that do not need the filesystem.
func (s *Selection) Validate() error {
	if err := ValidateProjectName(s.ProjectName); err != nil {
		return err
	}
	if !validTemplates[s.Template] {
		return fmt.Errorf("%w %q", ErrUnknownTemplate, s.Template)
	}
	if s.Template == TemplateCustom && s.TemplatePath == "" {
		return fmt.Errorf("template path is required for the %q template", TemplateCustom)
	}
	if s.UsePackageManager {
		if err := ValidatePackageManager(s.PackageManager); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the configuration invariants that do not need the filesystem.
func (c *Configuration) Validate() error {
	if err := ValidateProjectName(c.ProjectName); err != nil {
		return err
	}
	if c.TemplateFS == nil {
		return fmt.Errorf("%w: no template tree resolved for %q", ErrTemplateUnreadable, c.Template)
	}
	if c.TargetDirectory == "" {
		return fmt.Errorf("target directory is required")
	}
	if err := ValidatePackageManager(c.PackageManager); err != nil {
		return err
	}
	return nil
}

// Validate checks the defaults for errors.
func (d *Defaults) Validate() error {
	if d.Template != "" && !validTemplates[d.Template] {
		return fmt.Errorf("%w %q", ErrUnknownTemplate, d.Template)
	}
	if d.PackageManager != "" {
		if err := ValidatePackageManager(d.PackageManager); err != nil {
			return err
		}
	}
	switch d.GitStrategy {
	case "", GitStrategyCLI, GitStrategyEmbedded:
	default:
		return fmt.Errorf("%w %q (valid: %s, %s)", ErrUnknownGitStrategy, d.GitStrategy, GitStrategyCLI, GitStrategyEmbedded)
	}
	return nil
}

// Validate checks that every glob in the manifest is well formed.
func (m *TemplateManifest) Validate() error {
	for _, group := range []struct {
		field    string
		patterns []string
	}{
		{"exclude", m.Exclude},
		{"render.include", m.Render.Include},
		{"render.exclude", m.Render.Exclude},
	} {
		for _, p := range group.patterns {
			if !doublestar.ValidatePattern(p) {
				return fmt.Errorf("%s: invalid glob %q", group.field, p)
			}
		}
	}
	return nil
}
