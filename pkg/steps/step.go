package steps

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/systemstart/kickstart/pkg/api"
)

// TemplateCopier copies a template tree into targetDir without overwriting
// files that already exist there. data is passed to rendered files.
type TemplateCopier interface {
	Copy(ctx context.Context, src fs.FS, targetDir string, data map[string]any) error
}

// GitClient initialises a repository in dir.
type GitClient interface {
	Init(ctx context.Context, dir string) error
}

// ManifestEditor sets the project name in the manifest under targetDir.
// A missing manifest is not an error.
type ManifestEditor interface {
	SetName(targetDir, name string) error
}

// DependencyInstaller installs the dependencies of the project in dir.
type DependencyInstaller interface {
	Install(ctx context.Context, dir, preferredManager string) error
}

// Collaborators bundles the services the project steps delegate to.
type Collaborators struct {
	Copier    TemplateCopier
	Git       GitClient
	Manifest  ManifestEditor
	Installer DependencyInstaller
}

// NewCollaborators returns the real implementations. gitStrategy selects
// between the git binary and the embedded implementation.
func NewCollaborators(gitStrategy string) (Collaborators, error) {
	var git GitClient
	switch gitStrategy {
	case "", api.GitStrategyCLI:
		git = NewCLIGit()
	case api.GitStrategyEmbedded:
		git = NewEmbeddedGit()
	default:
		return Collaborators{}, fmt.Errorf("%w %q", api.ErrUnknownGitStrategy, gitStrategy)
	}

	return Collaborators{
		Copier:    NewCopier(),
		Git:       git,
		Manifest:  NewPackageJSONEditor(),
		Installer: NewInstaller(),
	}, nil
}
