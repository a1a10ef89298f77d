package steps

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/systemstart/kickstart/pkg/api"
)

// lockfiles maps lockfile names to the package manager that owns them, in
// detection order.
var lockfiles = []struct {
	name    string
	manager string
}{
	{"yarn.lock", api.PackageManagerYarn},
	{"pnpm-lock.yaml", api.PackageManagerPNPM},
	{"package-lock.json", api.PackageManagerNPM},
}

// Installer runs "<manager> install".
type Installer struct {
	run CommandRunner
}

// NewInstaller creates an installer that runs package managers from PATH.
func NewInstaller() *Installer {
	return &Installer{run: ExecCommand}
}

// Install installs the dependencies in dir. A lockfile in dir decides the
// package manager; preferredManager is used when there is none.
func (i *Installer) Install(ctx context.Context, dir, preferredManager string) error {
	manager := DetectPackageManager(dir, preferredManager)
	slog.Info("installing dependencies", "dir", dir, "manager", manager, "preferred", preferredManager)
	return i.run(ctx, dir, manager, "install")
}

// DetectPackageManager returns the manager owning a lockfile in dir, or preferred.
func DetectPackageManager(dir, preferred string) string {
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.name)); err == nil {
			return lf.manager
		}
	}
	if preferred == "" {
		return api.PackageManagerNPM
	}
	return preferred
}
