package steps

import (
	"context"
	"io/fs"
)

// fakeCollaborators records the calls made to each collaborator in order.
type fakeCollaborators struct {
	calls []string
	errs  map[string]error

	copiedData map[string]any
	gitDir     string
	manifest   [2]string
	install    [2]string
}

func (f *fakeCollaborators) record(name string) error {
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeCollaborators) Copy(_ context.Context, _ fs.FS, _ string, data map[string]any) error {
	f.copiedData = data
	return f.record("copy")
}

func (f *fakeCollaborators) Init(_ context.Context, dir string) error {
	f.gitDir = dir
	return f.record("git")
}

func (f *fakeCollaborators) SetName(targetDir, name string) error {
	f.manifest = [2]string{targetDir, name}
	return f.record("manifest")
}

func (f *fakeCollaborators) Install(_ context.Context, dir, preferred string) error {
	f.install = [2]string{dir, preferred}
	return f.record("install")
}

func (f *fakeCollaborators) collaborators() Collaborators {
	return Collaborators{Copier: f, Git: f, Manifest: f, Installer: f}
}
