package steps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/systemstart/kickstart/pkg/api"
)

// Copier copies template trees from any fs.FS.
type Copier struct{}

// NewCopier creates a Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// Copy copies src into targetDir. Existing files are kept untouched. The
// template manifest, if present, is not copied; its exclude globs drop
// entries and files matched by its render filter are executed as templates
// with data while they are written.
func (c *Copier) Copy(ctx context.Context, src fs.FS, targetDir string, data map[string]any) error {
	manifest, err := api.LoadTemplateManifest(src)
	if err != nil {
		return err
	}

	tc := &treeCopy{
		src:     src,
		dst:     targetDir,
		exclude: manifest.Exclude,
		render:  newRenderFilter(manifest.Render),
		data:    data,
	}
	if err := tc.run(ctx); err != nil {
		return fmt.Errorf("copying tree: %w", err)
	}

	slog.Info("copied template files", "target", targetDir,
		"created", tc.created, "rendered", tc.rendered, "kept", tc.kept)
	return nil
}

// treeCopy holds the state of one Copy call.
type treeCopy struct {
	src     fs.FS
	dst     string
	exclude []string
	render  renderFilter
	data    map[string]any

	created  int
	rendered int
	kept     int
}

func (tc *treeCopy) run(ctx context.Context) error {
	return fs.WalkDir(tc.src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk error at %s: %w", path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if path == api.ManifestFilename {
			return nil
		}
		if path != "." && matchesAny(tc.exclude, path) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		target := filepath.Join(tc.dst, filepath.FromSlash(path))
		switch {
		case d.IsDir():
			if err := os.MkdirAll(target, 0o750); err != nil {
				return fmt.Errorf("creating directory %s: %w", target, err)
			}
			return nil
		case !d.Type().IsRegular():
			slog.Warn("skipping non-regular template entry", "path", path, "type", d.Type().String())
			return nil
		}
		return tc.file(path, target, d)
	})
}

// file creates target from the template file at path. The target is opened
// with O_EXCL, so an existing file is never read, rendered or replaced.
func (tc *treeCopy) file(path, target string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm()|0o600)
	if errors.Is(err, fs.ErrExist) {
		slog.Debug("keeping existing file", "path", target)
		tc.kept++
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}

	renders := tc.render.selects(path)
	writeErr := tc.write(out, path, renders)
	if closeErr := out.Close(); closeErr != nil && writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		// a half written file would be kept by the next run
		_ = os.Remove(target)
		return fmt.Errorf("writing %s: %w", target, writeErr)
	}

	tc.created++
	if renders {
		tc.rendered++
		slog.Debug("template rendered", "file", path)
	}
	return nil
}

func (tc *treeCopy) write(w io.Writer, path string, renders bool) error {
	in, err := tc.src.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	if !renders {
		_, err = io.Copy(w, in)
		return err
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	return render(w, path, content, tc.data)
}

func matchesAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}
