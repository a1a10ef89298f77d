// Package templates holds the bundled project templates and resolves the
// file tree for a template choice.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/systemstart/kickstart/pkg/api"
)

//go:embed all:bundled
var bundled embed.FS

// Template is a catalog entry.
type Template struct {
	ID          string
	Label       string
	Description string
}

// Catalog lists the templates in prompt order.
var Catalog = []Template{
	{ID: api.TemplateJEMN, Label: "Node-Express-Mongo-JS", Description: "Express API backed by MongoDB"},
	{ID: api.TemplateBasic, Label: "HTML,CSS,JS", Description: "Static page with a stylesheet and a script"},
	{ID: api.TemplateCustom, Label: "Custom", Description: "Template folder on disk"},
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Template, bool) {
	for _, t := range Catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Open resolves the file tree for a template. Bundled templates come from
// the embedded tree unless root names a directory holding one folder per
// template id. The custom template is read from customPath. The returned
// string describes the location for messages.
func Open(id, customPath, root string) (fs.FS, string, error) {
	if _, ok := Lookup(id); !ok {
		return nil, "", fmt.Errorf("%w %q", api.ErrUnknownTemplate, id)
	}
	if id == api.TemplateCustom && customPath == "" {
		return nil, "", fmt.Errorf("%w: no path given for custom template", api.ErrTemplateUnreadable)
	}

	if dir := SourceDir(id, customPath, root); dir != "" {
		return os.DirFS(dir), dir, nil
	}

	sub, err := fs.Sub(bundled, "bundled/"+id)
	if err != nil {
		return nil, "", fmt.Errorf("opening bundled template %q: %w", id, err)
	}
	return sub, "bundled:" + id, nil
}

// SourceDir returns the directory on disk Open reads the template from, or
// "" when the embedded tree is used.
func SourceDir(id, customPath, root string) string {
	switch {
	case id == api.TemplateCustom:
		if customPath == "" {
			return ""
		}
		return filepath.Clean(customPath)
	case root != "":
		return filepath.Join(root, id)
	default:
		return ""
	}
}

// CheckReadable verifies that the root of fsys is a readable directory.
func CheckReadable(fsys fs.FS) error {
	if fsys == nil {
		return api.ErrTemplateUnreadable
	}
	if _, err := fs.ReadDir(fsys, "."); err != nil {
		return fmt.Errorf("%w: %w", api.ErrTemplateUnreadable, err)
	}
	return nil
}
