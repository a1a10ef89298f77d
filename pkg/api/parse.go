package api

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LoadTemplateManifest reads .kickstart.yaml from the root of fsys and validates it.
// A template without the file gets an empty manifest.
func LoadTemplateManifest(fsys fs.FS) (*TemplateManifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFilename)
	if errors.Is(err, fs.ErrNotExist) {
		return &TemplateManifest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading template manifest: %w", err)
	}

	var m TemplateManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing template manifest: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validating template manifest: %w", err)
	}

	return &m, nil
}
