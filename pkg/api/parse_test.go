package api

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadTemplateManifest_Valid(t *testing.T) {
	fsys := fstest.MapFS{
		ManifestFilename: &fstest.MapFile{Data: []byte(`
name: Express API
description: Node starter
exclude: ["node_modules/**", "**/.DS_Store"]
render:
  include: ["README.md"]
`)},
	}

	m, err := LoadTemplateManifest(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Name != "Express API" {
		t.Errorf("expected name 'Express API', got %q", m.Name)
	}
	if len(m.Exclude) != 2 {
		t.Errorf("expected 2 exclude patterns, got %d", len(m.Exclude))
	}
	if len(m.Render.Include) != 1 || m.Render.Include[0] != "README.md" {
		t.Errorf("unexpected render include: %v", m.Render.Include)
	}
}

func TestLoadTemplateManifest_Missing(t *testing.T) {
	m, err := LoadTemplateManifest(fstest.MapFS{"index.html": &fstest.MapFile{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected empty manifest")
	}
	if len(m.Exclude) != 0 || len(m.Render.Include) != 0 {
		t.Errorf("expected empty manifest, got %+v", m)
	}
}

func TestLoadTemplateManifest_InvalidYAML(t *testing.T) {
	fsys := fstest.MapFS{ManifestFilename: &fstest.MapFile{Data: []byte("{{invalid")}}

	_, err := LoadTemplateManifest(fsys)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "parsing template manifest") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadTemplateManifest_ValidationFails(t *testing.T) {
	fsys := fstest.MapFS{ManifestFilename: &fstest.MapFile{Data: []byte("exclude: [\"[\"]\n")}}

	_, err := LoadTemplateManifest(fsys)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "validating template manifest") {
		t.Fatalf("unexpected error: %v", err)
	}
}
