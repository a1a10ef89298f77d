package steps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPackageJSONEditor_SetName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "replace name",
			input: `{"name":"old"}`,
			want:  "{\n\t\"name\": \"new\"\n}\n",
		},
		{
			name:  "keep other fields and order",
			input: `{"version": "1.0.0", "name": "old", "scripts": {"start": "node index.js"}, "private": true}`,
			want:  "{\n\t\"version\": \"1.0.0\",\n\t\"name\": \"new\",\n\t\"scripts\": {\n\t\t\"start\": \"node index.js\"\n\t},\n\t\"private\": true\n}\n",
		},
		{
			name:  "add missing name",
			input: `{"version": "1.0.0"}`,
			want:  "{\n\t\"version\": \"1.0.0\",\n\t\"name\": \"new\"\n}\n",
		},
		{
			name:  "empty object",
			input: `{}`,
			want:  "{\n\t\"name\": \"new\"\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTestFile(t, dir, "package.json", tt.input)

			if err := NewPackageJSONEditor().SetName(dir, "new"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			content, err := os.ReadFile(filepath.Join(dir, "package.json"))
			if err != nil {
				t.Fatal(err)
			}
			if string(content) != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", content, tt.want)
			}
		})
	}
}

func TestPackageJSONEditor_MissingFile(t *testing.T) {
	dir := t.TempDir()

	if err := NewPackageJSONEditor().SetName(dir, "new"); err != nil {
		t.Fatalf("missing manifest should be a no-op, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory should be unmodified, found %d entries", len(entries))
	}
}

func TestPackageJSONEditor_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{"malformed", `{"name": `, "parsing JSON"},
		{"array", `["name"]`, "not a JSON object"},
		{"trailing content", `{"name": "old"} {}`, "unexpected content after object"},
		{"empty file", ``, "parsing JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTestFile(t, dir, "package.json", tt.input)

			err := NewPackageJSONEditor().SetName(dir, "new")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %v", tt.errMsg, err)
			}

			content, _ := os.ReadFile(filepath.Join(dir, "package.json"))
			if string(content) != tt.input {
				t.Errorf("file must be left as is on error, got %q", string(content))
			}
		})
	}
}

func TestPackageJSONEditor_KeepsMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(`{"name":"old"}`), 0o640); err != nil {
		t.Fatal(err)
	}

	if err := NewPackageJSONEditor().SetName(dir, "new"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("expected mode 0640, got %v", info.Mode().Perm())
	}
}
