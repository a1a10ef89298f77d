package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const packageJSONFilename = "package.json"

// PackageJSONEditor edits the package.json at the root of a project.
type PackageJSONEditor struct {
	filename string
}

// NewPackageJSONEditor creates an editor for package.json.
func NewPackageJSONEditor() *PackageJSONEditor {
	return &PackageJSONEditor{filename: packageJSONFilename}
}

// SetName sets the top-level "name" field. Other fields keep their values
// and order. The file is rewritten tab-indented. A missing file is left
// missing.
func (e *PackageJSONEditor) SetName(targetDir, name string) error {
	path := filepath.Join(targetDir, e.filename)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("no manifest to update", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated, err := setJSONField(data, "name", name)
	if err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}

	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	slog.Info("updated manifest", "path", path, "name", name)
	return nil
}

type jsonField struct {
	key   string
	value json.RawMessage
}

// setJSONField replaces or appends a string field of a top-level JSON object.
func setJSONField(data []byte, key, value string) ([]byte, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range fields {
		if fields[i].key == key {
			fields[i].value = encoded
			replaced = true
		}
	}
	if !replaced {
		fields = append(fields, jsonField{key: key, value: encoded})
	}

	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			compact.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		compact.Write(k)
		compact.WriteByte(':')
		compact.Write(f.value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "\t"); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func decodeObject(data []byte) ([]jsonField, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("manifest is not a JSON object")
	}

	var fields []jsonField
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing JSON: unexpected token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("parsing JSON value of %q: %w", key, err)
		}
		fields = append(fields, jsonField{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("parsing JSON: unexpected content after object")
	}
	return fields, nil
}
