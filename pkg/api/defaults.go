package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadDefaults reads a defaults file over the built-in defaults. The format
// is chosen by extension: .yaml/.yml, .toml or .json. Keys missing from the
// file keep their built-in value.
func LoadDefaults(filename string) (Defaults, error) {
	d := DefaultDefaults()

	data, err := os.ReadFile(filename)
	if err != nil {
		return d, fmt.Errorf("reading defaults file: %w", err)
	}

	if err := decodeDefaults(filename, data, &d); err != nil {
		return d, fmt.Errorf("parsing defaults file: %w", err)
	}

	if err := d.Validate(); err != nil {
		return d, fmt.Errorf("validating defaults file: %w", err)
	}

	return d, nil
}

func decodeDefaults(filename string, data []byte, d *Defaults) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(d); err != nil && err != io.EOF {
			return err
		}
		return nil
	case ".toml":
		md, err := toml.Decode(string(data), d)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return fmt.Errorf("unknown fields: %s", strings.Join(keys, ", "))
		}
		return nil
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(d); err != nil {
			return err
		}
		if err := dec.Decode(&struct{}{}); err != io.EOF {
			if err == nil {
				return fmt.Errorf("unexpected extra content after JSON document")
			}
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported defaults file type %q (supported: .yaml, .yml, .toml, .json)", ext)
	}
}
