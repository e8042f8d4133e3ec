// Package document flattens structured configuration documents into the
// string map consumed by commands.
//
// Nested objects become dotted keys ("server.port") and array elements use
// 1-based indexes ("hosts.1", "hosts.2"). Scalars are rendered as text and
// null becomes the empty string. A document in which two paths flatten to the
// same key, such as {"a.b": 1, "a": {"b": 2}}, is rejected.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a supported document syntax.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath detects the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Flattener implements domain.DocumentLoader.
type Flattener struct{}

// NewFlattener creates a new Flattener.
func NewFlattener() *Flattener {
	return &Flattener{}
}

// Ensure Flattener implements domain.DocumentLoader.
var _ domain.DocumentLoader = (*Flattener)(nil)

// LoadFile reads the document at path and flattens it.
func (f *Flattener) LoadFile(path string) (map[string]string, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user on purpose
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	props, err := f.Flatten(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

// Flatten decodes data in the given format and flattens it.
func (f *Flattener) Flatten(data []byte, format Format) (map[string]string, error) {
	root, err := decode(data, format)
	if err != nil {
		return nil, err
	}

	props := make(map[string]string)
	switch root.(type) {
	case nil:
		// Empty document.
	case map[string]any, map[any]any, []any:
		if err := flatten(props, "", root); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidDocument
	}
	return props, nil
}

func decode(data []byte, format Format) (any, error) {
	var root any
	switch format {
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&root); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, errors.New("parse json: unexpected trailing data")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		root = table
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, string(format))
	}
	return root, nil
}
