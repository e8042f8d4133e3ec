package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"config.json", FormatJSON},
		{"dir/CONFIG.JSON", FormatJSON},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.toml", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := FormatFromPath("config.ini")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestFlattener_Flatten_JSON(t *testing.T) {
	data := []byte(`{
		"executableFilePath": "echo",
		"retries": 3,
		"ratio": 1.50,
		"enabled": true,
		"nothing": null,
		"server": {"host": "localhost", "ports": [80, 443]},
		"empty": {}
	}`)

	got, err := NewFlattener().Flatten(data, FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"executableFilePath": "echo",
		"retries":            "3",
		"ratio":              "1.50",
		"enabled":            "true",
		"nothing":            "",
		"server.host":        "localhost",
		"server.ports.1":     "80",
		"server.ports.2":     "443",
	}, got)
}

func TestFlattener_Flatten_YAML(t *testing.T) {
	data := []byte(`
executableFilePath: /usr/bin/env
args:
  - name: first
  - name: second
debug: false
`)

	got, err := NewFlattener().Flatten(data, FormatYAML)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"executableFilePath": "/usr/bin/env",
		"args.1.name":        "first",
		"args.2.name":        "second",
		"debug":              "false",
	}, got)
}

func TestFlattener_Flatten_TOML(t *testing.T) {
	data := []byte(`
executableFilePath = "echo"
timeout = 30

[env]
mode = "test"
`)

	got, err := NewFlattener().Flatten(data, FormatTOML)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"executableFilePath": "echo",
		"timeout":            "30",
		"env.mode":           "test",
	}, got)
}

func TestFlattener_Flatten_RootArray(t *testing.T) {
	got, err := NewFlattener().Flatten([]byte(`["a", {"b": "c"}]`), FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"1": "a", "2.b": "c"}, got)
}

func TestFlattener_Flatten_Empty(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			got, err := NewFlattener().Flatten([]byte(""), format)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestFlattener_Flatten_Errors(t *testing.T) {
	f := NewFlattener()

	_, err := f.Flatten([]byte(`"just a string"`), FormatJSON)
	assert.ErrorIs(t, err, domain.ErrInvalidDocument)

	_, err = f.Flatten([]byte(`{not json`), FormatJSON)
	assert.ErrorContains(t, err, "parse json")

	_, err = f.Flatten([]byte(`key: [unclosed`), FormatYAML)
	assert.ErrorContains(t, err, "parse yaml")

	_, err = f.Flatten([]byte(`key = `), FormatTOML)
	assert.ErrorContains(t, err, "parse toml")

	_, err = f.Flatten([]byte(`{}`), Format("xml"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestFlattener_Flatten_RejectsTrailingJSON(t *testing.T) {
	f := NewFlattener()

	tests := []struct {
		name  string
		input string
	}{
		{"second document", `{"executableFilePath":"echo"} {"executableFilePath":"rm"}`},
		{"garbage", `{"executableFilePath":"echo"} garbage`},
		{"closing bracket", `{"executableFilePath":"echo"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := f.Flatten([]byte(tt.input), FormatJSON)

			assert.Nil(t, props)
			assert.ErrorContains(t, err, "parse json: unexpected trailing data")
		})
	}

	props, err := f.Flatten([]byte("{\"executableFilePath\":\"echo\"}\n\n"), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"executableFilePath": "echo"}, props)
}

func TestFlattener_Flatten_DuplicateKey(t *testing.T) {
	f := NewFlattener()

	tests := []struct {
		format Format
		input  string
	}{
		{FormatJSON, `{"a.b": "x", "a": {"b": "y"}}`},
		{FormatYAML, "a.b: x\na:\n  b: y\n"},
		{FormatTOML, "\"a.b\" = \"x\"\n[a]\nb = \"y\"\n"},
		{FormatJSON, `{"list.1": "x", "list": ["y"]}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			// Map iteration order varies, so repeat to cover both orders.
			for range 20 {
				props, err := f.Flatten([]byte(tt.input), tt.format)

				assert.Nil(t, props)
				require.ErrorIs(t, err, domain.ErrInvalidDocument)
				assert.ErrorContains(t, err, "duplicate key")
			}
		})
	}
}

func TestFlattener_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "command.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"executableFilePath": "echo"}`), 0o600))

	got, err := NewFlattener().LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"executableFilePath": "echo"}, got)
}

func TestFlattener_LoadFile_Errors(t *testing.T) {
	dir := t.TempDir()
	f := NewFlattener()

	_, err := f.LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = f.LoadFile(filepath.Join(dir, "command.txt"))
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("- [x"), 0o600))
	_, err = f.LoadFile(bad)
	assert.ErrorContains(t, err, bad)
}
