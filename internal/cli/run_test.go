package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/JesseSandvik/Khepri-Black/internal/app"
	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/JesseSandvik/Khepri-Black/internal/infra/document"
	"github.com/JesseSandvik/Khepri-Black/internal/infra/launcher"
	"github.com/JesseSandvik/Khepri-Black/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRunTestContainer creates a container whose children write to stdout.
func newRunTestContainer(l domain.ProcessLauncher) *app.Container {
	return app.NewWithDeps(
		app.Config{},
		l,
		document.NewFlattener(),
		testutil.NewMockConfigLoader(),
		testutil.DiscardLogger(),
	)
}

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// =============================================================================
// Flag Parsing Tests
// =============================================================================

func TestParseOption(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.Option
	}{
		{"World!", domain.Option{Value: "World!"}},
		{"greeting=World!", domain.Option{Name: "greeting", Value: "World!"}},
		{"=a=b", domain.Option{Value: "a=b"}},
		{"flag=", domain.Option{Name: "flag"}},
		{"--foo=bar", domain.Option{Value: "--foo=bar"}},
		{"-v", domain.Option{Value: "-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseOption(tt.raw))
		})
	}
}

func TestParseSets(t *testing.T) {
	cfg, err := parseSets([]string{"executableFilePath=echo", "mode=a=b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"executableFilePath": "echo", "mode": "a=b"}, cfg)

	cfg, err = parseSets(nil)
	require.NoError(t, err)
	assert.Nil(t, cfg)

	_, err = parseSets([]string{"novalue"})
	assert.ErrorContains(t, err, "expected key=value")

	_, err = parseSets([]string{"=value"})
	assert.Error(t, err)
}

// =============================================================================
// Run Command Tests
// =============================================================================

func TestRunCommand_Echo(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	// Setup
	var stdout bytes.Buffer
	c := newRunTestContainer(launcher.NewClientWithStreams(nil, &stdout, nil))
	path := writeDocument(t, "echo.json", `{"executableFilePath": "echo"}`)

	root := NewRootCommand(c, "test")
	root.SetArgs([]string{"run", "-c", path, "-o", "greeting=World!", "--", "Hello"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", strings.TrimSpace(stdout.String()))
}

func TestRunCommand_NonZeroExit(t *testing.T) {
	l := testutil.NewMockProcessLauncher()
	l.ExitCode = 4
	c := newRunTestContainer(l)

	root := NewRootCommand(c, "test")
	root.SetArgs([]string{"run", "--set", "executableFilePath=false"})
	err := root.Execute()

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 4, exitErr.Code)
	assert.Equal(t, "exit status 4", exitErr.Error())
}

func TestRunCommand_NoConfiguration_ExitsOne(t *testing.T) {
	l := testutil.NewMockProcessLauncher()
	c := newRunTestContainer(l)

	root := NewRootCommand(c, "test")
	root.SetArgs([]string{"run", "Hello"})
	err := root.Execute()

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Empty(t, l.Calls)
}

func TestRunCommand_LaunchFailure(t *testing.T) {
	c := newRunTestContainer(launcher.NewClientWithStreams(nil, nil, nil))

	root := NewRootCommand(c, "test")
	root.SetArgs([]string{"run", "--set", "executableFilePath=nonexistent-command-xyz"})
	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrLaunchFailure)
	var exitErr *ExitError
	assert.NotErrorAs(t, err, &exitErr)
}

func TestArgsCommand_DashOptionKeptWhole(t *testing.T) {
	c := newRunTestContainer(testutil.NewMockProcessLauncher())

	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"args", "--set", "executableFilePath=ls", "-o", "--color=never"})
	err := root.Execute()

	require.NoError(t, err)
	assert.Equal(t, "0  ls\n1  --color=never\n", buf.String())
}

func TestRunCommand_InvalidSet(t *testing.T) {
	c := newRunTestContainer(testutil.NewMockProcessLauncher())

	root := NewRootCommand(c, "test")
	root.SetArgs([]string{"run", "--set", "broken"})
	err := root.Execute()

	assert.ErrorContains(t, err, "invalid --set")
}

func TestRunCommand_UnsupportedType(t *testing.T) {
	c := newRunTestContainer(testutil.NewMockProcessLauncher())

	root := NewRootCommand(c, "test")
	root.SetArgs([]string{"run", "-t", "pipeline", "--set", "executableFilePath=echo"})
	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrUnsupportedCommandType)
}

// =============================================================================
// Args Command Tests
// =============================================================================

func TestArgsCommand_PrintsTokens(t *testing.T) {
	// Setup
	l := testutil.NewMockProcessLauncher()
	c := newRunTestContainer(l)
	path := writeDocument(t, "cmd.yaml", "executableFilePath: /usr/bin/printf\n")

	root := NewRootCommand(c, "test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"args", "-c", path, "-o", "last", "first", "", "second"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "0  /usr/bin/printf\n1  first\n2  second\n3  last\n", buf.String())
	assert.Empty(t, l.Calls)
}

func TestArgsCommand_NoConfiguration(t *testing.T) {
	c := newRunTestContainer(testutil.NewMockProcessLauncher())

	root := NewRootCommand(c, "test")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"args", "x"})
	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestPrintTokens_PadsIndex(t *testing.T) {
	tokens := make([]string, 11)
	for i := range tokens {
		tokens[i] = "t"
	}

	var buf bytes.Buffer
	printTokens(&buf, tokens)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, " 0  t", lines[0])
	assert.Equal(t, "10  t", lines[10])
}
