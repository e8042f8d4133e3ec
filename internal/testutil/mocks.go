// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"log/slog"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
)

// MockProcessLauncher is a test double for domain.ProcessLauncher.
type MockProcessLauncher struct {
	RunErr   error
	Calls    []*domain.ExecCommand
	ExitCode int
}

// NewMockProcessLauncher creates a new MockProcessLauncher that reports success.
func NewMockProcessLauncher() *MockProcessLauncher {
	return &MockProcessLauncher{}
}

// Run records cmd and returns the configured result.
func (m *MockProcessLauncher) Run(_ context.Context, cmd *domain.ExecCommand) (int, error) {
	m.Calls = append(m.Calls, cmd)
	if m.RunErr != nil {
		return -1, m.RunErr
	}
	return m.ExitCode, nil
}

// LastTokens returns the argument vector of the most recent call, or nil.
func (m *MockProcessLauncher) LastTokens() []string {
	if len(m.Calls) == 0 {
		return nil
	}
	return m.Calls[len(m.Calls)-1].Tokens()
}

// MockDocumentLoader is a test double for domain.DocumentLoader.
type MockDocumentLoader struct {
	Documents map[string]map[string]string
	LoadErr   error
	Loaded    []string
}

// NewMockDocumentLoader creates a new MockDocumentLoader with an initialized map.
func NewMockDocumentLoader() *MockDocumentLoader {
	return &MockDocumentLoader{
		Documents: make(map[string]map[string]string),
	}
}

// LoadFile returns the document registered for path.
func (m *MockDocumentLoader) LoadFile(path string) (map[string]string, error) {
	m.Loaded = append(m.Loaded, path)
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	doc, ok := m.Documents[path]
	if !ok {
		return nil, domain.ErrUnsupportedFormat
	}
	return doc, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
// Fields are ordered to minimize memory padding.
type MockConfigLoader struct {
	Config      *domain.Config
	LoadErr     error
	SourceList  []domain.ConfigSource
	LastOptions domain.LoadConfigOptions
}

// NewMockConfigLoader creates a new MockConfigLoader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions records opts and returns the configured config.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOptions = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// Sources returns the configured sources.
func (m *MockConfigLoader) Sources() []domain.ConfigSource {
	return m.SourceList
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
