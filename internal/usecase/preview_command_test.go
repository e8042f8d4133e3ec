package usecase

import (
	"context"
	"testing"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
	"github.com/JesseSandvik/Khepri-Black/internal/testutil"
	"github.com/JesseSandvik/Khepri-Black/internal/usecase/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCommand_Execute(t *testing.T) {
	// Setup
	l := testutil.NewMockProcessLauncher()
	uc := NewPreviewCommand(newTestBuilder(l, testutil.NewMockDocumentLoader()))

	// Execute
	out, err := uc.Execute(context.Background(), PreviewCommandInput{
		Spec: shared.CommandSpec{
			Configuration: echoConfig(),
			Positionals:   []string{"Hello", ""},
			Options:       []domain.Option{{Name: "n", Value: "World!"}},
		},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "Hello", "World!"}, out.Tokens)
	assert.Empty(t, l.Calls, "preview must not launch anything")
}

func TestPreviewCommand_Execute_NoConfiguration(t *testing.T) {
	uc := NewPreviewCommand(newTestBuilder(testutil.NewMockProcessLauncher(), testutil.NewMockDocumentLoader()))

	_, err := uc.Execute(context.Background(), PreviewCommandInput{})

	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestPreviewCommand_Execute_DocumentError(t *testing.T) {
	docs := testutil.NewMockDocumentLoader()
	docs.LoadErr = assert.AnError
	uc := NewPreviewCommand(newTestBuilder(testutil.NewMockProcessLauncher(), docs))

	_, err := uc.Execute(context.Background(), PreviewCommandInput{
		Spec: shared.CommandSpec{ConfigPath: "cmd.yaml"},
	})

	assert.ErrorIs(t, err, assert.AnError)
}
