package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/defargs/internal/domain"
	domainmocks "github.com/mouse-blink/defargs/internal/domain/mocks"
	m "github.com/mouse-blink/defargs/internal/model"
)

func TestListCmd_DefaultsToModule(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Paths) == 1 && args.Paths[0] == m.Path("./...") &&
			args.Limits == domain.DefaultLimits()
	})).Return(nil)

	cmd.SetArgs([]string{"list"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestListCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("List", mock.MatchedBy(func(args domain.ListArgs) bool {
		return len(args.Exclude) == 1 && args.Exclude[0] == "^vendor/" &&
			len(args.Paths) == 2 && args.Paths[1] == m.Path("./pkg/...")
	})).Return(nil)

	cmd.SetArgs([]string{"list", "-x", "^vendor/", "./cmd", "./pkg/..."})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list [paths...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, listLongDescription, cmd.Long)
}
