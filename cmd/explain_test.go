package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/defargs/internal/domain"
	m "github.com/mouse-blink/defargs/internal/model"
)

func TestExplainCmd(t *testing.T) {
	mockWorkflow := swapWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newExplainCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Explain(domain.ExplainArgs{
		Path:   m.Path("calc/calc.go"),
		Name:   "Add",
		Limits: domain.DefaultLimits(),
	}).Return(nil)

	cmd.SetArgs([]string{"explain", "calc/calc.go", "Add"})
	require.NoError(t, cmd.Execute())
}

func TestExplainCmd_RequiresTwoArgs(t *testing.T) {
	swapWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newExplainCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"explain", "calc/calc.go"})
	assert.Error(t, cmd.Execute())
}
