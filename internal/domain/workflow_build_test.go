package domain

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/defargs/internal/adapter"
	controllermocks "github.com/mouse-blink/defargs/internal/controller/mocks"
)

const geometryMain = `package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/mouse-blink/defargs/pkg/defargs"

	"example.com/geodemo/geometry"
)

func main() {
	p, err := geometry.NewPoint(defargs.Named("X", 3), defargs.Rest())
	fmt.Printf("%+v %v\n", p, err)

	q, err := geometry.NewPoint(defargs.Named("X", 1), defargs.Named("Label", "b"), defargs.Named("Y", 2))
	fmt.Printf("%+v %v\n", q, err)

	v, err := geometry.NewVector(defargs.Pos(1), defargs.Pos(2))
	fmt.Printf("%+v %v\n", v, err)

	w, err := geometry.NewVector(defargs.Pos(1), defargs.Pos(2), defargs.Pos(5))
	fmt.Printf("%+v %v\n", w, err)

	moved, moveErr, err := geometry.MoveArgs(defargs.Pos(p), defargs.Pos(v))
	fmt.Printf("%+v %v %v\n", moved, moveErr, err)

	moved, moveErr, err = geometry.MoveArgs(defargs.Pos(p), defargs.Named("v", w),
		defargs.Named("delay", time.Duration(0)), defargs.Named("speed", 2))
	fmt.Printf("%+v %v %v\n", moved, moveErr, err)

	_, _, err = geometry.MoveArgs(defargs.Pos(p), defargs.Pos(v), defargs.Named("speed", "fast"))
	var bindErr *defargs.BindError
	fmt.Println(errors.As(err, &bindErr))

	_, _, err = geometry.MoveArgs(defargs.Named("delay", time.Second))
	fmt.Println(errors.Is(err, defargs.ErrNoMatch))
}
`

const geometryWant = `{X:3 Y:0 Label:origin} <nil>
{X:1 Y:2 Label:b} <nil>
{DX:1 DY:2 Scale:1} <nil>
{DX:1 DY:2 Scale:5} <nil>
{X:4 Y:2 Label:origin} <nil> <nil>
{X:8 Y:10 Label:origin} <nil> <nil>
true
true
`

// TestWorkflow_Generate_GeometryWrappersRun generates wrappers for the
// geometry example into a scratch module and runs a program calling them.
func TestWorkflow_Generate_GeometryWrappersRun(t *testing.T) {
	if testing.Short() {
		t.Skip("builds a module with the go command")
	}

	goBin, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go command not available")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	example, err := os.ReadFile(filepath.Join(repoRoot, "examples", "geometry", "geometry.go"))
	require.NoError(t, err)

	root := t.TempDir()
	writeSource(t, filepath.Join(root, "go.mod"), `module example.com/geodemo

go 1.25.1

require github.com/mouse-blink/defargs v0.0.0-00010101000000-000000000000

replace github.com/mouse-blink/defargs => `+repoRoot+"\n")
	writeSource(t, filepath.Join(root, "geometry", "geometry.go"), string(example))
	writeSource(t, filepath.Join(root, "main.go"), geometryMain)

	ui := controllermocks.NewMockUI(t)
	reports := expectGenerateUI(ui)

	err = newTestWorkflow(ui, adapter.OpenGenerationStore).Generate(generateArgs(filepath.Join(root, "geometry")))
	require.NoError(t, err)
	require.Len(t, *reports, 1)
	assert.Equal(t, []string{"NewPoint", "NewVector", "MoveArgs"}, (*reports)[0].Callables)
	require.FileExists(t, filepath.Join(root, "geometry", "geometry_defargs.go"))

	cmd := exec.Command(goBin, "run", ".")
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GOWORK=off", "GOFLAGS=-mod=mod")

	out, err := cmd.CombinedOutput()
	if err != nil && (strings.Contains(string(out), "dial tcp") || strings.Contains(string(out), "lookup disabled")) {
		t.Skipf("module download unavailable: %s", out)
	}

	require.NoError(t, err, string(out))
	assert.Equal(t, geometryWant, string(out))
}
