package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/defargs/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return NewSimpleUI(cmd), &buf
}

func sampleSummaries() []m.CallableSummary {
	return []m.CallableSummary{
		{Source: "calc.go", Position: "calc.go:3", Name: "Add", Wrapper: "AddArgs", Kind: m.KindFunction, Required: 4, Default: 2, Variants: 173},
		{Source: "shapes.go", Position: "shapes.go:9", Name: "Point", Wrapper: "NewPoint", Kind: m.KindNamedAggregate, Required: 1, Default: 1, Variants: 4},
	}
}

func sampleTable() m.DispatchTable {
	a := m.Parameter{Name: "a", Type: "int"}
	b := m.Parameter{Name: "b", Type: "int", Default: m.ExprDefault("2")}

	return m.DispatchTable{
		Callable: m.Callable{Name: "Add", Kind: m.KindFunction, Params: m.Params{a, b}, Wrapper: "AddArgs", Position: "calc.go:3"},
		Entries: []m.DispatchEntry{
			{
				Key:      "a=,b=",
				Acceptor: []m.AcceptorToken{{Kind: m.TokenNamed, Name: "a"}, {Kind: m.TokenNamed, Name: "b"}},
				Call:     []m.CallArg{{Param: a, ArgIndex: 0}, {Param: b, ArgIndex: 1}},
			},
			{
				Key:      "_",
				Acceptor: []m.AcceptorToken{{Kind: m.TokenPositional, Name: "a"}},
				Call:     []m.CallArg{{Param: a, ArgIndex: 0}, {Param: b, ArgIndex: -1, Default: b.Default}},
			},
		},
	}
}

func TestSimpleUI_DisplaySummaries_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplaySummaries(sampleSummaries(), nil))

	output := buf.String()
	for _, want := range []string{"calc.go:3", "AddArgs", "func", "173", "NewPoint", "struct", "TOTAL CALLABLES 2", "177"} {
		assert.Containsf(t, output, want, "output:\n%s", output)
	}
}

func TestSimpleUI_DisplaySummaries_Invalid(t *testing.T) {
	ui, buf := newTestSimpleUI()

	summaries := []m.CallableSummary{{Position: "bad.go:1", Name: "Bad", Wrapper: "BadArgs", Variants: -1}}
	require.NoError(t, ui.DisplaySummaries(summaries, nil))

	assert.Contains(t, buf.String(), "invalid")
}

func TestSimpleUI_DisplaySummaries_EmptyAndError(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplaySummaries(nil, nil))
	assert.Contains(t, buf.String(), "No declarations marked for generation")

	boom := errors.New("boom")
	err := ui.DisplaySummaries(nil, boom)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "list error: boom")
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	ui, buf := newTestSimpleUI()

	reports := []m.Report{
		{Source: m.Source{Origin: &m.File{Path: "calc.go"}}, Output: "calc_defargs.go", Callables: []string{"AddArgs"}, Variants: 173},
		{Source: m.Source{Origin: &m.File{Path: "shapes.go"}}, Output: "shapes_defargs.go", Callables: []string{"NewPoint"}, Variants: 4, Cached: true},
		{Source: m.Source{Origin: &m.File{Path: "bad.go"}}, Error: errors.New("bad.go:3: variadic")},
	}

	require.NoError(t, ui.DisplayReports(reports))

	output := buf.String()
	for _, want := range []string{"calc_defargs.go", "generated", "cached", "error: bad.go:3: variadic", "TOTAL FILES 3", "177"} {
		assert.Containsf(t, output, want, "output:\n%s", output)
	}
}

func TestSimpleUI_DisplayReports_Empty(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayReports(nil))
	assert.Contains(t, buf.String(), "No declarations marked for generation")
}

func TestSimpleUI_DisplayTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayTable(sampleTable()))

	output := buf.String()
	assert.Contains(t, output, "func Add (calc.go:3) → AddArgs, 2 variants")
	assert.Contains(t, output, "(a=, b=)")
	assert.Contains(t, output, "Add(a, b)")
	assert.Contains(t, output, "(a)")
	assert.Contains(t, output, "Add(a, 2)")
}

func TestSimpleUI_VerboseProgress(t *testing.T) {
	source := m.Source{Origin: &m.File{Path: "calc.go"}}
	report := m.Report{Source: source, Output: "calc_defargs.go"}

	quiet, quietBuf := newTestSimpleUI()
	require.NoError(t, quiet.Start(WithGenerateMode()))
	quiet.DisplayConcurrencyInfo(2, 1)
	quiet.DisplayStartingFile(source, 0)
	quiet.DisplayCompletedFile(report)
	assert.Empty(t, quietBuf.String())

	loud, loudBuf := newTestSimpleUI()
	require.NoError(t, loud.Start(WithGenerateMode(), WithVerbose(true)))
	loud.DisplayConcurrencyInfo(2, 1)
	loud.DisplayStartingFile(source, 1)
	loud.DisplayCompletedFile(report)
	loud.Wait()
	loud.Close()

	lines := strings.Split(strings.TrimSpace(loudBuf.String()), "\n")
	assert.Equal(t, []string{
		"Generating 1 file(s) with 2 worker(s)",
		"[1] calc.go",
		"calc.go: generated",
	}, lines)
}

func TestCallText_Aggregates(t *testing.T) {
	x := m.Parameter{Name: "X", Type: "int"}
	z := m.Parameter{Name: "Z", Type: "int", Default: m.ZeroDefault()}
	entry := m.DispatchEntry{Call: []m.CallArg{{Param: x, ArgIndex: 0}, {Param: z, ArgIndex: -1, Default: z.Default}}}

	assert.Equal(t, "Point{X: X, Z: zero}", callText(m.Callable{Name: "Point", Kind: m.KindNamedAggregate}, entry))
	assert.Equal(t, "Point{X, zero}", callText(m.Callable{Name: "Point", Kind: m.KindTupleAggregate}, entry))
}

func TestAcceptsText_Rest(t *testing.T) {
	entry := m.DispatchEntry{Acceptor: []m.AcceptorToken{
		{Kind: m.TokenPositional, Name: "X"},
		{Kind: m.TokenRest},
	}}

	assert.Equal(t, "(X, ..)", acceptsText(entry))
}
