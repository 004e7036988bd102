package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/defargs/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// send while running should go through program.Send
	tui.send(concurrencyMsg{workers: 1, files: 2})

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_SendBeforeStart_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.send(concurrencyMsg{workers: 1, files: 1})
	tui.DisplayStartingFile(m.Source{}, 0)
	tui.DisplayCompletedFile(m.Report{})
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close() // Close again should be safe

	tui2 := NewTUI(&buf)
	tui2.Wait() // Wait without start should be no-op
}

func TestTUI_ExplainMode(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithExplainMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if err := tui.DisplayTable(sampleTable()); err != nil {
		t.Fatalf("DisplayTable error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "defargs explain") || !strings.Contains(out, "AddArgs") {
		t.Fatalf("unexpected output %q", out)
	}

	tui.Wait()
	tui.Close()
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.DisplayConcurrencyInfo(2, 3)

	if err := tui.DisplaySummaries(sampleSummaries(), nil); err != nil {
		t.Fatalf("DisplaySummaries unexpected error = %v", err)
	}

	if err := tui.DisplaySummaries(nil, errSentinel); !errors.Is(err, errSentinel) {
		t.Fatalf("DisplaySummaries error = %v, want %v", err, errSentinel)
	}

	if err := tui.DisplayReports(nil); err != nil {
		t.Fatalf("DisplayReports unexpected error = %v", err)
	}
}

func TestNewFileResult(t *testing.T) {
	origin := &m.File{Path: "calc/calc.go"}

	generated := newFileResult(m.Report{
		Source:    m.Source{Origin: origin},
		Output:    "calc/calc_defargs.go",
		Callables: []string{"AddArgs"},
		Variants:  3,
	})
	if generated.status != "generated" || generated.path != "calc/calc.go" || generated.variants != 3 {
		t.Fatalf("unexpected result %+v", generated)
	}
	if !strings.Contains(generated.detail, "AddArgs") {
		t.Fatalf("detail = %q", generated.detail)
	}

	failed := newFileResult(m.Report{Source: m.Source{Origin: origin}, Error: errSentinel})
	if failed.status != "error" || failed.detail != errSentinel.Error() {
		t.Fatalf("unexpected result %+v", failed)
	}

	removed := newFileResult(m.Report{Source: m.Source{Origin: origin}})
	if removed.status != "removed" || removed.detail != "no wrappers" {
		t.Fatalf("unexpected result %+v", removed)
	}
}

var errSentinel = errors.New("boom")
