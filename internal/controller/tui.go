package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/defargs/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	done    chan struct{}
	mu      sync.Mutex
	mode    StartMode
	started bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program for the selected mode.
// Explain mode renders statically and starts no program.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	t.mode = cfg.mode

	switch cfg.mode {
	case ModeList:
		return t.startWithModel(newListModel())
	case ModeGenerate:
		return t.startWithModel(newGenerateModel())
	default:
		t.mu.Lock()
		t.started = true
		t.mu.Unlock()

		return nil
	}
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	t.done = make(chan struct{})
	t.started = true

	program, done := t.program, t.done

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// Wait blocks until the user closes the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// DisplayConcurrencyInfo resets the progress bar for a new run.
func (t *TUI) DisplayConcurrencyInfo(workers int, files int) {
	t.send(concurrencyMsg{workers: workers, files: files})
}

// DisplayStartingFile marks a worker busy with a source file.
func (t *TUI) DisplayStartingFile(source m.Source, worker int) {
	t.send(startFileMsg{worker: worker, path: string(sourcePath(source))})
}

// DisplayCompletedFile records the outcome of one source file.
func (t *TUI) DisplayCompletedFile(report m.Report) {
	t.send(completedFileMsg{result: newFileResult(report)})
}

// DisplayReports switches the program to the results view.
func (t *TUI) DisplayReports(reports []m.Report) error {
	t.send(finishedMsg{files: len(reports)})

	return nil
}

// DisplaySummaries hands the scanned callables to the list view.
func (t *TUI) DisplaySummaries(summaries []m.CallableSummary, err error) error {
	items := make([]callableItem, 0, len(summaries))
	total := 0

	for _, s := range summaries {
		items = append(items, callableItem{
			label:    fmt.Sprintf("%s %s → %s", s.Position, s.Name, s.Wrapper),
			variants: s.Variants,
		})

		if s.Variants > 0 {
			total += s.Variants
		}
	}

	t.send(summariesMsg{items: items, variants: total, err: err})

	return err
}

// DisplayTable prints the dispatch table of one callable below a styled title.
func (t *TUI) DisplayTable(table m.DispatchTable) error {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Render("defargs explain")

	_, err := fmt.Fprintf(t.output, "%s\n\n%s", title, renderDispatchTable(table))

	return err
}

func newFileResult(report m.Report) fileResult {
	result := fileResult{
		path:     string(sourcePath(report.Source)),
		output:   string(report.Output),
		status:   reportStatus(report),
		wrappers: report.Callables,
		variants: report.Variants,
	}

	if report.Error != nil {
		// keep the status column short; the full message goes to the detail box
		result.status = "error"
		result.detail = report.Error.Error()

		return result
	}

	if len(report.Callables) == 0 {
		result.detail = "no wrappers"

		return result
	}

	result.detail = fmt.Sprintf("%s\n%s", result.output, strings.Join(report.Callables, "\n"))

	return result
}
