package controller

import (
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/defargs/internal/model"
)

// SimpleUI implements UI with plain text written to the command output.
type SimpleUI struct {
	cmd     *cobra.Command
	verbose bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.verbose = newStartConfig(options).verbose

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain text needs no user interaction.
func (s *SimpleUI) Wait() {
}

// DisplayConcurrencyInfo prints the worker setup in verbose mode.
func (s *SimpleUI) DisplayConcurrencyInfo(workers int, files int) {
	if s.verbose {
		s.printf("Generating %d file(s) with %d worker(s)\n", files, workers)
	}
}

// DisplayStartingFile prints the file a worker picked up in verbose mode.
func (s *SimpleUI) DisplayStartingFile(source m.Source, worker int) {
	if s.verbose {
		s.printf("[%d] %s\n", worker, sourcePath(source))
	}
}

// DisplayCompletedFile prints the outcome of one file in verbose mode.
func (s *SimpleUI) DisplayCompletedFile(report m.Report) {
	if s.verbose {
		s.printf("%s: %s\n", sourcePath(report.Source), reportStatus(report))
	}
}

// DisplayReports prints the generation results as a table.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No declarations marked for generation\n")

		return nil
	}

	s.printf("\n%s", renderReports(reports))

	return nil
}

// DisplaySummaries prints the callables found, or the error that stopped the scan.
func (s *SimpleUI) DisplaySummaries(summaries []m.CallableSummary, err error) error {
	if err != nil {
		s.printf("list error: %v\n", err)

		return err
	}

	if len(summaries) == 0 {
		s.printf("No declarations marked for generation\n")

		return nil
	}

	s.printf("\n%s", renderSummaries(summaries))

	return nil
}

// DisplayTable prints the dispatch table of one callable.
func (s *SimpleUI) DisplayTable(table m.DispatchTable) error {
	s.printf("%s", renderDispatchTable(table))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
