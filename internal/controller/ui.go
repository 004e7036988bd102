// Package controller provides the output adapters of the defargs CLI.
package controller

import (
	m "github.com/mouse-blink/defargs/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGenerate StartMode = iota
	ModeList
	ModeExplain
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode    StartMode
	verbose bool
}

// WithGenerateMode shows per-file progress while files are generated.
func WithGenerateMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGenerate
	}
}

// WithListMode shows the callables found in the scanned sources.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithExplainMode shows the dispatch table of one callable.
func WithExplainMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeExplain
	}
}

// WithVerbose enables per-file progress lines in plain-text output.
func WithVerbose(verbose bool) StartOption {
	return func(c *StartConfig) {
		c.verbose = verbose
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface the workflow reports through.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayConcurrencyInfo(workers int, files int)
	DisplayStartingFile(source m.Source, worker int)
	DisplayCompletedFile(report m.Report)
	DisplayReports(reports []m.Report) error
	DisplaySummaries(summaries []m.CallableSummary, err error) error
	DisplayTable(table m.DispatchTable) error
}
