// Package cmd provides the root command and CLI setup for defargs.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/defargs/internal/adapter"
	"github.com/mouse-blink/defargs/internal/controller"
	"github.com/mouse-blink/defargs/internal/domain"
)

var sourceFSAdapter *adapter.LocalSourceFSAdapter
var goFileAdapter adapter.GoFileAdapter
var goEmitter adapter.GoEmitter
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	goEmitter = adapter.NewLocalGoEmitter()
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		goFileAdapter,
		goEmitter,
		adapter.OpenGenerationStore,
		ui,
	)

	rootCmd.AddCommand(newGenerateCmd(), newListCmd(), newExplainCmd())
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const pathsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./pkg/...      recursively scan pkg directory
  - ./cmd ./pkg    scan multiple directories`

func newRootCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "defargs [paths...]",
		Short: "Generate default and named argument wrappers for Go",
		Long: `defargs reads Go declarations marked with //defargs:generate and writes a
wrapper for each that accepts any legal mix of positional, named and
omitted defaulted arguments, resolving every call to one positional call
of the original function or struct literal.

Without a subcommand it runs generate.

` + pathsHelp,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "configuration file (default: nearest .defargs.yaml, .defargs.yml or .defargs.toml)")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print per-file progress")
	opts.bind(cmd)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
