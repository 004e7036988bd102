package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/defargs/internal/domain"
	m "github.com/mouse-blink/defargs/internal/model"
)

// generateOptions holds the flags shared by the root and generate commands.
type generateOptions struct {
	parallel int
	noCache  bool
	out      string
	outPkg   string
	qualify  bool
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.parallel, "parallel", "p", 1, "number of source files generated concurrently")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "regenerate every file, ignoring the generation cache")
	cmd.Flags().StringVar(&o.out, "out", "", "write all wrappers to this directory as a separate package")
	cmd.Flags().StringVar(&o.outPkg, "out-pkg", "", "package name of qualified output")
	cmd.Flags().BoolVar(&o.qualify, "qualify", false, "write wrappers to a <pkg>args subpackage next to each source package")
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate [paths...]",
		Aliases: []string{"gen"},
		Short:   "Write wrapper files for marked declarations",
		Long: `Generate writes one <file>_defargs.go next to every source file that declares
callables marked with //defargs:generate. Unchanged sources are skipped
using the generation cache.

` + pathsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("parallel") {
		cfg.Parallel = opts.parallel
	}

	if flags.Changed("out") {
		cfg.Output.Dir = opts.out
	}

	if flags.Changed("out-pkg") {
		cfg.Output.Package = opts.outPkg
	}

	if flags.Changed("qualify") {
		cfg.Output.Qualify = opts.qualify
	}

	if opts.noCache {
		cfg.Cache.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	sourceFSAdapter.GeneratedSuffix = cfg.Output.Suffix

	var cache m.Path
	if cfg.Cache.Enabled {
		cache = m.Path(cfg.Cache.Path)
	}

	return workflow.Generate(domain.GenerateArgs{
		ListArgs: listArgs(cfg, args),
		Output: domain.OutputArgs{
			Suffix:  cfg.Output.Suffix,
			Dir:     m.Path(cfg.Output.Dir),
			Package: cfg.Output.Package,
			Qualify: cfg.Output.Qualify,
		},
		Threads:     cfg.Parallel,
		Cache:       cache,
		Fingerprint: cfg.Fingerprint(),
		Verbose:     verboseFlag,
	})
}
