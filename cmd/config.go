package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/defargs/internal/config"
	"github.com/mouse-blink/defargs/internal/domain"
	m "github.com/mouse-blink/defargs/internal/model"
)

var configFlag string
var excludeFlags []string
var verboseFlag bool

// loadConfig resolves the configuration file and applies the persistent
// flags. Relative paths in a file are taken from the file's directory.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, path, err := config.Resolve(configFlag, ".")
	if err != nil {
		return config.Config{}, err
	}

	if path != "" {
		base := filepath.Dir(path)
		cfg.Cache.Path = relativeTo(base, cfg.Cache.Path)
		cfg.Output.Dir = relativeTo(base, cfg.Output.Dir)
	}

	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = append(cfg.Exclude, excludeFlags...)
	}

	return cfg, nil
}

func relativeTo(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(base, path)
}

func limits(cfg config.Config) domain.Limits {
	return domain.Limits{
		MaxRequired:  cfg.Limits.MaxRequired,
		MaxDefaulted: cfg.Limits.MaxDefaulted,
		MaxVariants:  cfg.Limits.MaxVariants,
	}
}

func listArgs(cfg config.Config, args []string) domain.ListArgs {
	return domain.ListArgs{
		Paths:   parsePaths(args),
		Exclude: cfg.Exclude,
		Limits:  limits(cfg),
	}
}

// parsePaths defaults to the whole module below the working directory.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
