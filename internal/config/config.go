// Package config loads the defargs project configuration.
//
// A project configures defargs with a .defargs.yaml, .defargs.yml or
// .defargs.toml file, found by walking up from the working directory the
// same way .gitignore is found. Command-line flags override file values.
package config

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Candidate file names, in lookup order within one directory.
var fileNames = []string{".defargs.yaml", ".defargs.yml", ".defargs.toml"}

// Config is the top-level defargs configuration.
type Config struct {
	// Parallel is the number of source files generated concurrently.
	Parallel int `yaml:"parallel" toml:"parallel"`

	// Exclude lists regular expressions matched against source paths.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude"`

	Limits Limits `yaml:"limits" toml:"limits"`
	Output Output `yaml:"output" toml:"output"`
	Cache  Cache  `yaml:"cache" toml:"cache"`
}

// Limits caps the parameter counts a callable may declare and the number of
// call shapes its wrapper accepts. Negative values disable the check.
type Limits struct {
	MaxRequired  int `yaml:"max_required" toml:"max_required"`
	MaxDefaulted int `yaml:"max_defaulted" toml:"max_defaulted"`
	MaxVariants  int `yaml:"max_variants" toml:"max_variants"`
}

// Output controls where generated files are written.
type Output struct {
	// Suffix replaces the ".go" extension of each source file.
	Suffix string `yaml:"suffix" toml:"suffix"`

	// Dir, when set, collects generated files in one directory instead of
	// next to their sources. Wrappers there live in another package, so
	// references to the source package are qualified.
	Dir string `yaml:"dir,omitempty" toml:"dir"`

	// Package names the package of qualified output. Defaults to the base
	// name of Dir, or "<pkg>args" for per-package output.
	Package string `yaml:"package,omitempty" toml:"package"`

	// Qualify writes each package's wrappers to a subpackage next to the
	// source, named Package or "<pkg>args", when Dir is empty.
	Qualify bool `yaml:"qualify,omitempty" toml:"qualify"`
}

// Cache configures the generation cache.
type Cache struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Path    string `yaml:"path" toml:"path"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Parallel: 1,
		Limits: Limits{
			MaxRequired:  8,
			MaxDefaulted: 9,
			MaxVariants:  10000,
		},
		Output: Output{
			Suffix: "_defargs.go",
		},
		Cache: Cache{
			Enabled: true,
			Path:    filepath.Join(".defargs-cache", "cache.db"),
		},
	}
}

// Load reads the configuration file at path. Keys missing from the file
// keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse decodes configuration content. The file extension of path selects
// TOML or YAML; path is otherwise used only for error messages.
func Parse(data []byte, path string) (Config, error) {
	cfg := Default()

	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Find searches for a configuration file starting from dir and walking up
// to parent directories. It returns an empty path and nil error when no
// file is found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range fileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}

		dir = parent
	}
}

// Resolve loads the file at explicit when given, otherwise the nearest file
// above dir, otherwise the defaults.
func Resolve(explicit, dir string) (Config, string, error) {
	path := explicit
	if path == "" {
		found, err := Find(dir)
		if err != nil {
			return Config{}, "", err
		}

		path = found
	}

	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// Validate checks the configuration for semantic errors.
func (c Config) Validate() error {
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	if c.Output.Suffix == "" || filepath.Ext(c.Output.Suffix) != ".go" {
		return fmt.Errorf("output suffix %q must end in .go", c.Output.Suffix)
	}

	if c.Output.Package != "" && c.Output.Dir == "" && !c.Output.Qualify {
		return fmt.Errorf("output package %q requires output dir or qualify", c.Output.Package)
	}

	for _, pattern := range c.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	if c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("cache path is empty")
	}

	return nil
}

// Qualified reports whether generated wrappers live outside the source package.
func (c Config) Qualified() bool {
	return c.Output.Dir != "" || c.Output.Qualify
}

// Fingerprint identifies the settings that change generated output. Cached
// outputs are reused only while it stays the same.
func (c Config) Fingerprint() string {
	data, err := yaml.Marshal(struct {
		Limits Limits `yaml:"limits"`
		Output Output `yaml:"output"`
	}{c.Limits, c.Output})
	if err != nil {
		panic(fmt.Sprintf("config fingerprint: %v", err))
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}
