package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/defargs/internal/adapter"
	"github.com/mouse-blink/defargs/internal/controller"
	m "github.com/mouse-blink/defargs/internal/model"
)

// ErrCallableNotFound is returned by Explain when no callable matches.
var ErrCallableNotFound = errors.New("callable not found")

// ErrGenerationFailed is returned by Generate when at least one file failed.
var ErrGenerationFailed = errors.New("generation failed")

// ErrOutputCollision is returned by Generate when two sources map to the same
// output file. Nothing is written in that case.
var ErrOutputCollision = errors.New("output written for more than one source")

const generatedMarker = "// Code generated by defargs"

// ListArgs selects the sources to scan.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
	Limits  Limits
}

// OutputArgs controls where generated files go.
type OutputArgs struct {
	Suffix  string
	Dir     m.Path
	Package string
	Qualify bool
}

// GenerateArgs configures one generation run.
type GenerateArgs struct {
	ListArgs
	Output  OutputArgs
	Threads int
	// Cache is the generation store location; empty disables caching.
	Cache m.Path
	// Fingerprint identifies the settings the output depends on.
	Fingerprint string
	Verbose     bool
}

// ExplainArgs names one callable in one source file.
type ExplainArgs struct {
	Path m.Path
	// Name matches either the declaration or its wrapper.
	Name   string
	Limits Limits
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Generate(args GenerateArgs) error
	List(args ListArgs) error
	Explain(args ExplainArgs) error
}

type workflow struct {
	fs        adapter.SourceFSAdapter
	reader    adapter.GoFileAdapter
	emitter   adapter.GoEmitter
	openStore adapter.StoreOpener
	ui        controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	reader adapter.GoFileAdapter,
	emitter adapter.GoEmitter,
	openStore adapter.StoreOpener,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:        fs,
		reader:    reader,
		emitter:   emitter,
		openStore: openStore,
		ui:        ui,
	}
}

// Generate writes one wrapper file per source file that declares callables.
// Directive and validation errors are reported per file; I/O and cache
// errors abort the run.
func (w *workflow) Generate(args GenerateArgs) (err error) {
	threads := max(args.Threads, 1)

	sources, err := w.fs.Get(args.Paths, args.Exclude)
	if err != nil {
		return err
	}

	outputs, err := w.planOutputs(sources, args.Output)
	if err != nil {
		return err
	}

	store, err := w.openStore(args.Cache)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := w.ui.Start(controller.WithGenerateMode(), controller.WithVerbose(args.Verbose)); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayConcurrencyInfo(threads, len(sources))

	job := generateJob{
		args:      args,
		generator: NewGenerator(args.Limits),
		store:     store,
	}

	reports := make([]*m.Report, len(sources))

	workers := make(chan int, threads)
	for i := range threads {
		workers <- i
	}

	group, ctx := errgroup.WithContext(context.Background())
	group.SetLimit(threads)

	for i, source := range sources {
		group.Go(func() error {
			worker := <-workers
			defer func() { workers <- worker }()

			w.ui.DisplayStartingFile(source, worker)

			report, err := w.generateFile(ctx, job, source, outputs[i])
			if err != nil {
				return fmt.Errorf("%s: %w", source.Origin.Path, err)
			}

			reports[i] = report
			if report != nil {
				w.ui.DisplayCompletedFile(*report)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	results := collectReports(reports)

	if err := w.ui.DisplayReports(results); err != nil {
		return err
	}

	w.ui.Wait()

	failed := 0

	for _, report := range results {
		if report.Error != nil {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files: %w", failed, len(results), ErrGenerationFailed)
	}

	return nil
}

type generateJob struct {
	args      GenerateArgs
	generator Generator
	store     adapter.GenerationStore
}

// planned is the output location of one source file.
type planned struct {
	path m.Path
	// pkg is the package clause of the output file.
	pkg       string
	qualifier *adapter.Qualifier
}

func (w *workflow) planOutputs(sources []m.Source, out OutputArgs) ([]planned, error) {
	plans := make([]planned, len(sources))
	owners := make(map[m.Path]int, len(sources))

	for i, source := range sources {
		plan, err := w.planOutput(source, out)
		if err != nil {
			return nil, err
		}

		if prev, taken := owners[plan.path]; taken {
			return nil, fmt.Errorf("%s and %s both write %s: %w",
				sources[prev].Origin.Path, source.Origin.Path, plan.path, ErrOutputCollision)
		}

		owners[plan.path] = i

		plans[i] = plan
	}

	return plans, nil
}

func (w *workflow) planOutput(source m.Source, out OutputArgs) (planned, error) {
	full := string(source.Origin.FullPath)
	dir := filepath.Dir(full)
	base := strings.TrimSuffix(filepath.Base(full), ".go")

	if out.Dir == "" && !out.Qualify {
		return planned{path: w.fs.JoinPath(dir, base+out.Suffix), pkg: source.Package}, nil
	}

	importPath, err := w.fs.ImportPath(m.Path(dir))
	if err != nil {
		return planned{}, fmt.Errorf("%s: %w", source.Origin.Path, err)
	}

	plan := planned{
		pkg:       out.Package,
		qualifier: &adapter.Qualifier{Path: importPath, Name: source.Package},
	}

	if out.Dir != "" {
		if plan.pkg == "" {
			plan.pkg = adapter.ImportName(string(out.Dir))
		}

		plan.path = w.fs.JoinPath(string(out.Dir), source.Package+"_"+base+out.Suffix)

		return plan, nil
	}

	if plan.pkg == "" {
		plan.pkg = source.Package + "args"
	}

	plan.path = w.fs.JoinPath(dir, plan.pkg, base+out.Suffix)

	return plan, nil
}

func (w *workflow) generateFile(ctx context.Context, job generateJob, source m.Source, plan planned) (*m.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, found, err := job.store.Lookup(ctx, source.Origin.FullPath)
	if err != nil {
		return nil, err
	}

	if found && w.fresh(entry, source, job.args.Fingerprint, plan.path) {
		if entry.Output == "" {
			return nil, nil
		}

		return &m.Report{
			Source:    source,
			Output:    entry.Output,
			Callables: entry.Callables,
			Variants:  entry.Variants,
			Cached:    true,
		}, nil
	}

	callables, err := w.readCallables(source)
	if err != nil {
		return w.failed(ctx, job, source, err)
	}

	if len(callables) == 0 {
		return w.removeStale(ctx, job, source, plan.path)
	}

	tables := make([]m.DispatchTable, 0, len(callables))
	report := &m.Report{Source: source, Output: plan.path}

	for _, callable := range callables {
		table, err := job.generator.Generate(callable)
		if err != nil {
			return w.failed(ctx, job, source, fmt.Errorf("%s: %w", callable.Position, err))
		}

		tables = append(tables, table)
		report.Callables = append(report.Callables, callable.Wrapper)
		report.Variants += len(table.Entries)
	}

	file, err := w.emitter.Emit(plan.pkg, tables, adapter.EmitOptions{
		Source:    filepath.Base(string(source.Origin.FullPath)),
		Output:    plan.path,
		Qualifier: plan.qualifier,
	})
	if err != nil {
		return w.failed(ctx, job, source, err)
	}

	if err := w.fs.WriteFile(file.Path, file.Content, 0o644); err != nil {
		return nil, err
	}

	outputHash, err := w.fs.HashFile(file.Path)
	if err != nil {
		return nil, err
	}

	err = job.store.Save(ctx, adapter.CacheEntry{
		Source:      source.Origin.FullPath,
		SourceHash:  source.Origin.Hash,
		Fingerprint: job.args.Fingerprint,
		Output:      file.Path,
		OutputHash:  outputHash,
		Callables:   report.Callables,
		Variants:    report.Variants,
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// failed reports a per-file error and drops the cache entry of source, so
// the previous output is no longer trusted once the file is fixed.
func (w *workflow) failed(ctx context.Context, job generateJob, source m.Source, cause error) (*m.Report, error) {
	if err := job.store.Forget(ctx, source.Origin.FullPath); err != nil {
		return nil, err
	}

	return &m.Report{Source: source, Error: cause}, nil
}

// fresh reports whether entry still describes the output for source.
func (w *workflow) fresh(entry adapter.CacheEntry, source m.Source, fingerprint string, output m.Path) bool {
	if entry.SourceHash != source.Origin.Hash || entry.Fingerprint != fingerprint {
		return false
	}

	if entry.Output == "" {
		return true
	}

	if entry.Output != output {
		return false
	}

	hash, err := w.fs.HashFile(entry.Output)

	return err == nil && hash == entry.OutputHash
}

// removeStale deletes a previously generated output for a source that no
// longer declares callables. Files without the generated marker are left alone.
func (w *workflow) removeStale(ctx context.Context, job generateJob, source m.Source, output m.Path) (*m.Report, error) {
	var report *m.Report

	content, err := w.fs.ReadFile(output)
	if err == nil && bytes.HasPrefix(content, []byte(generatedMarker)) {
		if err := w.fs.Remove(output); err != nil {
			return nil, err
		}

		report = &m.Report{Source: source}
	}

	err = job.store.Save(ctx, adapter.CacheEntry{
		Source:      source.Origin.FullPath,
		SourceHash:  source.Origin.Hash,
		Fingerprint: job.args.Fingerprint,
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func collectReports(reports []*m.Report) []m.Report {
	results := make([]m.Report, 0, len(reports))

	for _, report := range reports {
		if report != nil {
			results = append(results, *report)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Source.Origin.Path < results[j].Source.Origin.Path
	})

	return results
}

// List reports every callable marked for generation with its variant count.
func (w *workflow) List(args ListArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	summaries, scanErr := w.summaries(args)
	if err := w.ui.DisplaySummaries(summaries, scanErr); err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) summaries(args ListArgs) ([]m.CallableSummary, error) {
	sources, err := w.fs.Get(args.Paths, args.Exclude)
	if err != nil {
		return nil, err
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Origin.Path < sources[j].Origin.Path
	})

	generator := NewGenerator(args.Limits)

	var summaries []m.CallableSummary

	for _, source := range sources {
		callables, err := w.readCallables(source)
		if err != nil {
			return nil, err
		}

		for _, callable := range callables {
			summary := generator.Summarize(callable)
			summary.Source = source.Origin.Path
			summaries = append(summaries, summary)
		}
	}

	return summaries, nil
}

// Explain shows the dispatch table of one callable.
func (w *workflow) Explain(args ExplainArgs) error {
	sources, err := w.fs.Get([]m.Path{args.Path}, nil)
	if err != nil {
		return err
	}

	var candidates []string

	for _, source := range sources {
		callables, err := w.readCallables(source)
		if err != nil {
			return err
		}

		for _, callable := range callables {
			if callable.Name != args.Name && callable.Wrapper != args.Name {
				candidates = append(candidates, callable.Name)

				continue
			}

			table, err := NewGenerator(args.Limits).Generate(callable)
			if err != nil {
				return fmt.Errorf("%s: %w", callable.Position, err)
			}

			if err := w.ui.Start(controller.WithExplainMode()); err != nil {
				return err
			}
			defer w.ui.Close()

			return w.ui.DisplayTable(table)
		}
	}

	if len(candidates) == 0 {
		return fmt.Errorf("%s in %s: %w", args.Name, args.Path, ErrCallableNotFound)
	}

	return fmt.Errorf("%s in %s (have %s): %w", args.Name, args.Path, strings.Join(candidates, ", "), ErrCallableNotFound)
}

func (w *workflow) readCallables(source m.Source) ([]m.Callable, error) {
	src, err := w.fs.ReadFile(source.Origin.FullPath)
	if err != nil {
		return nil, err
	}

	fset := token.NewFileSet()

	file, err := w.reader.Parse(fset, string(source.Origin.Path), src)
	if err != nil {
		return nil, err
	}

	return w.reader.ExtractCallables(fset, file)
}
