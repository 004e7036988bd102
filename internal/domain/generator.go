package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/mouse-blink/defargs/internal/domain/permute"
	m "github.com/mouse-blink/defargs/internal/model"
)

// ErrTooManyParameters is returned when a callable exceeds the configured ceiling.
var ErrTooManyParameters = errors.New("too many parameters")

// Limits caps the parameter counts and the matrix size the generator accepts.
// A negative value disables the corresponding check.
type Limits struct {
	MaxRequired  int
	MaxDefaulted int
	// MaxVariants bounds the number of variants, and so the case arms of the
	// generated wrapper.
	MaxVariants int
}

// DefaultLimits returns the ceiling used when none is configured.
func DefaultLimits() Limits {
	return Limits{MaxRequired: 8, MaxDefaulted: 9, MaxVariants: 10000}
}

// Generator defines the interface for building dispatch tables.
type Generator interface {
	Variants(callable m.Callable) ([]m.Variant, error)
	Generate(callable m.Callable) (m.DispatchTable, error)
	Summarize(callable m.Callable) m.CallableSummary
}

// generator handles pure dispatch table generation logic.
type generator struct {
	limits Limits
}

// NewGenerator creates a new Generator instance.
func NewGenerator(limits Limits) Generator {
	return &generator{limits: limits}
}

// Variants validates callable and returns its ordered variant matrix.
func (g *generator) Variants(callable m.Callable) ([]m.Variant, error) {
	if err := callable.Params.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", callable.Name, err)
	}

	required, defaulted := callable.Params.Split()

	if err := g.checkLimits(callable, len(required), len(defaulted)); err != nil {
		return nil, err
	}

	return permute.ForKind(callable.Kind, required, defaulted), nil
}

// Generate validates callable and builds its dispatch table. No partial table
// is returned on error.
func (g *generator) Generate(callable m.Callable) (m.DispatchTable, error) {
	variants, err := g.Variants(callable)
	if err != nil {
		return m.DispatchTable{}, err
	}

	return BuildTable(callable, variants), nil
}

// Summarize reports parameter and variant counts without building the matrix.
func (g *generator) Summarize(callable m.Callable) m.CallableSummary {
	summary := m.CallableSummary{
		Position: callable.Position,
		Name:     callable.Name,
		Wrapper:  callable.Wrapper,
		Kind:     callable.Kind,
	}

	if callable.Params.Validate() != nil {
		summary.Variants = -1

		return summary
	}

	required, defaulted := callable.Params.Split()
	summary.Required = len(required)
	summary.Default = len(defaulted)
	summary.Variants = permute.Count(callable.Kind, len(required), len(defaulted))

	return summary
}

func (g *generator) checkLimits(callable m.Callable, required, defaulted int) error {
	if g.limits.MaxRequired >= 0 && required > g.limits.MaxRequired {
		return fmt.Errorf("%s: %d required parameters, limit is %d: %w",
			callable.Name, required, g.limits.MaxRequired, ErrTooManyParameters)
	}

	if g.limits.MaxDefaulted >= 0 && defaulted > g.limits.MaxDefaulted {
		return fmt.Errorf("%s: %d defaulted parameters, limit is %d: %w",
			callable.Name, defaulted, g.limits.MaxDefaulted, ErrTooManyParameters)
	}

	if g.limits.MaxVariants >= 0 {
		if n := permute.Count(callable.Kind, required, defaulted); n > g.limits.MaxVariants {
			return fmt.Errorf("%s: %d required and %d defaulted parameters give %s variants, limit is %d: %w",
				callable.Name, required, defaulted, variantCount(n), g.limits.MaxVariants, ErrTooManyParameters)
		}
	}

	return nil
}

func variantCount(n int) string {
	if n == math.MaxInt {
		return "too many"
	}

	return strconv.Itoa(n)
}
