package permute

import (
	m "github.com/mouse-blink/defargs/internal/model"
)

// PermuteTuple returns the variants of a positional-only aggregate: every
// required field positional, then for each p from 0 to len(defaulted) the
// first p defaulted fields positional and the rest omitted. Variants are
// ordered by increasing p and nothing is permuted.
func PermuteTuple(required, defaulted []m.Parameter) []m.Variant {
	base := wrap(required, m.Positional)
	variants := make([]m.Variant, 0, len(defaulted)+1)

	for p := 0; p <= len(defaulted); p++ {
		variants = append(variants, m.NewVariant(
			base,
			wrap(defaulted[:p], m.Positional),
			wrap(defaulted[p:], m.DefaultOmitted),
		))
	}

	return variants
}

// WithRest sets the rest marker on every variant that omits at least one
// field. It is used for named aggregates, whose literals may leave the
// remaining fields to their defaults.
func WithRest(variants []m.Variant) []m.Variant {
	for i := range variants {
		variants[i].Rest = variants[i].HasOmitted()
	}

	return variants
}

// ForKind dispatches to the family that matches the callable kind.
func ForKind(kind m.CallableKind, required, defaulted []m.Parameter) []m.Variant {
	switch kind {
	case m.KindFunction:
		return Permute(required, defaulted)
	case m.KindNamedAggregate:
		return WithRest(Permute(required, defaulted))
	case m.KindTupleAggregate:
		return PermuteTuple(required, defaulted)
	default:
		panic("permute: unknown callable kind " + kind.String())
	}
}
