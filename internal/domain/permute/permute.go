// Package permute enumerates every call shape a parameter list accepts.
//
// The matrix grows factorially in the number of parameters that may be named
// side by side and exponentially in the number of defaulted parameters: two
// defaults give 5 named-default sequences, nine give 986410. Nothing here caps
// or trims that growth; callers that need a ceiling enforce it before calling
// Permute.
package permute

import (
	m "github.com/mouse-blink/defargs/internal/model"
)

// Permute returns the full matrix of call variants for a function-like
// callable. required and defaulted must come from a validated list.
//
// The first variant is always the reference variant: every parameter named,
// in declaration order.
func Permute(required, defaulted []m.Parameter) []m.Variant {
	named := requiredSequences(required)
	defaults := namedDefaultSequences(defaulted)
	positional := positionalDefaultSequences(defaulted)

	// the last required sequence has every required parameter positional
	base := named[len(named)-1]
	for _, s := range base {
		if s.Kind != m.SlotPositional {
			panic("permute: last required sequence must be all positional")
		}
	}

	variants := make([]m.Variant, 0, len(named)*max(len(defaults), 1)+len(positional))

	if len(defaults) == 0 {
		for _, seq := range named {
			variants = append(variants, m.NewVariant(seq))
		}
	} else {
		for _, seq := range named {
			for _, def := range defaults {
				variants = append(variants, m.NewVariant(seq, def))
			}
		}
	}

	for _, seq := range positional {
		variants = append(variants, m.NewVariant(base, seq))
	}

	return variants
}

// requiredSequences fixes the first k required parameters as positional, for
// every k from 0 to len(required), and names the rest in every order.
// The result is never empty.
func requiredSequences(required []m.Parameter) [][]m.Slot {
	var out [][]m.Slot

	for k := 0; k <= len(required); k++ {
		prefix := wrap(required[:k], m.Positional)

		for _, perm := range permutations(required[k:]) {
			out = append(out, concat(prefix, wrap(perm, m.Named)))
		}
	}

	return out
}

// namedDefaultSequences marks every subset of defaults as used (named) and
// the complement as omitted. Used defaults are permuted; omitted ones follow
// in declaration order. Subsets are visited from the full subset down to the
// empty one, so the first sequence names every default in order.
// Zero-length sequences are dropped, which only happens for no defaults.
func namedDefaultSequences(defaults []m.Parameter) [][]m.Slot {
	var out [][]m.Slot

	for mask := (1 << len(defaults)) - 1; mask >= 0; mask-- {
		used, unused := partition(defaults, mask)
		omitted := wrap(unused, m.DefaultOmitted)

		for _, perm := range permutations(used) {
			seq := concat(wrap(perm, m.Named), omitted)
			if len(seq) == 0 {
				continue
			}

			out = append(out, seq)
		}
	}

	return out
}

// positionalDefaultSequences supplies the first p defaults positionally, for
// p from 1 to len(defaults), and runs the remainder through
// namedDefaultSequences. The positional prefix is never permuted.
func positionalDefaultSequences(defaults []m.Parameter) [][]m.Slot {
	var out [][]m.Slot

	for p := 1; p <= len(defaults); p++ {
		prefix := wrap(defaults[:p], m.Positional)

		rest := defaults[p:]
		if len(rest) == 0 {
			out = append(out, prefix)

			continue
		}

		for _, seq := range namedDefaultSequences(rest) {
			out = append(out, concat(prefix, seq))
		}
	}

	return out
}

func partition(defaults []m.Parameter, mask int) (used, unused []m.Parameter) {
	for i, p := range defaults {
		if (mask>>i)&1 != 0 {
			used = append(used, p)
		} else {
			unused = append(unused, p)
		}
	}

	return used, unused
}

func wrap(params []m.Parameter, kind func(m.Parameter) m.Slot) []m.Slot {
	slots := make([]m.Slot, 0, len(params))
	for _, p := range params {
		slots = append(slots, kind(p))
	}

	return slots
}

func concat(a, b []m.Slot) []m.Slot {
	out := make([]m.Slot, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}
