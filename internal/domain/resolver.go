package domain

import (
	"fmt"

	m "github.com/mouse-blink/defargs/internal/model"
)

// Reference returns the variant every other variant is reordered against.
// Permutation places it first; an empty matrix is an engine bug.
func Reference(variants []m.Variant) m.Variant {
	if len(variants) == 0 {
		panic("domain: reference variant missing from empty matrix")
	}

	return variants[0]
}

// CanonicalOrder reindexes the slots of variant into the order of reference
// by parameter name. Slots of variant whose parameter does not appear in
// reference are appended in their original order.
func CanonicalOrder(reference, variant m.Variant) []m.Slot {
	byName := make(map[string]int, variant.Len())
	for i, s := range variant.Slots {
		byName[s.Param.Name] = i
	}

	ordered := make([]m.Slot, 0, variant.Len())
	used := make([]bool, variant.Len())

	for _, r := range reference.Slots {
		i, ok := byName[r.Param.Name]
		if !ok {
			panic(fmt.Sprintf("domain: variant %v has no slot for %q", variant, r.Param.Name))
		}

		ordered = append(ordered, variant.Slots[i])
		used[i] = true
	}

	for i, s := range variant.Slots {
		if !used[i] {
			ordered = append(ordered, s)
		}
	}

	return ordered
}
