package model

import "strings"

// SlotKind is the role a parameter plays within one call variant.
type SlotKind int

const (
	// SlotPositional is a value supplied by position, without a name.
	SlotPositional SlotKind = iota
	// SlotNamed is a value supplied as name = value.
	SlotNamed
	// SlotDefaultOmitted is a value left out by the caller and filled from the default.
	SlotDefaultOmitted
)

func (k SlotKind) String() string {
	switch k {
	case SlotPositional:
		return "positional"
	case SlotNamed:
		return "named"
	case SlotDefaultOmitted:
		return "default"
	default:
		return "unknown"
	}
}

// Slot is a single parameter's role within a call variant.
type Slot struct {
	Kind  SlotKind
	Param Parameter
}

// Positional wraps p as a positional slot.
func Positional(p Parameter) Slot { return Slot{Kind: SlotPositional, Param: p} }

// Named wraps p as a named slot.
func Named(p Parameter) Slot { return Slot{Kind: SlotNamed, Param: p} }

// DefaultOmitted wraps p as an omitted slot.
func DefaultOmitted(p Parameter) Slot { return Slot{Kind: SlotDefaultOmitted, Param: p} }

// Variant is one fully slot-typed shape of an acceptable call.
type Variant struct {
	Slots []Slot
	// Rest marks a named-aggregate variant whose acceptor ends with the rest marker.
	Rest bool
}

// NewVariant builds a variant from slot sequences, concatenated in order.
func NewVariant(parts ...[]Slot) Variant {
	n := 0
	for _, p := range parts {
		n += len(p)
	}

	slots := make([]Slot, 0, n)
	for _, p := range parts {
		slots = append(slots, p...)
	}

	return Variant{Slots: slots}
}

// Len returns the number of slots.
func (v Variant) Len() int {
	return len(v.Slots)
}

// HasOmitted reports whether any slot takes its default.
func (v Variant) HasOmitted() bool {
	for _, s := range v.Slots {
		if s.Kind == SlotDefaultOmitted {
			return true
		}
	}

	return false
}

// Index returns the position of the slot for the named parameter, or -1.
func (v Variant) Index(name string) int {
	for i, s := range v.Slots {
		if s.Param.Name == name {
			return i
		}
	}

	return -1
}

// SameShape reports whether both variants have the same ordered slot kinds,
// parameter names and rest marker.
func (v Variant) SameShape(o Variant) bool {
	if len(v.Slots) != len(o.Slots) || v.Rest != o.Rest {
		return false
	}

	for i := range v.Slots {
		if v.Slots[i].Kind != o.Slots[i].Kind || v.Slots[i].Param.Name != o.Slots[i].Param.Name {
			return false
		}
	}

	return true
}

// String renders the variant in call syntax, e.g. "(_, b=, c?)".
func (v Variant) String() string {
	parts := make([]string, 0, len(v.Slots)+1)

	for _, s := range v.Slots {
		switch s.Kind {
		case SlotPositional:
			parts = append(parts, s.Param.Name)
		case SlotNamed:
			parts = append(parts, s.Param.Name+"=")
		case SlotDefaultOmitted:
			parts = append(parts, s.Param.Name+"?")
		}
	}

	if v.Rest {
		parts = append(parts, "..")
	}

	return "(" + strings.Join(parts, ", ") + ")"
}
