package model

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// CallableKind is the closed set of declaration shapes the generator handles.
type CallableKind int

const (
	// KindFunction is a package-level function.
	KindFunction CallableKind = iota
	// KindNamedAggregate is a struct built with a keyed composite literal.
	KindNamedAggregate
	// KindTupleAggregate is a struct built with an unkeyed, positional-only literal.
	KindTupleAggregate
)

func (k CallableKind) String() string {
	switch k {
	case KindFunction:
		return "func"
	case KindNamedAggregate:
		return "struct"
	case KindTupleAggregate:
		return "tuple"
	default:
		return "unknown"
	}
}

// Callable is one declaration the generator builds a dispatch layer for.
type Callable struct {
	Name    string
	Kind    CallableKind
	Params  Params
	Results []string // result type expressions, functions only
	Wrapper string   // name of the generated wrapper
	Doc     string
	Package string
	// Position is the file:line of the declaration.
	Position string
	// Imports maps import names used by parameter types, results and
	// default expressions to their import paths.
	Imports map[string]string
}

// Exported reports whether the callable can be referenced from another package.
func (c Callable) Exported() bool {
	r, _ := utf8.DecodeRuneInString(c.Name)

	return unicode.IsUpper(r)
}

func (c Callable) String() string {
	return fmt.Sprintf("%s %s", c.Kind, c.Name)
}
