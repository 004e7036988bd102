package defargs

import "strings"

const (
	positionalToken = "_"
	restToken       = ".."
	namedSuffix     = "="
	tokenSeparator  = ","
)

// Arg is one argument passed to a generated wrapper.
type Arg struct {
	Name  string
	Value any
	rest  bool
}

// Pos supplies v by position.
func Pos(v any) Arg {
	return Arg{Value: v}
}

// Named supplies v for the parameter or field called name.
func Named(name string, v any) Arg {
	return Arg{Name: name, Value: v}
}

// Rest marks that every field not mentioned takes its default.
// It must be the last argument of a struct constructor call.
func Rest() Arg {
	return Arg{rest: true}
}

// IsRest reports whether a is the rest marker.
func (a Arg) IsRest() bool {
	return a.rest
}

// IsNamed reports whether a was supplied by name.
func (a Arg) IsNamed() bool {
	return !a.rest && a.Name != ""
}

func (a Arg) token() string {
	switch {
	case a.rest:
		return restToken
	case a.Name != "":
		return a.Name + namedSuffix
	default:
		return positionalToken
	}
}

// Shape returns the key of the call syntax args represents: "_" for each
// positional argument, "name=" for each named one and ".." for the rest
// marker, joined by commas.
func Shape(args []Arg) string {
	tokens := make([]string, 0, len(args))
	for _, a := range args {
		tokens = append(tokens, a.token())
	}

	return strings.Join(tokens, tokenSeparator)
}
