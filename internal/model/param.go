package model

import (
	"errors"
	"fmt"
)

// ErrRequiredAfterDefault reports a required parameter declared after a defaulted one.
var ErrRequiredAfterDefault = errors.New("required parameter follows a defaulted parameter")

// DefaultKind selects how an omitted parameter is filled in.
type DefaultKind int

const (
	// DefaultZero uses the zero value of the parameter type.
	DefaultZero DefaultKind = iota
	// DefaultExpr uses a literal or constant expression.
	DefaultExpr
)

// DefaultValue is the default-producing expression of a defaulted parameter.
type DefaultValue struct {
	Kind DefaultKind
	Expr string // Go expression source, set for DefaultExpr
}

// ZeroDefault returns a DefaultValue using the type's zero value.
func ZeroDefault() *DefaultValue {
	return &DefaultValue{Kind: DefaultZero}
}

// ExprDefault returns a DefaultValue using expr.
func ExprDefault(expr string) *DefaultValue {
	return &DefaultValue{Kind: DefaultExpr, Expr: expr}
}

func (d DefaultValue) String() string {
	if d.Kind == DefaultExpr {
		return d.Expr
	}

	return "zero value"
}

// Parameter is one declared input of a callable.
// Name is the only identity used when matching slots.
type Parameter struct {
	Name    string
	Type    string        // Go type expression source
	Default *DefaultValue // nil for required parameters
}

// HasDefault reports whether the parameter may be omitted.
func (p Parameter) HasDefault() bool {
	return p.Default != nil
}

// Params is an ordered parameter list.
type Params []Parameter

// InvalidParameterError identifies the first required parameter found after a defaulted one.
type InvalidParameterError struct {
	Param Parameter
	Index int
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("parameter %q (#%d): %v", e.Param.Name, e.Index+1, ErrRequiredAfterDefault)
}

// Unwrap allows errors.Is(err, ErrRequiredAfterDefault).
func (e *InvalidParameterError) Unwrap() error {
	return ErrRequiredAfterDefault
}

// FirstInvalid returns the index of the first required parameter that follows
// a defaulted parameter, or -1 if all required parameters come first.
func (ps Params) FirstInvalid() int {
	seenDefault := false

	for i, p := range ps {
		if p.HasDefault() {
			seenDefault = true

			continue
		}

		if seenDefault {
			return i
		}
	}

	return -1
}

// Validate checks that every required parameter precedes every defaulted one.
func (ps Params) Validate() error {
	idx := ps.FirstInvalid()
	if idx < 0 {
		return nil
	}

	return &InvalidParameterError{Param: ps[idx], Index: idx}
}

// Split returns the required prefix and the defaulted suffix.
// The list is assumed to be valid.
func (ps Params) Split() (required, defaulted []Parameter) {
	i := 0
	for i < len(ps) && !ps[i].HasDefault() {
		i++
	}

	return ps[:i:i], ps[i:]
}

// Names returns the parameter names in declaration order.
func (ps Params) Names() []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name)
	}

	return names
}
