package defargs

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// ErrNoMatch is wrapped by every dispatch miss.
var ErrNoMatch = errors.New("no call pattern matches the arguments")

// NoMatchError reports a call whose shape matches no dispatch entry.
type NoMatchError struct {
	Callable string
	Shape    string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("%s(%s): %v", e.Callable, e.Shape, ErrNoMatch)
}

// Unwrap allows errors.Is(err, ErrNoMatch).
func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

// NoMatch builds the terminal fallback error of a generated wrapper.
func NoMatch(callable string, args []Arg) error {
	return &NoMatchError{Callable: callable, Shape: Shape(args)}
}

// BindError reports an argument whose value cannot be used as the parameter type.
type BindError struct {
	Callable string
	Index    int
	Name     string
	Want     string
	Got      string
}

func (e *BindError) Error() string {
	name := e.Name
	if name == "" {
		name = fmt.Sprintf("#%d", e.Index+1)
	}

	return fmt.Sprintf("%s: argument %s: cannot use %s as %s", e.Callable, name, e.Got, e.Want)
}

// Binder extracts typed values from wrapper arguments and keeps the first failure.
type Binder struct {
	callable string
	args     []Arg
	err      error
}

// NewBinder returns a Binder over args for the named callable.
func NewBinder(callable string, args []Arg) *Binder {
	return &Binder{callable: callable, args: args}
}

// Err returns the first binding failure, if any.
func (b *Binder) Err() error {
	return b.err
}

func (b *Binder) fail(i int, want reflect.Type, got any) {
	gotType := "nil"
	if got != nil {
		gotType = reflect.TypeOf(got).String()
	}

	b.failWith(i, want, gotType)
}

func (b *Binder) failWith(i int, want reflect.Type, got string) {
	if b.err != nil {
		return
	}

	b.err = &BindError{
		Callable: b.callable,
		Index:    i,
		Name:     b.args[i].Name,
		Want:     want.String(),
		Got:      got,
	}
}

// Bind returns argument i as a T. Values of a different numeric or string
// type are converted; nil is accepted for types whose zero value is nil.
// Numeric conversions must not truncate, wrap or overflow: 2.0 binds to an
// int but 2.7 does not. Float precision narrowing (float64 to float32) is allowed.
// On failure the zero T is returned and the error is recorded on b.
func Bind[T any](b *Binder, i int) T {
	var zero T

	want := reflect.TypeFor[T]()
	value := b.args[i].Value

	if v, ok := value.(T); ok {
		return v
	}

	if value == nil {
		if nilable(want.Kind()) {
			return zero
		}

		b.fail(i, want, value)

		return zero
	}

	rv := reflect.ValueOf(value)
	if convertible(rv.Type(), want) {
		if numeric(want.Kind()) && !lossless(rv, want) {
			b.failWith(i, want, fmt.Sprintf("%s value %v", rv.Type(), value))

			return zero
		}

		return rv.Convert(want).Interface().(T)
	}

	b.fail(i, want, value)

	return zero
}

func nilable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	switch {
	case numeric(from.Kind()) && numeric(to.Kind()):
		return true
	case from.Kind() == reflect.String && to.Kind() == reflect.String:
		return true
	default:
		return false
	}
}

func numeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func signed(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func unsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// lossless reports whether the numeric rv converts to want and back unchanged.
func lossless(rv reflect.Value, want reflect.Type) bool {
	target := reflect.New(want).Elem()

	switch {
	case signed(want.Kind()):
		i, ok := asInt(rv)

		return ok && !target.OverflowInt(i)
	case unsigned(want.Kind()):
		u, ok := asUint(rv)

		return ok && !target.OverflowUint(u)
	}

	switch {
	case signed(rv.Kind()):
		back, ok := asInt(reflect.ValueOf(rv.Convert(want).Float()))

		return ok && back == rv.Int()
	case unsigned(rv.Kind()):
		back, ok := asUint(reflect.ValueOf(rv.Convert(want).Float()))

		return ok && back == rv.Uint()
	default:
		f := rv.Float()

		return math.IsNaN(f) || math.IsInf(f, 0) || !target.OverflowFloat(f)
	}
}

// asInt returns rv as an int64 if it holds an integral value in range.
func asInt(rv reflect.Value) (int64, bool) {
	switch {
	case signed(rv.Kind()):
		return rv.Int(), true
	case unsigned(rv.Kind()):
		u := rv.Uint()

		return int64(u), u <= math.MaxInt64
	default:
		f := rv.Float()
		if f != math.Trunc(f) || f < -0x1p63 || f >= 0x1p63 {
			return 0, false
		}

		return int64(f), true
	}
}

// asUint returns rv as a uint64 if it holds a non-negative integral value in range.
func asUint(rv reflect.Value) (uint64, bool) {
	switch {
	case signed(rv.Kind()):
		i := rv.Int()

		return uint64(i), i >= 0
	case unsigned(rv.Kind()):
		return rv.Uint(), true
	default:
		f := rv.Float()
		if f != math.Trunc(f) || f < 0 || f >= 0x1p64 {
			return 0, false
		}

		return uint64(f), true
	}
}
