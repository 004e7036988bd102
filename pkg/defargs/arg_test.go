package defargs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	assert.Equal(t, "", Shape(nil))
	assert.Equal(t, "_,_", Shape([]Arg{Pos(1), Pos(2)}))
	assert.Equal(t, "_,b=,..", Shape([]Arg{Pos(1), Named("b", 2), Rest()}))
}

func TestArgPredicates(t *testing.T) {
	assert.True(t, Rest().IsRest())
	assert.False(t, Rest().IsNamed())
	assert.True(t, Named("x", 1).IsNamed())
	assert.False(t, Pos(1).IsNamed())
}

func TestBind(t *testing.T) {
	var target *int

	args := []Arg{Pos(3), Named("f", 2), Pos(nil), Pos("text"), Pos(nil)}
	b := NewBinder("f", args)

	assert.Equal(t, 3, Bind[int](b, 0))
	assert.Equal(t, 2.0, Bind[float64](b, 1))
	assert.Equal(t, target, Bind[*int](b, 2))
	assert.Equal(t, "text", Bind[string](b, 3))
	assert.Nil(t, Bind[error](b, 4))
	require.NoError(t, b.Err())
}

func TestBind_NamedStringType(t *testing.T) {
	type label string

	b := NewBinder("f", []Arg{Pos("x")})

	assert.Equal(t, label("x"), Bind[label](b, 0))
	assert.NoError(t, b.Err())
}

func TestBind_Failure(t *testing.T) {
	b := NewBinder("calc", []Arg{Named("add", "yes"), Pos(nil)})

	assert.False(t, Bind[bool](b, 0))
	assert.Zero(t, Bind[int](b, 1))

	var bindErr *BindError
	require.ErrorAs(t, b.Err(), &bindErr)
	assert.Equal(t, "add", bindErr.Name)
	assert.Equal(t, "bool", bindErr.Want)
	assert.Equal(t, "string", bindErr.Got)
	assert.Equal(t, "calc: argument add: cannot use string as bool", bindErr.Error())
}

func TestBind_NoStringNumberConversion(t *testing.T) {
	b := NewBinder("f", []Arg{Pos(65)})

	assert.Equal(t, "", Bind[string](b, 0))
	assert.Error(t, b.Err())
}

func TestBind_LosslessNumbers(t *testing.T) {
	b := NewBinder("f", []Arg{Pos(2.0), Pos(int64(200)), Pos(uint(7)), Pos(3), Pos(1.5), Pos(2.7)})

	assert.Equal(t, 2, Bind[int](b, 0))
	assert.Equal(t, uint8(200), Bind[uint8](b, 1))
	assert.Equal(t, int8(7), Bind[int8](b, 2))
	assert.Equal(t, float32(3), Bind[float32](b, 3))
	assert.Equal(t, float32(1.5), Bind[float32](b, 4))
	assert.InDelta(t, 2.7, float64(Bind[float32](b, 5)), 1e-6)
	require.NoError(t, b.Err())
}

func TestBind_LossyNumbers(t *testing.T) {
	type celsius int8

	tests := []struct {
		name string
		bind func(b *Binder) any
		arg  any
		want string
		got  string
	}{
		{name: "fraction to int", arg: 2.7, bind: func(b *Binder) any { return Bind[int](b, 0) }, want: "int", got: "float64 value 2.7"},
		{name: "overflow uint8", arg: 300, bind: func(b *Binder) any { return Bind[uint8](b, 0) }, want: "uint8", got: "int value 300"},
		{name: "negative to uint", arg: -1, bind: func(b *Binder) any { return Bind[uint](b, 0) }, want: "uint", got: "int value -1"},
		{name: "large uint to int64", arg: uint64(1) << 63, bind: func(b *Binder) any { return Bind[int64](b, 0) }, want: "int64", got: "uint64 value 9223372036854775808"},
		{name: "huge float to int", arg: 1e30, bind: func(b *Binder) any { return Bind[int64](b, 0) }, want: "int64", got: "float64 value 1e+30"},
		{name: "overflow float32", arg: 1e300, bind: func(b *Binder) any { return Bind[float32](b, 0) }, want: "float32", got: "float64 value 1e+300"},
		{name: "imprecise int to float64", arg: int64(1)<<53 + 1, bind: func(b *Binder) any { return Bind[float64](b, 0) }, want: "float64", got: "int64 value 9007199254740993"},
		{name: "named type overflow", arg: 200, bind: func(b *Binder) any { return Bind[celsius](b, 0) }, want: "defargs.celsius", got: "int value 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBinder("f", []Arg{Pos(tt.arg)})

			assert.Zero(t, tt.bind(b))

			var bindErr *BindError
			require.ErrorAs(t, b.Err(), &bindErr)
			assert.Equal(t, tt.want, bindErr.Want)
			assert.Equal(t, tt.got, bindErr.Got)
		})
	}
}

func TestNoMatch(t *testing.T) {
	err := NoMatch("calc", []Arg{Pos(1), Named("z", 2)})

	assert.True(t, errors.Is(err, ErrNoMatch))
	assert.Equal(t, "calc(_,z=): no call pattern matches the arguments", err.Error())
}
