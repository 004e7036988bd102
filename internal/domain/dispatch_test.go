package domain

import (
	"testing"

	"github.com/mouse-blink/defargs/internal/domain/permute"
	m "github.com/mouse-blink/defargs/internal/model"
	"github.com/mouse-blink/defargs/pkg/defargs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func complexCallable() m.Callable {
	return m.Callable{
		Name: "complexFunction",
		Kind: m.KindFunction,
		Params: m.Params{
			reqParam("lhs"),
			reqParam("rhs"),
			defParam("add", "true"),
			defParam("divide_result_by", ""),
		},
		Results: []string{"int"},
	}
}

func findEntry(t *testing.T, table m.DispatchTable, args ...defargs.Arg) m.DispatchEntry {
	t.Helper()

	shape := defargs.Shape(args)
	for _, e := range table.Entries {
		if AcceptorKey(e.Acceptor) == shape {
			return e
		}
	}

	t.Fatalf("no entry accepts %q", shape)

	return m.DispatchEntry{}
}

func TestBuildTable_PreservesOrderAndCount(t *testing.T) {
	c := complexCallable()
	required, defaulted := c.Params.Split()
	variants := permute.Permute(required, defaulted)

	table := BuildTable(c, variants)

	require.Len(t, table.Entries, len(variants))

	for i, e := range table.Entries {
		assert.True(t, e.Variant.SameShape(variants[i]))
		assert.Len(t, e.Call, len(c.Params))
	}

	assert.Equal(t, "lhs=,rhs=,add=,divide_result_by=", AcceptorKey(table.Entries[0].Acceptor))
}

func TestBuildTable_RoundTripScenario(t *testing.T) {
	c := complexCallable()
	required, defaulted := c.Params.Split()
	table := BuildTable(c, permute.Permute(required, defaulted))

	t.Run("fully positional", func(t *testing.T) {
		e := findEntry(t, table, defargs.Pos(1), defargs.Pos(2))

		assert.Equal(t, 0, e.Call[0].ArgIndex)
		assert.Equal(t, 1, e.Call[1].ArgIndex)
		assert.False(t, e.Call[2].Supplied())
		assert.Equal(t, "true", e.Call[2].Default.Expr)
		assert.False(t, e.Call[3].Supplied())
		assert.Equal(t, m.DefaultZero, e.Call[3].Default.Kind)
	})

	t.Run("fully positional with overrides", func(t *testing.T) {
		e := findEntry(t, table, defargs.Pos(1), defargs.Pos(2), defargs.Pos(true), defargs.Pos(nil))

		for i, arg := range e.Call {
			assert.Equal(t, i, arg.ArgIndex)
		}
	})

	t.Run("fully named out of order", func(t *testing.T) {
		e := findEntry(t, table,
			defargs.Named("rhs", 2),
			defargs.Named("lhs", 1),
			defargs.Named("divide_result_by", nil),
			defargs.Named("add", false),
		)

		assert.Equal(t, []int{1, 0, 3, 2}, []int{e.Call[0].ArgIndex, e.Call[1].ArgIndex, e.Call[2].ArgIndex, e.Call[3].ArgIndex})
		assert.Equal(t, []string{"lhs", "rhs", "add", "divide_result_by"},
			[]string{e.Call[0].Param.Name, e.Call[1].Param.Name, e.Call[2].Param.Name, e.Call[3].Param.Name})
	})
}

func TestBuildTable_RestMarker(t *testing.T) {
	c := m.Callable{
		Name:   "Point",
		Kind:   m.KindNamedAggregate,
		Params: m.Params{reqParam("X"), defParam("Y", "")},
	}
	required, defaulted := c.Params.Split()
	table := BuildTable(c, permute.ForKind(c.Kind, required, defaulted))

	e := findEntry(t, table, defargs.Named("X", 1), defargs.Rest())
	assert.Equal(t, m.TokenRest, e.Acceptor[len(e.Acceptor)-1].Kind)

	full := findEntry(t, table, defargs.Named("X", 1), defargs.Named("Y", 2))
	assert.NotEqual(t, m.TokenRest, full.Acceptor[len(full.Acceptor)-1].Kind)
}

func TestBuildTable_DuplicateAcceptorPanics(t *testing.T) {
	v := m.NewVariant([]m.Slot{m.Positional(reqParam("a"))})

	assert.Panics(t, func() {
		BuildTable(m.Callable{Name: "f"}, []m.Variant{v, v})
	})
}

func TestBuildTable_OmittedRequiredPanics(t *testing.T) {
	ref := m.NewVariant([]m.Slot{m.Named(reqParam("a"))})
	bad := m.NewVariant([]m.Slot{m.DefaultOmitted(reqParam("a"))})

	assert.Panics(t, func() {
		BuildTable(m.Callable{Name: "f"}, []m.Variant{ref, bad})
	})
}

func TestAcceptorKey(t *testing.T) {
	key := AcceptorKey([]m.AcceptorToken{
		{Kind: m.TokenPositional, Name: "a"},
		{Kind: m.TokenNamed, Name: "b"},
		{Kind: m.TokenRest},
	})

	assert.Equal(t, "_,b=,..", key)
}
