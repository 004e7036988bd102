package permute

import (
	"fmt"
	"math"
	"testing"

	m "github.com/mouse-blink/defargs/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func required(names ...string) []m.Parameter {
	params := make([]m.Parameter, 0, len(names))
	for _, n := range names {
		params = append(params, m.Parameter{Name: n, Type: "int"})
	}

	return params
}

func defaulted(names ...string) []m.Parameter {
	params := make([]m.Parameter, 0, len(names))
	for _, n := range names {
		params = append(params, m.Parameter{Name: n, Type: "int", Default: m.ZeroDefault()})
	}

	return params
}

func kinds(v m.Variant) []m.SlotKind {
	out := make([]m.SlotKind, 0, v.Len())
	for _, s := range v.Slots {
		out = append(out, s.Kind)
	}

	return out
}

func TestPermutations_LexicographicIdentityFirst(t *testing.T) {
	perms := permutations([]string{"a", "b", "c"})

	require.Len(t, perms, 6)
	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"a", "c", "b"},
		{"b", "a", "c"},
		{"b", "c", "a"},
		{"c", "a", "b"},
		{"c", "b", "a"},
	}, perms)

	empty := permutations([]string{})
	require.Len(t, empty, 1)
	assert.Empty(t, empty[0])
}

func TestRequiredSequences_NamedOnly(t *testing.T) {
	seqs := requiredSequences(required("a", "b", "c", "d"))

	// k=0: 24, k=1: 6, k=2: 2, k=3: 1, k=4: 1
	assert.Len(t, seqs, 34)

	last := seqs[len(seqs)-1]
	for _, s := range last {
		assert.Equal(t, m.SlotPositional, s.Kind)
	}
}

func TestNamedDefaultSequences(t *testing.T) {
	seqs := namedDefaultSequences(defaulted("a", "b"))

	// {a,b} twice (both orders), {a}, {b}, {}
	require.Len(t, seqs, 5)

	assert.Equal(t, []m.SlotKind{m.SlotNamed, m.SlotNamed}, kindsOf(seqs[0]))
	assert.Equal(t, "a", seqs[0][0].Param.Name)
	assert.Equal(t, "b", seqs[0][1].Param.Name)

	// the all-omitted sequence is kept, in declaration order
	lastSeq := seqs[len(seqs)-1]
	assert.Equal(t, []m.SlotKind{m.SlotDefaultOmitted, m.SlotDefaultOmitted}, kindsOf(lastSeq))
	assert.Equal(t, "a", lastSeq[0].Param.Name)

	assert.Empty(t, namedDefaultSequences(nil))
}

func TestNamedDefaultSequences_OmittedFollowUsedInDeclarationOrder(t *testing.T) {
	for _, seq := range namedDefaultSequences(defaulted("a", "b", "c")) {
		var omitted []string

		seenOmitted := false

		for _, s := range seq {
			if s.Kind == m.SlotDefaultOmitted {
				seenOmitted = true

				omitted = append(omitted, s.Param.Name)

				continue
			}

			assert.False(t, seenOmitted, "named slot after omitted slot in %v", seq)
		}

		assert.IsNonDecreasing(t, omitted)
	}
}

func TestPositionalDefaultSequences(t *testing.T) {
	assert.Len(t, positionalDefaultSequences(defaulted("a", "b", "c")), 8)
	assert.Len(t, positionalDefaultSequences(defaulted("a", "b")), 3)
	assert.Empty(t, positionalDefaultSequences(nil))

	for _, seq := range positionalDefaultSequences(defaulted("a", "b", "c")) {
		assert.Equal(t, m.SlotPositional, seq[0].Kind)
		assert.Equal(t, "a", seq[0].Param.Name)
	}
}

func TestPermute_Counts(t *testing.T) {
	tests := []struct {
		required  []m.Parameter
		defaulted []m.Parameter
		want      int
	}{
		{nil, nil, 1},
		{required("a"), nil, 2},
		{required("a", "b", "c", "d"), nil, 34},
		{nil, defaulted("a", "b"), 5 + 3},
		{required("a", "b", "c", "d"), defaulted("e", "f"), 34*5 + 3},
		{required("lhs", "rhs"), defaulted("add", "divide_result_by"), 4*5 + 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d", len(tt.required), len(tt.defaulted)), func(t *testing.T) {
			assert.Len(t, Permute(tt.required, tt.defaulted), tt.want)
		})
	}
}

func TestPermute_ReferenceFirst(t *testing.T) {
	cases := [][2][]m.Parameter{
		{required("a"), nil},
		{nil, defaulted("x", "y")},
		{required("a", "b", "c"), defaulted("x", "y")},
	}

	for _, c := range cases {
		variants := Permute(c[0], c[1])
		require.NotEmpty(t, variants)

		ref := variants[0]
		all := append(append([]m.Parameter{}, c[0]...), c[1]...)
		require.Equal(t, len(all), ref.Len())

		for i, s := range ref.Slots {
			assert.Equal(t, m.SlotNamed, s.Kind)
			assert.Equal(t, all[i].Name, s.Param.Name)
		}
	}
}

func TestPermute_EmptyList(t *testing.T) {
	variants := Permute(nil, nil)

	require.Len(t, variants, 1)
	assert.Zero(t, variants[0].Len())
}

func TestPermute_VariantsSpanListAndAreDistinct(t *testing.T) {
	req, def := required("a", "b", "c"), defaulted("d", "e", "f")
	variants := Permute(req, def)

	seen := make(map[string]struct{}, len(variants))

	for _, v := range variants {
		assert.Equal(t, len(req)+len(def), v.Len())

		for _, p := range append(append([]m.Parameter{}, req...), def...) {
			assert.GreaterOrEqual(t, v.Index(p.Name), 0, "%s missing from %v", p.Name, v)
		}

		for _, s := range v.Slots {
			if !s.Param.HasDefault() {
				assert.NotEqual(t, m.SlotDefaultOmitted, s.Kind, "required parameter omitted in %v", v)
			}
		}

		key := v.String()
		_, dup := seen[key]
		assert.False(t, dup, "duplicate variant %s", key)
		seen[key] = struct{}{}
	}
}

func TestPermute_PositionalPrefixStaysInOrder(t *testing.T) {
	for _, v := range Permute(required("a", "b", "c"), defaulted("d", "e")) {
		pos := 0
		for pos < v.Len() && v.Slots[pos].Kind == m.SlotPositional {
			pos++
		}

		for i := 0; i < pos; i++ {
			assert.Equal(t, []string{"a", "b", "c", "d", "e"}[i], v.Slots[i].Param.Name)
		}

		for _, s := range v.Slots[pos:] {
			assert.NotEqual(t, m.SlotPositional, s.Kind, "positional after named in %v", v)
		}
	}
}

func TestPermute_Deterministic(t *testing.T) {
	req, def := required("a", "b", "c"), defaulted("d", "e")

	first := Permute(req, def)
	second := Permute(req, def)

	require.Equal(t, len(first), len(second))

	for i := range first {
		assert.True(t, first[i].SameShape(second[i]), "variant %d differs", i)
	}
}

func TestPermute_RoundTripScenario(t *testing.T) {
	variants := Permute(required("lhs", "rhs"), defaulted("add", "divide_result_by"))

	want := []string{
		"(lhs, rhs, add?, divide_result_by?)",
		"(lhs, rhs, add, divide_result_by)",
		"(rhs=, lhs=, divide_result_by=, add=)",
		"(lhs=, rhs=, add=, divide_result_by=)",
		"(lhs, rhs, divide_result_by=, add?)",
	}

	got := make(map[string]bool, len(variants))
	for _, v := range variants {
		got[v.String()] = true
	}

	for _, w := range want {
		assert.True(t, got[w], "missing variant %s", w)
	}
}

func TestPermuteTuple(t *testing.T) {
	variants := PermuteTuple(required("a"), defaulted("b", "c"))

	require.Len(t, variants, 3)
	assert.Equal(t, []m.SlotKind{m.SlotPositional, m.SlotDefaultOmitted, m.SlotDefaultOmitted}, kinds(variants[0]))
	assert.Equal(t, []m.SlotKind{m.SlotPositional, m.SlotPositional, m.SlotDefaultOmitted}, kinds(variants[1]))
	assert.Equal(t, []m.SlotKind{m.SlotPositional, m.SlotPositional, m.SlotPositional}, kinds(variants[2]))

	for _, v := range variants {
		assert.False(t, v.Rest)
	}
}

func TestWithRest(t *testing.T) {
	variants := ForKind(m.KindNamedAggregate, required("a"), defaulted("b"))

	require.NotEmpty(t, variants)

	for _, v := range variants {
		assert.Equal(t, v.HasOmitted(), v.Rest, "rest marker mismatch for %v", v)
	}

	assert.False(t, variants[0].Rest, "reference variant names every field")
}

func TestForKind_UnknownPanics(t *testing.T) {
	assert.Panics(t, func() { ForKind(m.CallableKind(42), nil, nil) })
}

func TestCount_MatchesPermute(t *testing.T) {
	for n := 0; n <= 4; n++ {
		for k := 0; k <= 4; k++ {
			req := required(names("r", n)...)
			def := defaulted(names("d", k)...)

			for _, kind := range []m.CallableKind{m.KindFunction, m.KindNamedAggregate, m.KindTupleAggregate} {
				assert.Equal(t, len(ForKind(kind, req, def)), Count(kind, n, k), "kind=%s n=%d k=%d", kind, n, k)
			}
		}
	}

	assert.Equal(t, 173, Count(m.KindFunction, 4, 2))
	assert.Equal(t, 986410, namedDefaultCount(9))
}

func TestCount_Large(t *testing.T) {
	assert.Equal(t, 46234*986410+Count(m.KindFunction, 0, 9)-986410, Count(m.KindFunction, 8, 9))
	assert.Equal(t, math.MaxInt, Count(m.KindFunction, 30, 30))
	assert.Equal(t, math.MaxInt, Count(m.KindNamedAggregate, 0, 40))
	assert.Equal(t, 41, Count(m.KindTupleAggregate, 0, 40))
}

func names(prefix string, n int) []string {
	out := make([]string, 0, n)
	for i := range n {
		out = append(out, fmt.Sprintf("%s%d", prefix, i))
	}

	return out
}

func kindsOf(seq []m.Slot) []m.SlotKind {
	return kinds(m.Variant{Slots: seq})
}
