package permute

import (
	"math"

	m "github.com/mouse-blink/defargs/internal/model"
)

// Count returns len(ForKind(kind, required, defaulted)) for n required and
// k defaulted parameters without building the matrix. Results too large for
// an int saturate at math.MaxInt.
func Count(kind m.CallableKind, n, k int) int {
	if kind == m.KindTupleAggregate {
		return k + 1
	}

	named := 0
	for j := 0; j <= n; j++ {
		named = add(named, factorial(j))
	}

	defaults := namedDefaultCount(k)

	positional := 0
	for p := 1; p <= k; p++ {
		if rest := namedDefaultCount(k - p); rest > 0 {
			positional = add(positional, rest)
		} else {
			positional++
		}
	}

	if defaults == 0 {
		return add(named, positional)
	}

	return add(mul(named, defaults), positional)
}

// namedDefaultCount is the number of sequences namedDefaultSequences yields
// for k defaults: the sum over subset sizes s of C(k, s) * s!.
func namedDefaultCount(k int) int {
	if k == 0 {
		return 0
	}

	total := 0
	for s := 0; s <= k; s++ {
		total = add(total, mul(binomial(k, s), factorial(s)))
	}

	return total
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f = mul(f, i)
	}

	return f
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}

	k = min(k, n-k)

	r := 1
	for i := 1; i <= k; i++ {
		if r > math.MaxInt/(n-k+i) {
			return math.MaxInt
		}

		r = r * (n - k + i) / i
	}

	return r
}

func add(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}

func mul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}

	return a * b
}
