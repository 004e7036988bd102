// Package defargs is the runtime support imported by code that the defargs
// generator emits.
//
// A generated wrapper takes a variadic list of Arg values built with Pos,
// Named and Rest:
//
//	sum, err := calc.ComplexFunctionArgs(
//		defargs.Pos(10),
//		defargs.Pos(20),
//		defargs.Named("divideResultBy", ptr(2)),
//	)
//
// The wrapper computes the Shape of its arguments, selects the dispatch entry
// with the same shape, extracts typed values with Bind and calls the
// original function with every argument in declaration order, substituting
// defaults for the omitted ones. A call whose shape matches no entry returns
// an error wrapping ErrNoMatch.
package defargs
