package model

// TokenKind identifies one element of an acceptor pattern.
type TokenKind int

const (
	// TokenPositional accepts an unnamed argument.
	TokenPositional TokenKind = iota
	// TokenNamed accepts name = value.
	TokenNamed
	// TokenRest accepts the trailing rest marker.
	TokenRest
)

// AcceptorToken is one element of the call syntax a dispatch entry matches.
type AcceptorToken struct {
	Kind TokenKind
	Name string // parameter name, empty for TokenRest
}

// CallArg is one argument of the canonical call.
// Exactly one of Default or ArgIndex >= 0 applies.
type CallArg struct {
	Param    Parameter
	ArgIndex int           // index of the caller argument, -1 when defaulted
	Default  *DefaultValue // set when the caller omitted the argument
}

// Supplied reports whether the argument comes from the caller.
func (a CallArg) Supplied() bool {
	return a.ArgIndex >= 0
}

// DispatchEntry pairs an acceptor pattern with its canonical call.
type DispatchEntry struct {
	// Key is the shape key of Acceptor, compared against the caller's
	// arguments at run time.
	Key      string
	Acceptor []AcceptorToken
	Call     []CallArg
	Variant  Variant
}

// DispatchTable is the ordered list of entries for one callable.
// Entries are tried in order; anything unmatched falls through to the
// terminal no-match fallback.
type DispatchTable struct {
	Callable Callable
	Entries  []DispatchEntry
}
