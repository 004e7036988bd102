package model

// Report represents the result of running the generator over one source file.
type Report struct {
	Source    Source
	Output    Path     // generated file, empty when nothing was generated
	Callables []string // wrapper names emitted for this source
	Variants  int      // total dispatch entries across all callables
	Cached    bool     // true if the output was reused from the cache
	Error     error    // generation error for this source
}

// CallableSummary describes one callable found in a source file, for listing.
type CallableSummary struct {
	Source   Path
	Position string
	Name     string
	Wrapper  string
	Kind     CallableKind
	Required int
	Default  int
	Variants int
}
