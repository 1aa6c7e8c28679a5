package domain

// Query describes one annotation lookup.
type Query struct {
	Annotation Annotation
	Filter     FilterSpec
	// Context is the active incremental build session; nil means no build is in progress.
	Context *CompilationContext
	// ForceStableScan adds the stable classpath sweep when Context is nil.
	ForceStableScan bool
}

// Result is the outcome of an annotation lookup.
// Partial is set when the stable classpath sweep failed and only in-memory results are present.
type Result[E Element] struct {
	Elements  Set[E]
	Partial   bool
	StableErr error
}
