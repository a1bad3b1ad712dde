package extract

// The default registry backs callers that do not manage their own candidate
// list. It resolves the standard candidates lazily on first use.
var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}
