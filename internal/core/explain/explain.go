package explain

// Explain receives diagnostics from a search run. A nil Explain disables
// collection.
type Explain interface {
	KV(key string, value any)
	Timer(name string) func()
}
