package logger

// defaultRegistry backs the package-level convenience functions. Hosts
// that need isolated namespaces create their own Registry instead.
var defaultRegistry = NewRegistry()

// Default returns the package default registry.
func Default() *Registry {
	return defaultRegistry
}

// Create creates a logger in the default registry.
func Create(cfg Config) (Logger, error) {
	return defaultRegistry.Create(cfg)
}

// Get looks up a logger in the default registry.
func Get(name string) (Logger, bool) {
	return defaultRegistry.Get(name)
}

// Shutdown removes and shuts down the named logger in the default
// registry.
func Shutdown(name string) error {
	return defaultRegistry.Shutdown(name)
}

// ShutdownAll shuts down every logger in the default registry.
func ShutdownAll() error {
	return defaultRegistry.ShutdownAll()
}
