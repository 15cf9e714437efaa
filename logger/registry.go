package logger

import (
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

// Registry owns the name→logger mapping: at most one live logger per
// name. All mutations go through one mutex, and construction happens
// under it, so a concurrent Get sees either a fully built logger or
// nothing.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]Logger)}
}

// Create validates cfg, constructs the logger for its delivery mode,
// registers it, and returns it. A name that already maps to a live
// logger fails with ErrDuplicateName and leaves the existing logger
// untouched.
func (r *Registry) Create(cfg Config) (Logger, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loggers[cfg.Name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, cfg.Name)
	}

	var (
		l   Logger
		err error
	)
	switch cfg.Mode {
	case Sync:
		l, err = NewSyncLogger(cfg)
	case Async:
		l, err = NewAsyncLogger(cfg)
	}
	if err != nil {
		return nil, err
	}

	r.loggers[cfg.Name] = l
	return l, nil
}

// Get returns the live logger registered under name, if any.
func (r *Registry) Get(name string) (Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Shutdown removes the named logger and shuts it down. An absent name is
// a no-op, not an error, so shutdown paths can be retried safely.
func (r *Registry) Shutdown(name string) error {
	r.mu.Lock()
	l, ok := r.loggers[name]
	if ok {
		delete(r.loggers, name)
	}
	r.mu.Unlock()

	if !ok {
		return nil
	}
	return l.Shutdown()
}

// ShutdownAll shuts down and removes every registered logger. Individual
// failures are collected and reported together; the sweep never aborts
// early.
func (r *Registry) ShutdownAll() error {
	r.mu.Lock()
	swept := make([]Logger, 0, len(r.loggers))
	for name, l := range r.loggers {
		swept = append(swept, l)
		delete(r.loggers, name)
	}
	r.mu.Unlock()

	var err error
	for _, l := range swept {
		if serr := l.Shutdown(); serr != nil {
			err = multierr.Append(err, fmt.Errorf("shutdown %q: %w", l.Name(), serr))
		}
	}
	return err
}
