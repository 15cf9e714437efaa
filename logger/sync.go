package logger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/mbeckersen/logfan/core"
)

// SyncLogger delivers every message on the caller's goroutine. One mutex
// spans the entire sink fan-out, which is what makes the delivery order
// total: the caller that acquires it first has its message written to all
// sinks before any other caller's message starts.
type SyncLogger struct {
	delivery

	mu     sync.Mutex
	closed atomic.Bool // flipped under mu, read lock-free on the filtered path
}

var _ Logger = (*SyncLogger)(nil)

// NewSyncLogger creates a synchronous logger from cfg.
func NewSyncLogger(cfg Config) (*SyncLogger, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &SyncLogger{delivery: newDelivery(cfg)}, nil
}

// Log validates, filters, and writes content to every sink before
// returning. A shut-down logger rejects every call, filtered or not, so
// misuse stays observable. The context is accepted for interface
// symmetry; synchronous delivery has no cancellation point.
func (l *SyncLogger) Log(_ context.Context, level core.Level, content string) error {
	if err := l.checkArgs(content, level); err != nil {
		return err
	}
	if l.closed.Load() {
		return fmt.Errorf("%w: %q", ErrLoggerClosed, l.name)
	}
	if !level.AtLeast(l.level) {
		return nil
	}

	msg := core.NewMessage(content, level)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Load() {
		return fmt.Errorf("%w: %q", ErrLoggerClosed, l.name)
	}
	l.fanOut(msg)
	return nil
}

// Shutdown closes every sink exactly once, under the same mutex that
// orders deliveries, so no in-flight message races the close. A second
// call is a no-op.
func (l *SyncLogger) Shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed.Load() {
		return nil
	}
	l.closed.Store(true)
	return l.closeSinks()
}

// Debug logs content at the Debug level.
func (l *SyncLogger) Debug(content string) error {
	return l.Log(context.Background(), core.Debug, content)
}

// Info logs content at the Info level.
func (l *SyncLogger) Info(content string) error {
	return l.Log(context.Background(), core.Info, content)
}

// Warn logs content at the Warn level.
func (l *SyncLogger) Warn(content string) error {
	return l.Log(context.Background(), core.Warn, content)
}

// Error logs content at the Error level.
func (l *SyncLogger) Error(content string) error {
	return l.Log(context.Background(), core.Error, content)
}

// Fatal logs content at the Fatal level. It does not exit the process.
func (l *SyncLogger) Fatal(content string) error {
	return l.Log(context.Background(), core.Fatal, content)
}
