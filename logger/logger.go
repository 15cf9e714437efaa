package logger

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/mbeckersen/logfan/core"
	"github.com/mbeckersen/logfan/formatter"
	"github.com/mbeckersen/logfan/sink"
)

// Logger is a named, leveled message producer bound to a fixed set of
// sinks. Implementations guarantee a per-logger total delivery order:
// every sink receives the same message sequence.
type Logger interface {
	// Debug through Fatal are convenience wrappers over Log with a
	// background context.
	Debug(content string) error
	Info(content string) error
	Warn(content string) error
	Error(content string) error
	Fatal(content string) error

	// Log is the single path every message flows through. It validates
	// the arguments, filters against the logger threshold, and hands
	// the message to the delivery mode. The context only matters to
	// the asynchronous mode, where it can abort an enqueue blocked on a
	// full buffer.
	Log(ctx context.Context, level core.Level, content string) error

	// Name returns the logger's registry name.
	Name() string

	// Shutdown terminally stops the logger and closes every sink
	// exactly once. Subsequent Log calls fail with ErrLoggerClosed; a
	// second Shutdown is a no-op.
	Shutdown() error
}

// Mode selects how a logger delivers messages to its sinks.
type Mode int

const (
	// Sync delivers on the caller's goroutine, blocking until every
	// sink has been written.
	Sync Mode = iota
	// Async enqueues onto a bounded buffer drained by one background
	// worker, blocking the caller only when the buffer is full.
	Async
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case Sync:
		return "sync"
	case Async:
		return "async"
	default:
		return "unknown"
	}
}

// ParseMode converts a string to a Mode. Unknown input falls back to Sync.
func ParseMode(s string) Mode {
	if s == "async" || s == "ASYNC" {
		return Async
	}
	return Sync
}

const (
	// DefaultBufferSize is the async queue capacity when none is set.
	DefaultBufferSize = 10
	// DefaultDrainTimeout bounds how long an async Shutdown waits for
	// its worker before forcing it down.
	DefaultDrainTimeout = 5 * time.Second
)

// Config carries everything needed to construct a logger. It is consumed
// at creation; loggers never pick up later changes.
type Config struct {
	// Name uniquely identifies the logger in its registry. Required.
	Name string
	// TimestampFormat is the time layout for emitted lines. Empty means
	// formatter.DefaultTimestampFormat.
	TimestampFormat string
	// Level is the logger threshold. Note the zero value is Debug;
	// NewConfig sets the conventional Info default.
	Level core.Level
	// Mode selects Sync (zero value) or Async delivery.
	Mode Mode
	// BufferSize is the async queue capacity. Zero means
	// DefaultBufferSize; negative fails validation. Ignored by Sync.
	BufferSize int
	// DrainTimeout bounds the async shutdown wait. Zero means
	// DefaultDrainTimeout. Ignored by Sync.
	DrainTimeout time.Duration
	// Sinks is the ordered, non-empty destination list. A sink must
	// belong to at most one logger.
	Sinks []sink.Sink
	// OnSinkError receives per-sink write failures and shutdown
	// diagnostics. Nil means a line on os.Stderr.
	OnSinkError func(error)
}

// NewConfig returns a Config with the conventional defaults: Info
// threshold, Sync mode, RFC3339 timestamps.
func NewConfig(name string, sinks ...sink.Sink) Config {
	return Config{
		Name:            name,
		TimestampFormat: formatter.DefaultTimestampFormat,
		Level:           core.Info,
		Mode:            Sync,
		BufferSize:      DefaultBufferSize,
		DrainTimeout:    DefaultDrainTimeout,
		Sinks:           sinks,
	}
}

// withDefaults fills the zero-value fields that have defaults.
func (c Config) withDefaults() Config {
	if c.TimestampFormat == "" {
		c.TimestampFormat = formatter.DefaultTimestampFormat
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = DefaultDrainTimeout
	}
	if c.OnSinkError == nil {
		c.OnSinkError = stderrDiagnostic
	}
	return c
}

func (c Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: empty logger name", ErrInvalidArgument)
	}
	if len(c.Sinks) == 0 {
		return fmt.Errorf("%w: logger %q needs at least one sink", ErrInvalidArgument, c.Name)
	}
	if !c.Level.Valid() {
		return fmt.Errorf("%w: logger %q has unknown level %d", ErrInvalidArgument, c.Name, c.Level)
	}
	if c.Mode != Sync && c.Mode != Async {
		return fmt.Errorf("%w: logger %q has unknown mode %d", ErrInvalidArgument, c.Name, c.Mode)
	}
	if c.Mode == Async && c.BufferSize <= 0 {
		return fmt.Errorf("%w: logger %q buffer size must be positive, got %d", ErrInvalidArgument, c.Name, c.BufferSize)
	}
	return nil
}

// stderrDiagnostic is the default OnSinkError hook.
func stderrDiagnostic(err error) {
	fmt.Fprintf(os.Stderr, "logfan: %v\n", err)
}

// delivery holds the state and behavior shared by both delivery modes:
// the identity, the threshold filter, and the fail-soft sink fan-out.
type delivery struct {
	name        string
	level       core.Level
	tsLayout    string
	sinks       []sink.Sink
	stats       Stats
	onSinkError func(error)
}

func newDelivery(cfg Config) delivery {
	return delivery{
		name:        cfg.Name,
		level:       cfg.Level,
		tsLayout:    cfg.TimestampFormat,
		sinks:       cfg.Sinks,
		onSinkError: cfg.OnSinkError,
	}
}

// Name returns the logger's registry name.
func (d *delivery) Name() string {
	return d.name
}

// Level returns the logger's threshold, fixed at construction.
func (d *delivery) Level() core.Level {
	return d.level
}

// Stats returns the logger's diagnostic counters.
func (d *delivery) Stats() *Stats {
	return &d.stats
}

// checkArgs enforces the Log preconditions before any queueing or
// writing happens.
func (d *delivery) checkArgs(content string, level core.Level) error {
	if content == "" {
		return fmt.Errorf("%w: empty content", ErrInvalidArgument)
	}
	if !level.Valid() {
		return fmt.Errorf("%w: unknown level %d", ErrInvalidArgument, level)
	}
	return nil
}

// fanOut writes msg to every sink in registration order. A failing sink
// is recorded and skipped; it never blocks delivery to the others.
func (d *delivery) fanOut(msg core.Message) {
	for i, s := range d.sinks {
		if err := s.Write(msg, d.tsLayout); err != nil {
			d.stats.incSinkErrors()
			d.onSinkError(fmt.Errorf("logger %q: sink %d write: %w", d.name, i, err))
		}
	}
	d.stats.incProcessed()
}

// closeSinks closes every sink, aggregating failures so one bad sink
// does not leave the rest open.
func (d *delivery) closeSinks() error {
	var err error
	for i, s := range d.sinks {
		if cerr := s.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("logger %q: sink %d close: %w", d.name, i, cerr))
		}
	}
	return err
}
