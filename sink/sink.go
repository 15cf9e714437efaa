package sink

import (
	"sync/atomic"

	"github.com/mbeckersen/logfan/core"
)

// Sink is a log message destination with its own severity threshold.
type Sink interface {
	// Write formats and emits msg if msg.Level clears the sink's
	// threshold. The timestampFormat is the owning logger's layout
	// string. Destination errors are returned for the logger to record;
	// a below-threshold message returns nil with no side effect.
	Write(msg core.Message, timestampFormat string) error

	// Close releases destination resources. Idempotent.
	Close() error

	// Level returns the sink's current threshold.
	Level() core.Level

	// SetLevel replaces the sink's threshold. Safe to call concurrently
	// with Write; in-flight writes may observe either value.
	SetLevel(level core.Level)
}

// threshold is an atomically updated level cell embedded by the bundled
// sinks. The zero value is core.Debug, the permissive sink default.
type threshold struct {
	level atomic.Int32
}

func (t *threshold) Level() core.Level {
	return core.Level(t.level.Load())
}

func (t *threshold) SetLevel(level core.Level) {
	t.level.Store(int32(level))
}

// accepts reports whether a message at the given level clears the
// threshold, reading the level exactly once.
func (t *threshold) accepts(level core.Level) bool {
	return level.AtLeast(core.Level(t.level.Load()))
}
