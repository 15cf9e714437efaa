package sink

import (
	"io"
	"os"
	"sync"

	"github.com/mbeckersen/logfan/core"
	"github.com/mbeckersen/logfan/formatter"
)

// ConsoleConfig configures a ConsoleSink.
type ConsoleConfig struct {
	// Writer is the destination stream (defaults to os.Stdout).
	Writer io.Writer
	// Level is the sink's initial threshold (defaults to core.Debug,
	// accepting everything).
	Level core.Level
}

// ConsoleSink writes one formatted line per message to a stream. Writes
// are serialized under a single mutex so concurrent callers never
// interleave partial lines, and the line buffer is reused under the same
// lock.
type ConsoleSink struct {
	threshold

	mu     sync.Mutex
	writer io.Writer
	buf    []byte
	closed bool
}

// NewConsoleSink creates a console sink for cfg.Writer.
func NewConsoleSink(cfg ConsoleConfig) *ConsoleSink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	s := &ConsoleSink{
		writer: w,
		buf:    make([]byte, 0, 256),
	}
	s.SetLevel(cfg.Level)
	return s
}

// Write emits msg to the stream if it clears the sink threshold.
func (s *ConsoleSink) Write(msg core.Message, timestampFormat string) error {
	if !s.accepts(msg.Level) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}

	s.buf = formatter.AppendLine(s.buf[:0], msg, timestampFormat)
	_, err := s.writer.Write(s.buf)
	return err
}

// Close marks the sink closed. The stream itself is not closed: the sink
// does not own os.Stdout or any other injected writer.
func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
