package sink

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/mbeckersen/logfan/core"
	"github.com/mbeckersen/logfan/formatter"
)

// FileConfig configures a FileSink.
type FileConfig struct {
	// Path is the log file location. The file is created if absent and
	// appended to otherwise.
	Path string
	// Level is the sink's initial threshold (defaults to core.Debug).
	Level core.Level
	// BufferSize is the write buffer size in bytes (defaults to 4096).
	BufferSize int
}

// FileSink appends formatted lines to a single file through a buffered
// writer. No rotation is performed.
type FileSink struct {
	threshold

	mu        sync.Mutex
	file      *os.File
	bufWriter *bufio.Writer
	buf       []byte
	closed    bool
}

// NewFileSink opens (or creates) the file at cfg.Path for appending.
func NewFileSink(cfg FileConfig) (*FileSink, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file sink: empty path")
	}

	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file sink: open %s: %w", cfg.Path, err)
	}

	bufSize := cfg.BufferSize
	if bufSize <= 0 {
		bufSize = 4096
	}

	s := &FileSink{
		file:      file,
		bufWriter: bufio.NewWriterSize(file, bufSize),
		buf:       make([]byte, 0, 256),
	}
	s.SetLevel(cfg.Level)
	return s, nil
}

// Write appends msg to the file if it clears the sink threshold.
func (s *FileSink) Write(msg core.Message, timestampFormat string) error {
	if !s.accepts(msg.Level) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}

	s.buf = formatter.AppendLine(s.buf[:0], msg, timestampFormat)
	_, err := s.bufWriter.Write(s.buf)
	return err
}

// Flush forces buffered lines out to the file.
func (s *FileSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSinkClosed
	}
	return s.bufWriter.Flush()
}

// Close flushes the write buffer and closes the file. Only the first call
// touches the file; later calls return nil.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.bufWriter.Flush()
	closeErr := s.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
