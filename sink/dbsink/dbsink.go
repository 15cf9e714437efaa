// Package dbsink provides a Sink that stores each log line as a row in a
// relational table. The host application opens the *sqlx.DB with whatever
// driver it already uses; this package never imports a driver.
package dbsink

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/mbeckersen/logfan/core"
	"github.com/mbeckersen/logfan/sink"
)

// Config configures a database sink.
type Config struct {
	// DB is the open database handle. The sink takes ownership and
	// closes it on Close.
	DB *sqlx.DB
	// Table is the destination table (defaults to "log_messages"). It
	// must have created_at, level and content columns.
	Table string
	// Level is the sink's initial threshold (defaults to core.Debug).
	Level core.Level
}

// Sink writes one row per message. Row inserts are serialized so a
// shared connection pool never sees interleaved partial batches from
// this sink.
type Sink struct {
	mu     sync.Mutex
	db     *sqlx.DB
	insert string
	level  core.Level
	closed bool
}

var _ sink.Sink = (*Sink)(nil)

// New creates a database sink over cfg.DB.
func New(cfg Config) (*Sink, error) {
	if cfg.DB == nil {
		return nil, fmt.Errorf("db sink: nil database handle")
	}
	table := cfg.Table
	if table == "" {
		table = "log_messages"
	}
	return &Sink{
		db:     cfg.DB,
		insert: fmt.Sprintf("INSERT INTO %s (created_at, level, content) VALUES (?, ?, ?)", table),
		level:  cfg.Level,
	}, nil
}

// Write inserts msg as a row if it clears the sink threshold. The
// timestamp layout is ignored: the driver stores created_at natively.
func (s *Sink) Write(msg core.Message, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return sink.ErrSinkClosed
	}
	if !msg.Level.AtLeast(s.level) {
		return nil
	}

	_, err := s.db.Exec(s.db.Rebind(s.insert), msg.CreatedAt, msg.Level.String(), msg.Content)
	if err != nil {
		return fmt.Errorf("db sink: insert: %w", err)
	}
	return nil
}

// Close closes the database handle exactly once.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Level returns the sink's current threshold.
func (s *Sink) Level() core.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// SetLevel replaces the sink's threshold.
func (s *Sink) SetLevel(level core.Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
}
