package benchmark

import (
	"github.com/mbeckersen/logfan/core"
	"github.com/mbeckersen/logfan/sink"
)

// noopSink accepts everything and writes nowhere, so benchmarks measure
// the delivery path instead of destination I/O.
type noopSink struct{}

func newNoopSink() sink.Sink {
	return &noopSink{}
}

func (s *noopSink) Write(msg core.Message, _ string) error {
	_ = len(msg.Content)
	return nil
}

func (s *noopSink) Close() error {
	return nil
}

func (s *noopSink) Level() core.Level {
	return core.Debug
}

func (s *noopSink) SetLevel(core.Level) {}
