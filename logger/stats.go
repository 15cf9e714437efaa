package logger

import "sync/atomic"

// Stats tracks per-logger diagnostic counters. Sink write failures are
// fail-soft, so these counters (and the OnSinkError hook) are the only
// place they surface.
type Stats struct {
	processedTotal   uint64
	sinkErrorTotal   uint64
	interruptedTotal uint64
}

// Processed returns the number of messages fully fanned out to the
// logger's sinks.
func (s *Stats) Processed() uint64 {
	return atomic.LoadUint64(&s.processedTotal)
}

// SinkErrors returns the number of individual sink write failures.
func (s *Stats) SinkErrors() uint64 {
	return atomic.LoadUint64(&s.sinkErrorTotal)
}

// Interrupted returns the number of enqueues cancelled while blocked on a
// full buffer.
func (s *Stats) Interrupted() uint64 {
	return atomic.LoadUint64(&s.interruptedTotal)
}

func (s *Stats) incProcessed() {
	atomic.AddUint64(&s.processedTotal, 1)
}

func (s *Stats) incSinkErrors() {
	atomic.AddUint64(&s.sinkErrorTotal, 1)
}

func (s *Stats) incInterrupted() {
	atomic.AddUint64(&s.interruptedTotal, 1)
}
