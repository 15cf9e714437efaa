// Package core defines the value types shared across the logfan pipeline.
//
// It provides the Level type, an ordered severity enum used for filtering
// by both loggers and sinks, and the Message type, the immutable record
// that flows from a logger's level method through its delivery path to
// every sink.
//
// A Message is stamped with the wall-clock time at construction, which is
// the moment the level method was invoked, not the moment a sink writes
// it. Messages are plain values and are never mutated after construction,
// so they are safe to hand across goroutines without copying or locking.
package core
