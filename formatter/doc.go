// Package formatter renders log messages into the single line shape
// emitted by every sink:
//
//	{timestamp} [{LEVEL}] {content}\n
//
// The timestamp layout is a standard time layout string chosen per logger
// at construction and passed down with every write; an empty layout falls
// back to DefaultTimestampFormat. AppendLine builds the line into a
// caller-provided buffer so sinks on a hot path avoid per-write
// allocations.
package formatter
