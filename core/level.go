package core

import "strings"

// Level represents the severity of a log message
type Level int8

const (
	// Debug for detailed debugging information
	Debug Level = iota
	// Info for general informational messages (default logger threshold)
	Info
	// Warn for warning messages
	Warn
	// Error for error messages
	Error
	// Fatal for unrecoverable failures
	Fatal
)

// Priority returns the integer priority of the level. Priorities grow
// monotonically with severity, from 0 (Debug) to 4 (Fatal).
func (l Level) Priority() int {
	return int(l)
}

// AtLeast reports whether l is at least as severe as other.
func (l Level) AtLeast(other Level) bool {
	return l >= other
}

// Valid reports whether l is one of the five defined levels.
func (l Level) Valid() bool {
	return l >= Debug && l <= Fatal
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. Unknown input falls back to
// Info rather than failing, so a misspelled threshold degrades to the
// default instead of silencing a logger.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return Debug
	case "INFO":
		return Info
	case "WARN", "WARNING":
		return Warn
	case "ERROR":
		return Error
	case "FATAL":
		return Fatal
	default:
		return Info
	}
}
