package logger

import "errors"

var (
	// ErrInvalidArgument is returned for empty content, an unknown
	// level, an empty logger name, an empty sink list, or a
	// non-positive async buffer size. Always surfaced synchronously,
	// before any state changes.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateName is returned by Registry.Create when the name
	// already maps to a live logger. The existing logger is untouched.
	ErrDuplicateName = errors.New("duplicate logger name")

	// ErrLoggerClosed is returned by Log (and the level methods) once a
	// logger has been shut down. Late calls fail loudly instead of
	// disappearing.
	ErrLoggerClosed = errors.New("logger is shut down")

	// ErrShutdownTimeout is reported when an async logger's worker does
	// not drain within the configured bound. The logger still stops and
	// closes its sinks best-effort.
	ErrShutdownTimeout = errors.New("shutdown drain timed out")
)
