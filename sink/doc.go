// Package sink defines the destination side of the logfan pipeline.
//
// A Sink receives fully-constructed messages from exactly one logger and
// decides, against its own severity threshold, whether to emit each one.
// The threshold is independent of the owning logger's threshold and may be
// changed while writes are in flight; each Write observes one consistent
// value.
//
// Write and Close return destination errors to the calling logger, which
// owns the fail-soft policy: a failing sink never stops delivery to the
// remaining sinks. Sinks serialize their own destination access, because
// logger-level ordering only holds within one logger's delivery path.
//
// ConsoleSink and FileSink are the bundled implementations; dbsink in the
// subpackage writes to a relational table. Anything else that can render
// a line can implement the interface.
package sink
