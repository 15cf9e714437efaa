// Package logger implements the delivery side of logfan: named loggers
// that filter messages against a fixed threshold and fan them out to an
// ordered set of sinks, plus the registry that owns their lifecycle.
//
// Two delivery modes exist. A SyncLogger writes to every sink on the
// caller's goroutine under one mutex, so each message is fully delivered
// before the next caller proceeds. An AsyncLogger decouples producers
// from sink I/O through a bounded queue drained by a single worker
// goroutine; a full queue blocks producers rather than dropping messages,
// and shutdown drains everything already queued before closing sinks.
//
// Both modes deliver a per-logger total order: every sink sees the same
// message sequence. Nothing is ever dropped silently; the only sanctioned
// loss is a producer cancelling a blocked enqueue through its context, and
// that is reported through the error return.
//
// Loggers are created through a Registry, which enforces one live logger
// per name. Most applications use the package-level default registry:
//
//	log, err := logger.Create(logger.NewConfig("app",
//		sink.NewConsoleSink(sink.ConsoleConfig{})))
//	if err != nil { ... }
//	log.Info("up")
//	defer logger.ShutdownAll()
package logger
