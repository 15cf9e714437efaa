package logger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/mbeckersen/logfan/core"
)

// async logger lifecycle states
const (
	stateActive int32 = iota
	stateDraining
	stateStopped
)

// queueItem is the tagged union carried on the async buffer: either a
// message to deliver or the shutdown marker. Putting the marker on the
// same channel as the data guarantees it is processed strictly after
// every message enqueued before the shutdown call.
type queueItem struct {
	msg      core.Message
	shutdown bool
}

// AsyncLogger decouples producers from sink I/O. Producers enqueue onto a
// bounded channel; exactly one worker goroutine pops in FIFO order and
// fans each message out to all sinks before popping the next, preserving
// the total order end to end. A full buffer blocks producers: under load
// the logger slows callers down instead of dropping messages or growing
// without bound.
//
// Shutdown must stay bounded even when producers are blocked on a full
// buffer and the worker is wedged in a sink write, so no lock is ever
// held across the blocking send. Instead, a producer registers in a
// WaitGroup under a short read lock (which linearizes registration
// against the state flip), then blocks on the send with the draining
// channel as an escape hatch. Shutdown flips the state, closes draining
// to release every blocked producer, waits for registered producers to
// resolve, and only then queues the shutdown marker; anything a producer
// managed to enqueue therefore precedes the marker, and nothing can land
// behind it.
type AsyncLogger struct {
	delivery

	queue        chan queueItem
	drainTimeout time.Duration

	// stateMu linearizes producer registration against the state flip;
	// it is only ever held for non-blocking work.
	stateMu   sync.RWMutex
	state     atomic.Int32
	producers sync.WaitGroup

	draining   chan struct{}
	workerDone chan struct{}
	kill       chan struct{}

	closeOnce sync.Once
	closeErr  error
}

var _ Logger = (*AsyncLogger)(nil)

// NewAsyncLogger creates an asynchronous logger from cfg and starts its
// worker. Construction fails on a non-positive buffer size.
func NewAsyncLogger(cfg Config) (*AsyncLogger, error) {
	cfg.Mode = Async
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	l := &AsyncLogger{
		delivery:     newDelivery(cfg),
		queue:        make(chan queueItem, cfg.BufferSize),
		drainTimeout: cfg.DrainTimeout,
		draining:     make(chan struct{}),
		workerDone:   make(chan struct{}),
		kill:         make(chan struct{}),
	}
	go l.worker()
	return l, nil
}

// Log validates, checks the lifecycle state, filters, and enqueues
// content for the worker. If the buffer is full the call blocks until
// space frees, ctx is done, or the logger starts draining. A cancelled
// enqueue returns the wrapped context error and the message is not
// delivered, which is the one sanctioned form of loss; an enqueue
// released by shutdown reports ErrLoggerClosed, never silence.
func (l *AsyncLogger) Log(ctx context.Context, level core.Level, content string) error {
	if err := l.checkArgs(content, level); err != nil {
		return err
	}
	if l.state.Load() != stateActive {
		return fmt.Errorf("%w: %q", ErrLoggerClosed, l.name)
	}
	if !level.AtLeast(l.level) {
		return nil
	}

	msg := core.NewMessage(content, level)

	// Register as an in-flight producer. The read lock is released
	// before the send: it only makes the state check and the WaitGroup
	// add atomic with respect to Shutdown's flip.
	l.stateMu.RLock()
	if l.state.Load() != stateActive {
		l.stateMu.RUnlock()
		return fmt.Errorf("%w: %q", ErrLoggerClosed, l.name)
	}
	l.producers.Add(1)
	l.stateMu.RUnlock()
	defer l.producers.Done()

	select {
	case l.queue <- queueItem{msg: msg}:
		return nil
	case <-ctx.Done():
		l.stats.incInterrupted()
		return fmt.Errorf("logger %q: enqueue interrupted: %w", l.name, ctx.Err())
	case <-l.draining:
		return fmt.Errorf("%w: %q", ErrLoggerClosed, l.name)
	}
}

// worker is the single consumer of the queue. It delivers one message to
// every sink before popping the next and exits on the shutdown marker or
// a force-cancel.
func (l *AsyncLogger) worker() {
	defer close(l.workerDone)
	for {
		select {
		case it := <-l.queue:
			if it.shutdown {
				return
			}
			l.fanOut(it.msg)
		case <-l.kill:
			return
		}
	}
}

// Shutdown drains the queue and closes every sink exactly once. It flips
// the logger to draining (a second call observes the flip and returns
// nil), releases any producer blocked on the full buffer, queues the
// shutdown marker behind everything successfully enqueued, and waits for
// the worker within the drain timeout. If the worker does not exit in
// time, the timeout is reported through the error return and the
// OnSinkError hook, the worker is force-cancelled, and sinks are still
// closed best-effort.
func (l *AsyncLogger) Shutdown() error {
	l.stateMu.Lock()
	if l.state.Load() != stateActive {
		l.stateMu.Unlock()
		return nil
	}
	l.state.Store(stateDraining)
	l.stateMu.Unlock()

	// Wake every producer blocked on the send, then wait for the
	// registered ones to resolve. Each has a ready select case now, so
	// this settles promptly regardless of buffer or worker state, and
	// afterwards nothing can be enqueued behind the marker.
	close(l.draining)
	l.producers.Wait()

	timer := time.NewTimer(l.drainTimeout)
	defer timer.Stop()

	select {
	case l.queue <- queueItem{shutdown: true}:
	case <-timer.C:
		return l.forceStop()
	}

	select {
	case <-l.workerDone:
	case <-timer.C:
		return l.forceStop()
	}

	l.state.Store(stateStopped)
	return l.closeSinksOnce()
}

// forceStop handles a worker that did not drain within the bound: cancel
// it, stop anyway, close sinks best-effort, and report the timeout.
func (l *AsyncLogger) forceStop() error {
	timeoutErr := fmt.Errorf("%w: logger %q worker still busy after %s", ErrShutdownTimeout, l.name, l.drainTimeout)
	l.onSinkError(timeoutErr)

	close(l.kill)
	l.state.Store(stateStopped)
	return multierr.Append(timeoutErr, l.closeSinksOnce())
}

func (l *AsyncLogger) closeSinksOnce() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.closeSinks()
	})
	return l.closeErr
}

// Debug logs content at the Debug level.
func (l *AsyncLogger) Debug(content string) error {
	return l.Log(context.Background(), core.Debug, content)
}

// Info logs content at the Info level.
func (l *AsyncLogger) Info(content string) error {
	return l.Log(context.Background(), core.Info, content)
}

// Warn logs content at the Warn level.
func (l *AsyncLogger) Warn(content string) error {
	return l.Log(context.Background(), core.Warn, content)
}

// Error logs content at the Error level.
func (l *AsyncLogger) Error(content string) error {
	return l.Log(context.Background(), core.Error, content)
}

// Fatal logs content at the Fatal level. It does not exit the process.
func (l *AsyncLogger) Fatal(content string) error {
	return l.Log(context.Background(), core.Fatal, content)
}
