package logger

import (
	"errors"
	"sync"

	"github.com/mbeckersen/logfan/core"
)

// fakeSink records every accepted message and counts Close calls.
type fakeSink struct {
	mu         sync.Mutex
	level      core.Level
	msgs       []core.Message
	closeCount int
}

func (f *fakeSink) Write(msg core.Message, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !msg.Level.AtLeast(f.level) {
		return nil
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

func (f *fakeSink) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeCount++
	return nil
}

func (f *fakeSink) Level() core.Level {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.level
}

func (f *fakeSink) SetLevel(level core.Level) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.level = level
}

func (f *fakeSink) messages() []core.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]core.Message, len(f.msgs))
	copy(out, f.msgs)
	return out
}

func (f *fakeSink) contents() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.msgs))
	for i, m := range f.msgs {
		out[i] = m.Content
	}
	return out
}

func (f *fakeSink) closed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closeCount
}

var errWriteRefused = errors.New("write refused")

// errorSink fails every write but closes cleanly.
type errorSink struct {
	fakeSink
}

func (e *errorSink) Write(core.Message, string) error {
	return errWriteRefused
}

var errCloseRefused = errors.New("close refused")

// closeErrorSink records normally but fails on Close.
type closeErrorSink struct {
	fakeSink
}

func (c *closeErrorSink) Close() error {
	c.fakeSink.Close() //nolint:errcheck // counting the call is the point
	return errCloseRefused
}

// gateSink blocks each Write until the gate channel is released, which
// lets tests pin the async worker mid-delivery.
type gateSink struct {
	fakeSink
	gate chan struct{}
}

func newGateSink() *gateSink {
	return &gateSink{gate: make(chan struct{})}
}

func (g *gateSink) Write(msg core.Message, layout string) error {
	<-g.gate
	return g.fakeSink.Write(msg, layout)
}

// release lets n pending or future writes through.
func (g *gateSink) release(n int) {
	for i := 0; i < n; i++ {
		g.gate <- struct{}{}
	}
}

// open lets every write through from now on.
func (g *gateSink) open() {
	close(g.gate)
}
