package logger

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeckersen/logfan/core"
)

func newTestSyncLogger(t *testing.T, level core.Level, sinks ...*fakeSink) *SyncLogger {
	t.Helper()
	cfg := NewConfig("test-sync")
	cfg.Level = level
	for _, s := range sinks {
		cfg.Sinks = append(cfg.Sinks, s)
	}
	l, err := NewSyncLogger(cfg)
	require.NoError(t, err)
	return l
}

func TestSyncLogger_ThresholdFiltering(t *testing.T) {
	s1 := &fakeSink{}
	s2 := &fakeSink{}
	l := newTestSyncLogger(t, core.Warn, s1, s2)

	require.NoError(t, l.Debug("too quiet"))
	require.NoError(t, l.Info("still too quiet"))
	assert.Empty(t, s1.messages())
	assert.Empty(t, s2.messages())

	require.NoError(t, l.Warn("warn"))
	require.NoError(t, l.Error("error"))
	require.NoError(t, l.Fatal("fatal"))

	for _, s := range []*fakeSink{s1, s2} {
		assert.Equal(t, []string{"warn", "error", "fatal"}, s.contents())
	}
}

func TestSyncLogger_InvalidArguments(t *testing.T) {
	s := &fakeSink{}
	l := newTestSyncLogger(t, core.Debug, s)

	assert.ErrorIs(t, l.Info(""), ErrInvalidArgument)
	assert.ErrorIs(t, l.Log(context.Background(), core.Level(99), "x"), ErrInvalidArgument)
	assert.Empty(t, s.messages(), "invalid calls must have no side effect")
}

func TestSyncLogger_ConcurrentCallersAllDelivered(t *testing.T) {
	s1 := &fakeSink{}
	s2 := &fakeSink{}
	l := newTestSyncLogger(t, core.Debug, s1, s2)

	const callers = 32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			content := fmt.Sprintf("msg-%d", i)
			assert.NoError(t, l.Info(content))
			// Synchronous delivery: the message is in every sink
			// before Log returns.
			assert.Contains(t, s1.contents(), content)
			assert.Contains(t, s2.contents(), content)
		}()
	}
	wg.Wait()

	assert.Len(t, s1.messages(), callers)
	assert.Len(t, s2.messages(), callers)
	// Total ordering: both sinks saw the same sequence.
	assert.Equal(t, s1.contents(), s2.contents())
}

func TestSyncLogger_SinkFailureDoesNotStopFanOut(t *testing.T) {
	bad := &errorSink{}
	good := &fakeSink{}

	var reported []error
	cfg := NewConfig("fail-soft", bad, good)
	cfg.OnSinkError = func(err error) { reported = append(reported, err) }
	l, err := NewSyncLogger(cfg)
	require.NoError(t, err)

	require.NoError(t, l.Info("survives"), "sink failure must not surface to the caller")

	assert.Equal(t, []string{"survives"}, good.contents())
	require.Len(t, reported, 1)
	assert.ErrorIs(t, reported[0], errWriteRefused)
	assert.Equal(t, uint64(1), l.Stats().SinkErrors())
	assert.Equal(t, uint64(1), l.Stats().Processed())
}

func TestSyncLogger_ShutdownClosesSinksExactlyOnce(t *testing.T) {
	s1 := &fakeSink{}
	s2 := &fakeSink{}
	l := newTestSyncLogger(t, core.Debug, s1, s2)

	require.NoError(t, l.Shutdown())
	require.NoError(t, l.Shutdown(), "second shutdown is a no-op")

	assert.Equal(t, 1, s1.closed())
	assert.Equal(t, 1, s2.closed())

	err := l.Info("after close")
	assert.ErrorIs(t, err, ErrLoggerClosed)
	assert.Empty(t, s1.messages())
}

func TestSyncLogger_ClosedRejectsFilteredCalls(t *testing.T) {
	s := &fakeSink{}
	l := newTestSyncLogger(t, core.Warn, s)
	require.NoError(t, l.Shutdown())

	// Below the threshold, but misuse of a shut-down logger must still
	// be observable.
	assert.ErrorIs(t, l.Debug("below threshold"), ErrLoggerClosed)
	assert.ErrorIs(t, l.Error("above threshold"), ErrLoggerClosed)
	assert.Empty(t, s.messages())
}

func TestSyncLogger_ShutdownAggregatesCloseErrors(t *testing.T) {
	bad := &closeErrorSink{}
	good := &fakeSink{}
	cfg := NewConfig("close-errs", bad, good)
	l, err := NewSyncLogger(cfg)
	require.NoError(t, err)

	err = l.Shutdown()
	assert.ErrorIs(t, err, errCloseRefused)
	assert.Equal(t, 1, good.closed(), "a failing sink must not stop the close sweep")
}

// The spec's concrete scenario: logger at Debug, one sink at Info and one
// at Error; DEBUG reaches nobody, INFO reaches one, ERROR reaches both.
func TestSyncLogger_PerSinkThresholdScenario(t *testing.T) {
	infoSink := &fakeSink{level: core.Info}
	errorSink := &fakeSink{level: core.Error}
	l := newTestSyncLogger(t, core.Debug, infoSink, errorSink)

	require.NoError(t, l.Debug("d"))
	require.NoError(t, l.Info("i"))
	require.NoError(t, l.Error("e"))

	assert.Equal(t, []string{"i", "e"}, infoSink.contents())
	assert.Equal(t, []string{"e"}, errorSink.contents())
}

func TestSyncLogger_Name(t *testing.T) {
	l := newTestSyncLogger(t, core.Info, &fakeSink{})
	assert.Equal(t, "test-sync", l.Name())
	assert.Equal(t, core.Info, l.Level())
	require.NoError(t, l.Shutdown())
}
