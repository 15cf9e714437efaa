package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mbeckersen/logfan/logger"
)

// ---------------------------------------------------------------------------
// Helpers – every framework writes plain text to a discarded destination
// ---------------------------------------------------------------------------

// newLogfanLogger returns a sync logger delivering to a no-op sink.
func newLogfanLogger(b *testing.B) *logger.SyncLogger {
	b.Helper()
	l, err := logger.NewSyncLogger(logger.NewConfig("bench-competitive", newNoopSink()))
	if err != nil {
		b.Fatal(err)
	}
	return l
}

// newZapLogger returns a zap.Logger writing console-encoded lines to
// io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.InfoLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger writing text to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func BenchmarkCompetitive_Logfan(b *testing.B) {
	l := newLogfanLogger(b)
	defer l.Shutdown() //nolint:errcheck
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = l.Info("the quick brown fox jumps over the lazy dog")
	}
}

func BenchmarkCompetitive_Zap(b *testing.B) {
	l := newZapLogger()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Info("the quick brown fox jumps over the lazy dog")
	}
}

func BenchmarkCompetitive_Slog(b *testing.B) {
	l := newSlogLogger()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Info("the quick brown fox jumps over the lazy dog")
	}
}

func BenchmarkCompetitive_LogfanParallel(b *testing.B) {
	l := newLogfanLogger(b)
	defer l.Shutdown() //nolint:errcheck
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = l.Info("the quick brown fox jumps over the lazy dog")
		}
	})
}

func BenchmarkCompetitive_ZapParallel(b *testing.B) {
	l := newZapLogger()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			l.Info("the quick brown fox jumps over the lazy dog")
		}
	})
}
