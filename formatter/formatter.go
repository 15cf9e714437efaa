package formatter

import (
	"time"

	"github.com/mbeckersen/logfan/core"
)

// DefaultTimestampFormat is used when a logger is configured with an
// empty timestamp layout.
const DefaultTimestampFormat = time.RFC3339

// pre-formatted level strings to avoid multiple append calls
var levelBrackets = [...]string{
	core.Debug: " [DEBUG] ",
	core.Info:  " [INFO] ",
	core.Warn:  " [WARN] ",
	core.Error: " [ERROR] ",
	core.Fatal: " [FATAL] ",
}

// AppendLine appends the formatted line for msg to dst and returns the
// extended slice. The timestamp is rendered with time.AppendFormat, so no
// intermediate string is allocated.
func AppendLine(dst []byte, msg core.Message, layout string) []byte {
	if layout == "" {
		layout = DefaultTimestampFormat
	}

	dst = msg.CreatedAt.AppendFormat(dst, layout)

	if int(msg.Level) >= 0 && int(msg.Level) < len(levelBrackets) {
		dst = append(dst, levelBrackets[msg.Level]...)
	} else {
		dst = append(dst, " [UNKNOWN] "...)
	}

	dst = append(dst, msg.Content...)
	dst = append(dst, '\n')
	return dst
}

// Line formats msg into a fresh byte slice. Convenience wrapper around
// AppendLine for callers that do not manage their own buffers.
func Line(msg core.Message, layout string) []byte {
	return AppendLine(make([]byte, 0, 64+len(msg.Content)), msg, layout)
}
