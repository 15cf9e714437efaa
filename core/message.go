package core

import "time"

// Message is a single log event: what was said, how severe it is, and
// when it happened. The fields are set once by NewMessage and are
// read-only from then on.
type Message struct {
	Content   string
	Level     Level
	CreatedAt time.Time
}

// NewMessage creates a Message stamped with the current wall-clock time.
// The caller (the owning logger) validates content and level before
// construction; Message itself performs no checks.
func NewMessage(content string, level Level) Message {
	return Message{
		Content:   content,
		Level:     level,
		CreatedAt: time.Now(),
	}
}
