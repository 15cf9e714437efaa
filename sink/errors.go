package sink

import "errors"

// ErrSinkClosed is returned by Write after a sink has been closed.
var ErrSinkClosed = errors.New("sink is closed")
