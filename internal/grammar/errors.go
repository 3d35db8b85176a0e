package grammar

import (
	"errors"
	"fmt"
)

// ErrIncomplete signals that a parser needs more bytes than are
// currently available to reach a definitive result. It is never
// returned alongside a non-zero consumed count. Callers refill their
// buffer and retry the same parse from the same starting position:
// every parser in this package is restartable, so re-running it against a
// strict extension of its previous input that is still a prefix of a
// valid message either succeeds or again returns ErrIncomplete, never a
// ProtocolError.
var ErrIncomplete = errors.New("grammar: incomplete")

// ProtocolError reports a definitive grammar violation: the byte stream
// does not and cannot match the expected production, no matter how many
// more bytes arrive.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "grammar: " + e.Msg }

func newProtocolError(format string, args ...interface{}) error {
	return &ProtocolError{Msg: fmt.Sprintf(format, args...)}
}
