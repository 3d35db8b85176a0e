// Package framing is the Request/Response/Message façade: it drives the
// grammar over a buffered byte source to parse a message head, decides
// body framing (Content-Length vs chunked vs none), and exposes a
// chunked-body reader with the drain-on-close discipline that keeps a
// connection's read position aligned to the next message boundary.
package framing

import "github.com/pkg/errors"

// Sentinel causes for the framing error taxonomy (spec §7). Wrap these
// with errors.Wrap so a caller can recover the cause via errors.Cause
// while still getting a message-specific description.
var (
	// ErrProtocol: the byte stream violates the grammar or the framing
	// rules (e.g. Transfer-Encoding without a final chunked coding).
	ErrProtocol = errors.New("framing: protocol violation")

	// ErrLengthViolation: chunked data short of its declared size, or a
	// Content-Length body truncated by upstream EOF.
	ErrLengthViolation = errors.New("framing: length violation")

	// ErrTruncatedHead: the connection closed part-way through a
	// message head, a chunk-size line, or a chunked trailer section.
	ErrTruncatedHead = errors.New("framing: message head truncated by EOF")
)
