package framing

import (
	"io"

	"github.com/shapestone/httpcodec/internal/message"
)

// WriteMessage serializes a start-line, headers, and body to w. It is a
// thin wrapper over message.WriteHeadTo/WriteBodyTo kept in this
// package so callers driving a connection only need to import framing.
func WriteMessage(w io.Writer, start message.StartLine, headers message.Headers, body message.MessageBody) error {
	if err := message.WriteHeadTo(w, start, headers); err != nil {
		return err
	}
	return message.WriteBodyTo(w, body)
}
