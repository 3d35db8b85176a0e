package framing

import (
	"io"

	"github.com/pkg/errors"

	"github.com/shapestone/httpcodec/internal/grammar"
	"github.com/shapestone/httpcodec/internal/iobuf"
	"github.com/shapestone/httpcodec/internal/message"
)

// Head is a parsed message head: start-line plus headers, with no body
// yet dispatched.
type Head struct {
	Start   message.StartLine
	Headers message.Headers
}

// refillingParse retries parse against r's currently readable region,
// refilling from the underlying source whenever parse reports
// ErrIncomplete, until parse succeeds, definitively fails, or the
// source is exhausted. On success it consumes exactly the bytes parse
// reported.
func refillingParse(r *iobuf.BufferedReader, parse func([]byte) (int, error)) error {
	for {
		n, err := parse(r.Peek())
		if err == nil {
			r.Consume(n)
			return nil
		}
		if err != grammar.ErrIncomplete {
			return errors.Wrap(ErrProtocol, err.Error())
		}
		before := r.Buffered()
		_, ferr := r.FillBuf()
		if ferr == nil {
			continue
		}
		if ferr == io.EOF {
			if r.Buffered() > before {
				continue
			}
			return errors.Wrap(ErrTruncatedHead, "connection closed with an incomplete message")
		}
		return errors.Wrap(ferr, "io error while parsing")
	}
}

// ParseHead parses one message head from r, refilling as needed. A
// clean io.EOF with nothing buffered (no new message starting) is
// returned as io.EOF so a caller can distinguish "end of connection"
// from "truncated mid-message".
func ParseHead(r *iobuf.BufferedReader) (Head, error) {
	if r.Buffered() == 0 {
		if _, err := r.FillBuf(); err != nil {
			if err == io.EOF && r.Buffered() == 0 {
				return Head{}, io.EOF
			}
			if err != io.EOF {
				return Head{}, errors.Wrap(err, "io error while reading message head")
			}
		}
	}

	var head Head
	err := refillingParse(r, func(data []byte) (int, error) {
		n, start, headers, perr := grammar.MessageHead(data)
		if perr != nil {
			return 0, perr
		}
		head.Start = start
		head.Headers = headers
		return n, nil
	})
	if err != nil {
		return Head{}, err
	}
	return head, nil
}
