package framing

import (
	"io"

	"github.com/pkg/errors"

	"github.com/shapestone/httpcodec/internal/iobuf"
	"github.com/shapestone/httpcodec/internal/message"
)

// Drainable is implemented by a dispatched body that may still hold
// unread bytes on the wire; draining it repositions the underlying
// connection at the next message boundary.
type Drainable interface {
	Drain() error
}

// BoundedReader reads exactly N bytes from an underlying buffered
// source (the already-buffered tail chained with the upstream source),
// enforcing the Content-Length cap and reporting a length violation if
// the source ends early.
type BoundedReader struct {
	r         *iobuf.BufferedReader
	remaining uint64
}

// NewBoundedReader wraps r to yield exactly n more bytes.
func NewBoundedReader(r *iobuf.BufferedReader, n uint64) *BoundedReader {
	return &BoundedReader{r: r, remaining: n}
}

func (b *BoundedReader) Read(p []byte) (int, error) {
	if b.remaining == 0 {
		return 0, io.EOF
	}
	if uint64(len(p)) > b.remaining {
		p = p[:b.remaining]
	}
	n, err := b.r.Read(p)
	b.remaining -= uint64(n)
	if err == io.EOF && b.remaining > 0 {
		return n, errors.Wrap(ErrLengthViolation, "content-length body truncated by upstream EOF")
	}
	return n, err
}

// Drain discards any unread bytes so the connection lands at the next
// message boundary.
func (b *BoundedReader) Drain() error {
	_, err := io.Copy(io.Discard, b)
	return err
}

// DispatchBody decides the MessageBody for a just-parsed head and
// returns a Drainable to be drained (if non-nil) before the next
// message head is parsed off the same connection. The dispatch rule:
// a final chunked Transfer-Encoding coding wins over Content-Length;
// among duplicate Content-Length headers the first parseable value is
// used (message.Headers.ContentLength already implements that
// tie-break); a body whose declared length is already fully buffered
// is returned as a Slice, otherwise as a bounded Reader.
func DispatchBody(r *iobuf.BufferedReader, headers message.Headers) (message.MessageBody, Drainable, error) {
	codings, err := headers.TransferEncoding()
	if err != nil {
		return message.MessageBody{}, nil, errors.Wrap(ErrProtocol, err.Error())
	}
	if len(codings) > 0 {
		if !codings[len(codings)-1].IsChunked() {
			return message.MessageBody{}, nil, errors.Wrap(ErrProtocol, "Transfer-Encoding present without a final chunked coding")
		}
		cb, err := materializeChunkStream(NewChunkStream(r))
		if err != nil {
			return message.MessageBody{}, nil, err
		}
		return message.ChunkedBodyOf(cb), nil, nil
	}

	if n, ok := headers.ContentLength(); ok && n > 0 {
		if uint64(r.Buffered()) >= n {
			data := make([]byte, n)
			copy(data, r.Peek()[:n])
			r.Consume(int(n))
			return message.SliceBody(data), nil, nil
		}
		br := NewBoundedReader(r, n)
		return message.ReaderBody(br), br, nil
	}

	return message.NoneBody(), nil, nil
}
