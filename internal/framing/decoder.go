package framing

import (
	"io"

	"github.com/shapestone/httpcodec/internal/iobuf"
	"github.com/shapestone/httpcodec/internal/message"
)

// DefaultBufferCapacity is the fixed-size read buffer a Decoder uses
// per connection.
const DefaultBufferCapacity = 64 * 1024

// Decoder reads successive HTTP messages off one connection, draining
// any body left unread by the previous message before parsing the
// next head. This mirrors the drain-before-reuse discipline a
// destructor would otherwise enforce: in Go there is no deterministic
// drop, so the Decoder makes the drain an explicit step instead.
type Decoder struct {
	r       *iobuf.BufferedReader
	pending Drainable
}

// NewDecoder wraps src with a fixed-capacity buffer of bufCap bytes (or
// DefaultBufferCapacity if bufCap <= 0).
func NewDecoder(src io.Reader, bufCap int) *Decoder {
	if bufCap <= 0 {
		bufCap = DefaultBufferCapacity
	}
	return &Decoder{r: iobuf.NewBufferedReader(src, bufCap)}
}

// ReadMessage drains any body left over from the previous call, parses
// the next message head, and dispatches its body. It returns io.EOF
// when the connection closes cleanly between messages.
func (d *Decoder) ReadMessage() (Head, message.MessageBody, error) {
	if d.pending != nil {
		err := d.pending.Drain()
		d.pending = nil
		if err != nil {
			return Head{}, message.MessageBody{}, err
		}
	}

	head, err := ParseHead(d.r)
	if err != nil {
		return Head{}, message.MessageBody{}, err
	}

	body, drainable, err := DispatchBody(d.r, head.Headers)
	if err != nil {
		return Head{}, message.MessageBody{}, err
	}
	d.pending = drainable
	return head, body, nil
}
