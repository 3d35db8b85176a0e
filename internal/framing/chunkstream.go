package framing

import (
	"io"

	"github.com/pkg/errors"

	"github.com/shapestone/httpcodec/internal/grammar"
	"github.com/shapestone/httpcodec/internal/iobuf"
	"github.com/shapestone/httpcodec/internal/message"
)

type chunkState int

const (
	stateNotStarted chunkState = iota
	stateConsumed
	stateFinished
)

// ChunkStream exposes a chunked-transfer-coding body as a sequence of
// Chunk values read from a buffered source, driving the following
// state machine:
//
//	NotStarted --Next()--> Consumed | (last-chunk) Finished
//	Consumed   --Next()--> Consumed | (last-chunk) Finished
//	Finished   --Next()--> (nil, nil)
//
// Next parses exactly one chunk-head, reads its payload and trailing
// CRLF (or, for the last-chunk, its trailer section), and consumes
// those bytes from the underlying reader immediately, so the stream
// never needs to remember a deferred advance across calls.
type ChunkStream struct {
	r     *iobuf.BufferedReader
	state chunkState
}

// NewChunkStream wraps r for chunked-body reading. r must be
// positioned immediately after the message head.
func NewChunkStream(r *iobuf.BufferedReader) *ChunkStream {
	return &ChunkStream{r: r, state: stateNotStarted}
}

// Next returns the next Chunk, or (nil, nil) once the stream has
// reached Finished.
func (c *ChunkStream) Next() (*message.Chunk, error) {
	if c.state == stateFinished {
		return nil, nil
	}

	var size uint64
	var ext message.ChunkExtensions
	err := refillingParse(c.r, func(data []byte) (int, error) {
		n, s, e, perr := grammar.ChunkHead(data)
		if perr != nil {
			return 0, perr
		}
		size, ext = s, e
		return n, nil
	})
	if err != nil {
		return nil, err
	}

	if size == 0 {
		var trailers message.Headers
		err := refillingParse(c.r, func(data []byte) (int, error) {
			n, h, perr := grammar.Headers(data)
			if perr != nil {
				return 0, perr
			}
			trailers = h
			return n, nil
		})
		if err != nil {
			return nil, err
		}
		c.state = stateFinished
		return &message.Chunk{Kind: message.ChunkLast, Extensions: ext, Trailers: trailers}, nil
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(c.r, payload); err != nil {
		return nil, errors.Wrap(ErrLengthViolation, "chunked data short of declared size")
	}

	if err := refillingParse(c.r, grammar.CRLF); err != nil {
		return nil, err
	}

	c.state = stateConsumed
	return &message.Chunk{Kind: message.ChunkSlice, Extensions: ext, Payload: payload}, nil
}

// Drain reads and discards chunks until the stream reaches Finished,
// positioning the underlying reader at the next message boundary. This
// is the explicit analogue of the drop-time draining a connection
// needs when a handler never reads a chunked body to completion.
func (c *ChunkStream) Drain() error {
	for c.state != stateFinished {
		if _, err := c.Next(); err != nil {
			return err
		}
	}
	return nil
}

// materializeChunkStream drives a ChunkStream to completion, collecting
// every chunk into a message.ChunkedBody. The framing engine's default
// body dispatch materializes chunked bodies eagerly rather than
// exposing ChunkStream directly to callers, trading streaming exposure
// for a simpler MessageBody contract; a caller that wants the lazy view
// can construct a ChunkStream itself.
func materializeChunkStream(cs *ChunkStream) (*message.ChunkedBody, error) {
	var chunks []message.Chunk
	for {
		chunk, err := cs.Next()
		if err != nil {
			return nil, err
		}
		if chunk == nil {
			return nil, errors.New("framing: chunk stream ended without a last-chunk")
		}
		if chunk.Kind == message.ChunkLast {
			return &message.ChunkedBody{Chunks: chunks, Last: chunk.Extensions, Trailers: chunk.Trailers}, nil
		}
		chunks = append(chunks, *chunk)
	}
}
