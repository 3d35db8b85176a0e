package http

import (
	"bytes"
	"fmt"
	"io"

	"github.com/shapestone/httpcodec/internal/framing"
	"github.com/shapestone/httpcodec/internal/grammar"
	"github.com/shapestone/httpcodec/internal/message"
)

func parseVersion(s string) message.HTTPVersion {
	if s == "" {
		return message.HTTPVersion{Major: 1, Minor: 1}
	}
	_, v, err := grammar.Version([]byte(s))
	if err != nil {
		return message.HTTPVersion{Major: 1, Minor: 1}
	}
	return v
}

func bodyOf(b []byte, headers Headers) message.MessageBody {
	if len(b) == 0 && headers.ContentLength() <= 0 {
		return message.NoneBody()
	}
	return message.SliceBody(b)
}

// Marshal returns the HTTP/1.1 wire-format encoding of v, which must be
// a *Request or *Response.
func Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	switch msg := v.(type) {
	case *Request:
		start := message.StartLine{Request: &message.RequestLine{
			Method:        msg.Method,
			RequestTarget: msg.Uri.String(),
			Version:       parseVersion(msg.Version),
		}}
		if err := framing.WriteMessage(&buf, start, msg.Headers.toMessage(), bodyOf(msg.Body, msg.Headers)); err != nil {
			return nil, err
		}
	case *Response:
		start := message.StartLine{Response: &message.StatusLine{
			Version:     parseVersion(msg.Version),
			Code:        uint16(msg.StatusCode),
			Description: msg.Reason,
		}}
		if err := framing.WriteMessage(&buf, start, msg.Headers.toMessage(), bodyOf(msg.Body, msg.Headers)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("http: Marshal unsupported type %T (expected *Request or *Response)", v)
	}
	return buf.Bytes(), nil
}

// materializeBody fully reads body into a byte slice, regardless of its
// dispatch kind.
func materializeBody(body message.MessageBody) ([]byte, error) {
	switch body.Kind {
	case message.BodyNone:
		return nil, nil
	case message.BodySlice:
		return body.Slice, nil
	case message.BodyChunked:
		return body.Chunked.Bytes(), nil
	case message.BodyReader:
		return io.ReadAll(body.Reader)
	default:
		return nil, nil
	}
}

func headToRequest(head framing.Head, body []byte) (*Request, error) {
	if !head.Start.IsRequest() {
		return nil, fmt.Errorf("http: data appears to be a response but target is *Request")
	}
	rl := head.Start.Request
	return &Request{
		Method:  rl.Method,
		Uri:     ParseUri(rl.RequestTarget),
		Version: rl.Version.String(),
		Headers: fromMessageHeaders(head.Headers),
		Body:    body,
	}, nil
}

func headToResponse(head framing.Head, body []byte) (*Response, error) {
	if head.Start.IsRequest() {
		return nil, fmt.Errorf("http: data appears to be a request but target is *Response")
	}
	sl := head.Start.Response
	return &Response{
		Version:    sl.Version.String(),
		StatusCode: int(sl.Code),
		Reason:     sl.Description,
		Headers:    fromMessageHeaders(head.Headers),
		Body:       body,
	}, nil
}

// Unmarshal parses data and stores the result in v, which must be a
// *Request or *Response. The message type is auto-detected from
// whether data starts with "HTTP/" (response) or not (request).
func Unmarshal(data []byte, v interface{}) error {
	dec := framing.NewDecoder(bytes.NewReader(data), len(data)+1)
	head, body, err := dec.ReadMessage()
	if err != nil {
		return fmt.Errorf("http: unmarshal: %w", err)
	}
	materialized, err := materializeBody(body)
	if err != nil {
		return fmt.Errorf("http: unmarshal: %w", err)
	}

	switch target := v.(type) {
	case *Request:
		req, err := headToRequest(head, materialized)
		if err != nil {
			return err
		}
		*target = *req
	case *Response:
		resp, err := headToResponse(head, materialized)
		if err != nil {
			return err
		}
		*target = *resp
	default:
		return fmt.Errorf("http: Unmarshal unsupported type %T (expected *Request or *Response)", v)
	}
	return nil
}

// Decoder reads successive HTTP/1.1 messages from a stream. A single
// Decoder is not safe for concurrent use.
type Decoder struct {
	fd *framing.Decoder
}

// NewDecoder returns a Decoder reading from r with the framing engine's
// default buffer capacity.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{fd: framing.NewDecoder(r, framing.DefaultBufferCapacity)}
}

// DecodeRequest reads the next request from the stream.
func (d *Decoder) DecodeRequest() (*Request, error) {
	head, body, err := d.fd.ReadMessage()
	if err != nil {
		return nil, err
	}
	materialized, err := materializeBody(body)
	if err != nil {
		return nil, err
	}
	return headToRequest(head, materialized)
}

// DecodeResponse reads the next response from the stream.
func (d *Decoder) DecodeResponse() (*Response, error) {
	head, body, err := d.fd.ReadMessage()
	if err != nil {
		return nil, err
	}
	materialized, err := materializeBody(body)
	if err != nil {
		return nil, err
	}
	return headToResponse(head, materialized)
}

// Decode reads the next message into v, which must be a *Request or
// *Response.
func (d *Decoder) Decode(v interface{}) error {
	switch target := v.(type) {
	case *Request:
		req, err := d.DecodeRequest()
		if err != nil {
			return err
		}
		*target = *req
	case *Response:
		resp, err := d.DecodeResponse()
		if err != nil {
			return err
		}
		*target = *resp
	default:
		return fmt.Errorf("http: Decode unsupported type %T", v)
	}
	return nil
}
