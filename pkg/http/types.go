// Package http is the public façade over this module's HTTP/1.1 wire
// codec: Request/Response/Headers/Uri types, Marshal/Unmarshal,
// NewDecoder streaming parsing, and Validate. It is built entirely on
// top of internal/framing, internal/grammar and internal/message; this
// package owns no grammar of its own.
package http

import (
	"strconv"

	"github.com/shapestone/httpcodec/internal/message"
)

// Header is a single HTTP header name-value pair. It is the same type
// internal/message parses into and serializes from; this package adds
// no field of its own.
type Header = message.Header

// Headers is an ordered, repeatable list of HTTP headers, named over
// message.Headers so every method below is a thin, string-typed
// convenience wrapper around that type's own logic rather than a
// second implementation of header lookup/replace/removal.
type Headers message.Headers

func (h Headers) toMessage() message.Headers { return message.Headers(h) }

func fromMessageHeaders(m message.Headers) Headers { return Headers(m) }

// Get returns the first header value for name (case-insensitive), or
// "" if absent.
func (h Headers) Get(name string) string {
	v, _ := message.Headers(h).Get(name)
	return v
}

// Values returns every value for name, in order.
func (h Headers) Values(name string) []string {
	return message.Headers(h).Values(name)
}

// Set replaces every header matching name with a single occurrence
// holding value, or appends a new header if name is absent.
func (h *Headers) Set(name, value string) {
	*h = Headers(message.Headers(*h).Replace(name, value))
}

// Add appends a header without removing existing ones of the same name.
func (h *Headers) Add(name, value string) {
	*h = Headers(message.Headers(*h).Add(name, value))
}

// Del removes every header matching name.
func (h *Headers) Del(name string) {
	*h = Headers(message.Headers(*h).Remove(name))
}

// Clone returns a copy of h.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the parsed Content-Length value, or -1 if
// absent or malformed.
func (h Headers) ContentLength() int64 {
	n, ok := message.Headers(h).ContentLength()
	if !ok {
		return -1
	}
	return int64(n)
}

// IsChunked reports whether the final Transfer-Encoding coding is
// "chunked", the same rule internal/framing's body dispatch enforces.
func (h Headers) IsChunked() bool {
	codings, err := message.Headers(h).TransferEncoding()
	if err != nil || len(codings) == 0 {
		return false
	}
	return codings[len(codings)-1].IsChunked()
}

// Request represents an HTTP/1.1 request message.
type Request struct {
	Method  string
	Uri     Uri
	Version string
	Headers Headers
	Body    []byte
}

// Response represents an HTTP/1.1 response message.
type Response struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    Headers
	Body       []byte
}

// Message is the interface shared by Request and Response.
type Message interface {
	GetVersion() string
	GetHeaders() Headers
	GetBody() []byte
}

func (r *Request) GetVersion() string  { return r.Version }
func (r *Request) GetHeaders() Headers { return r.Headers }
func (r *Request) GetBody() []byte     { return r.Body }

func (r *Response) GetVersion() string  { return r.Version }
func (r *Response) GetHeaders() Headers { return r.Headers }
func (r *Response) GetBody() []byte     { return r.Body }

// Marshaler is implemented by types that serialize themselves to HTTP
// wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// Unmarshaler is implemented by types that parse an HTTP wire-format
// description of themselves.
type Unmarshaler interface {
	UnmarshalHTTP([]byte) error
}

// ParseError describes a malformed HTTP message.
type ParseError struct {
	Message  string
	Position int
}

func (e *ParseError) Error() string {
	if e.Position > 0 {
		return "http: parse error at position " + strconv.Itoa(e.Position) + ": " + e.Message
	}
	return "http: " + e.Message
}
