// Package message defines the typed HTTP/1.1 message model this codec
// parses into and serializes from: start lines, headers, the tagged
// MessageBody variant, and chunked-body framing types.
package message

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// HTTPVersion is a (major, minor) pair of single ASCII digits, e.g. 1.1.
type HTTPVersion struct {
	Major uint8
	Minor uint8
}

func (v HTTPVersion) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}

// RequestLine is (method, request-target, version).
type RequestLine struct {
	Method        string
	RequestTarget string
	Version       HTTPVersion
}

func (r RequestLine) String() string {
	return r.Method + " " + r.RequestTarget + " " + r.Version.String()
}

// StatusLine is (version, code, reason-phrase).
type StatusLine struct {
	Version     HTTPVersion
	Code        uint16
	Description string
}

func (s StatusLine) String() string {
	return s.Version.String() + " " + strconv.Itoa(int(s.Code)) + " " + s.Description
}

// StartLine is a discriminated union of RequestLine or StatusLine. Exactly
// one of Request/Response is non-nil.
type StartLine struct {
	Request  *RequestLine
	Response *StatusLine
}

func (s StartLine) String() string {
	if s.Request != nil {
		return s.Request.String()
	}
	if s.Response != nil {
		return s.Response.String()
	}
	return ""
}

// IsRequest reports whether this start line is a request-line.
func (s StartLine) IsRequest() bool { return s.Request != nil }

// Header is a (name, value) pair. Name comparisons elsewhere are
// case-insensitive ASCII; the struct itself preserves the bytes as seen.
type Header struct {
	Name  string
	Value string
}

// Headers is an insertion-ordered sequence of Header.
type Headers []Header

// Get returns the value of the first header matching name
// (case-insensitive), and whether one was found.
func (h Headers) Get(name string) (string, bool) {
	for _, header := range h {
		if strEqualFold(header.Name, name) {
			return header.Value, true
		}
	}
	return "", false
}

// Values returns all values for headers matching name, in order.
func (h Headers) Values(name string) []string {
	var out []string
	for _, header := range h {
		if strEqualFold(header.Name, name) {
			out = append(out, header.Value)
		}
	}
	return out
}

// Add appends a header without removing existing ones of the same name.
func (h Headers) Add(name, value string) Headers {
	return append(h, Header{Name: name, Value: value})
}

// Replace removes all prior occurrences of name and appends a single new
// header with that name and value.
func (h Headers) Replace(name, value string) Headers {
	out := h.Remove(name)
	return append(out, Header{Name: name, Value: value})
}

// Remove drops all headers matching name (case-insensitive).
func (h Headers) Remove(name string) Headers {
	out := make(Headers, 0, len(h))
	for _, header := range h {
		if !strEqualFold(header.Name, name) {
			out = append(out, header)
		}
	}
	return out
}

// Equal reports structural equality: same headers, in the same order.
func (h Headers) Equal(other Headers) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i] != other[i] {
			return false
		}
	}
	return true
}

// ContentLength parses the first Content-Length header that parses as an
// unsigned 64-bit integer. Returns (0, false) if absent or every
// occurrence is malformed; the caller must not conflate this with an
// explicit "Content-Length: 0".
func (h Headers) ContentLength() (uint64, bool) {
	for _, header := range h {
		if strEqualFold(header.Name, "Content-Length") {
			v, err := strconv.ParseUint(strings.TrimSpace(header.Value), 10, 64)
			if err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

// TransferEncoding parses all Transfer-Encoding headers left to right and
// concatenates their coding lists, preserving order.
func (h Headers) TransferEncoding() ([]TransferCoding, error) {
	var codings []TransferCoding
	for _, header := range h {
		if !strEqualFold(header.Name, "Transfer-Encoding") {
			continue
		}
		parsed, err := ParseTransferEncoding(header.Value)
		if err != nil {
			return nil, err
		}
		codings = append(codings, parsed...)
	}
	return codings, nil
}

func strEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// ChunkExtension is a (name, optional value) pair attached to a chunk-size
// line.
type ChunkExtension struct {
	Name  string
	Value *string
}

// ChunkExtensions is an ordered sequence of ChunkExtension.
type ChunkExtensions []ChunkExtension

func (c ChunkExtensions) String() string {
	var b strings.Builder
	for _, ext := range c {
		b.WriteByte(';')
		b.WriteString(ext.Name)
		if ext.Value != nil {
			b.WriteByte('=')
			b.WriteString(*ext.Value)
		}
	}
	return b.String()
}

// ChunkKind discriminates a data-carrying chunk from the terminal chunk.
type ChunkKind int

const (
	ChunkSlice ChunkKind = iota
	ChunkLast
)

// Chunk is either a data-carrying Slice chunk or the terminal Last chunk
// (which carries trailer headers instead of payload).
type Chunk struct {
	Kind       ChunkKind
	Extensions ChunkExtensions
	Payload    []byte  // valid when Kind == ChunkSlice
	Trailers   Headers // valid when Kind == ChunkLast
}

// ChunkedBody is a fully materialized sequence of slice chunks terminated
// by a Last chunk and its trailers.
type ChunkedBody struct {
	Chunks   []Chunk
	Last     ChunkExtensions
	Trailers Headers
}

// Bytes concatenates the payloads of every slice chunk, in order.
func (c ChunkedBody) Bytes() []byte {
	var total int
	for _, chunk := range c.Chunks {
		total += len(chunk.Payload)
	}
	out := make([]byte, 0, total)
	for _, chunk := range c.Chunks {
		out = append(out, chunk.Payload...)
	}
	return out
}

// TransferParameter is a (name, optional value) pair on a transfer-coding
// extension.
type TransferParameter struct {
	Name  string
	Value *string
}

// TransferCodingName enumerates the well-known transfer-codings.
type TransferCodingName int

const (
	Chunked TransferCodingName = iota
	Compress
	Deflate
	Gzip
	Extension
)

// TransferCoding is a single transfer-coding token, optionally an
// extension carrying a name and parameters.
type TransferCoding struct {
	Name          TransferCodingName
	ExtensionName string
	Params        []TransferParameter
}

func (t TransferCoding) String() string {
	switch t.Name {
	case Chunked:
		return "chunked"
	case Compress:
		return "compress"
	case Deflate:
		return "deflate"
	case Gzip:
		return "gzip"
	default:
		var b strings.Builder
		b.WriteString(t.ExtensionName)
		for _, p := range t.Params {
			b.WriteString("; ")
			b.WriteString(p.Name)
			if p.Value != nil {
				b.WriteByte('=')
				b.WriteString(*p.Value)
			}
		}
		return b.String()
	}
}

// IsChunked reports whether t is the "chunked" coding.
func (t TransferCoding) IsChunked() bool { return t.Name == Chunked }

// BodyKind discriminates the MessageBody tagged variant.
type BodyKind int

const (
	BodyNone BodyKind = iota
	BodySlice
	BodyReader
	BodyChunked
)

// MessageBody is the tagged variant over a message's entity: absent, an
// inline slice, a bounded owned reader, or a fully materialized chunked
// body. A Reader must be drained before the underlying connection can be
// reused for the next message; internal/framing owns that discipline.
type MessageBody struct {
	Kind    BodyKind
	Slice   []byte
	Reader  io.Reader // valid when Kind == BodyReader; bounded by framing
	Chunked *ChunkedBody
}

// NoneBody is the MessageBody for an absent entity.
func NoneBody() MessageBody { return MessageBody{Kind: BodyNone} }

// SliceBody wraps a borrowed or owned byte slice body.
func SliceBody(b []byte) MessageBody { return MessageBody{Kind: BodySlice, Slice: b} }

// ReaderBody wraps a length-bounded io.Reader body.
func ReaderBody(r io.Reader) MessageBody { return MessageBody{Kind: BodyReader, Reader: r} }

// ChunkedBodyOf wraps an already-materialized ChunkedBody.
func ChunkedBodyOf(c *ChunkedBody) MessageBody { return MessageBody{Kind: BodyChunked, Chunked: c} }

// Len returns the body length when statically known (None → 0, Slice →
// len(Slice)); ok is false for Reader/Chunked bodies whose length isn't
// known without consuming them.
func (m MessageBody) Len() (n int, ok bool) {
	switch m.Kind {
	case BodyNone:
		return 0, true
	case BodySlice:
		return len(m.Slice), true
	default:
		return 0, false
	}
}
