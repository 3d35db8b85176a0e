package message

import (
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// bufferPool pools the scratch buffers used while serializing a message
// head, avoiding an allocation per write on a hot connection.
var bufferPool bytebufferpool.Pool

// WriteHeadTo appends the start-line and headers (each CRLF-terminated,
// plus the terminating blank CRLF) to w. It does not write the body;
// callers stream the body separately per its MessageBody kind.
func WriteHeadTo(w io.Writer, start StartLine, headers Headers) error {
	bb := bufferPool.Get()
	defer bufferPool.Put(bb)

	appendStartLine(bb, start)
	for _, h := range headers {
		bb.WriteString(h.Name)
		bb.WriteString(": ")
		bb.WriteString(h.Value)
		bb.WriteString("\r\n")
	}
	bb.WriteString("\r\n")

	_, err := w.Write(bb.Bytes())
	return err
}

func appendStartLine(bb *bytebufferpool.ByteBuffer, start StartLine) {
	if start.Request != nil {
		r := start.Request
		bb.WriteString(r.Method)
		bb.WriteByte(' ')
		bb.WriteString(r.RequestTarget)
		bb.WriteByte(' ')
		bb.WriteString(r.Version.String())
		bb.WriteString("\r\n")
		return
	}
	s := start.Response
	bb.WriteString(s.Version.String())
	bb.WriteByte(' ')
	bb.WriteString(strconv.Itoa(int(s.Code)))
	bb.WriteByte(' ')
	bb.WriteString(s.Description)
	bb.WriteString("\r\n")
}

// WriteBodyTo writes body to w per its kind: None writes nothing, Slice
// writes the raw bytes, Reader copies until EOF. There is no chunked
// encoding on write: a Chunked body writes nothing.
func WriteBodyTo(w io.Writer, body MessageBody) error {
	switch body.Kind {
	case BodyNone:
		return nil
	case BodySlice:
		_, err := w.Write(body.Slice)
		return err
	case BodyReader:
		_, err := io.Copy(w, body.Reader)
		return err
	default:
		return nil
	}
}
