package framing

import (
	"bytes"
	"io"
	"testing"
)

// FuzzReadMessage fuzzes the full decode loop: start-line, headers, and
// body dispatch (Content-Length, chunked, or none) over arbitrary bytes.
// The invariant: never panic. The first error (including io.EOF) ends
// the loop; its type is not checked.
func FuzzReadMessage(f *testing.F) {
	f.Add([]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"))
	f.Add([]byte("HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhello"))
	f.Add([]byte("HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n5\r\nhello\r\n0\r\n\r\n"))
	f.Add([]byte("HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n5;ext=val\r\nhello\r\n0\r\nX-Trailer: v\r\n\r\n"))
	f.Add([]byte("HTTP/1.1 200 OK\r\nContent-Length: 100\r\n\r\nshort"))
	f.Add([]byte(""))
	f.Add([]byte("GET / HTTP/1.1\r\n"))
	f.Add([]byte("HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\nFFFFFFFFFFFFFFFF\r\n"))
	f.Add([]byte("HTTP/1.1 200 OK\r\nContent-Length: abc\r\n\r\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ReadMessage panicked on input %q: %v", data, r)
			}
		}()
		dec := NewDecoder(bytes.NewReader(data), 64)
		for i := 0; i < 8; i++ {
			_, _, err := dec.ReadMessage()
			if err == nil {
				continue
			}
			if err == io.EOF {
				return
			}
			return
		}
	})
}
