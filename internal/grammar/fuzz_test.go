package grammar

import "testing"

// FuzzMessageHead fuzzes the combined start-line+headers entry point.
// The invariant: never panic, and only ever return ErrIncomplete or a
// *ProtocolError, never any other error type.
func FuzzMessageHead(f *testing.F) {
	f.Add([]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"))
	f.Add([]byte("POST /api HTTP/1.1\r\nHost: example.com\r\nContent-Length: 4\r\n\r\n"))
	f.Add([]byte("HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\n"))
	f.Add([]byte("HTTP/1.1 200 OK\r\nX-Folded: a\r\n b\r\n\r\n"))
	f.Add([]byte(""))
	f.Add([]byte("\r\n\r\n"))
	f.Add([]byte("GET"))
	f.Add([]byte("GET / HTTP/1.1\r\n"))
	f.Add([]byte("HTTP/1.1 abc OK\r\n\r\n"))
	f.Add([]byte("GET / HTTP/1.1\r\nBad Header\r\n\r\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("MessageHead panicked on input %q: %v", data, r)
			}
		}()
		_, _, _, err := MessageHead(data)
		if err == nil {
			return
		}
		if err == ErrIncomplete {
			return
		}
		if _, ok := err.(*ProtocolError); ok {
			return
		}
		t.Errorf("MessageHead returned an error of unexpected type on input %q: %v (%T)", data, err, err)
	})
}

// FuzzChunkHead fuzzes the chunk-size/chunk-ext/CRLF parser, the
// highest-value target in the package: hex-integer overflow and
// extension quoting both live here.
func FuzzChunkHead(f *testing.F) {
	f.Add([]byte("5\r\n"))
	f.Add([]byte("a\r\n"))
	f.Add([]byte("0\r\n"))
	f.Add([]byte("5;ext=val\r\n"))
	f.Add([]byte(`5;ext="quoted val"` + "\r\n"))
	f.Add([]byte("FFFFFFFFFFFFFFFF\r\n"))
	f.Add([]byte("g\r\n"))
	f.Add([]byte(";ext\r\n"))
	f.Add([]byte("0000\r\n"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("ChunkHead panicked on input %q: %v", data, r)
			}
		}()
		_, _, _, err := ChunkHead(data)
		if err == nil || err == ErrIncomplete {
			return
		}
		if _, ok := err.(*ProtocolError); ok {
			return
		}
		t.Errorf("ChunkHead returned an error of unexpected type on input %q: %v (%T)", data, err, err)
	})
}

// FuzzHeaderField fuzzes single header-field parsing including obs-fold
// continuation lines.
func FuzzHeaderField(f *testing.F) {
	f.Add([]byte("Host: example.com\r\n"))
	f.Add([]byte("X-Empty:\r\n"))
	f.Add([]byte("X-Folded: a\r\n b\r\n"))
	f.Add([]byte("Bad Header\r\n"))
	f.Add([]byte(":value\r\n"))
	f.Add([]byte(""))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("HeaderField panicked on input %q: %v", data, r)
			}
		}()
		_, _, _ = HeaderField(data)
	})
}
