package grammar

import (
	"testing"

	"github.com/shapestone/httpcodec/internal/message"
)

func TestVersion(t *testing.T) {
	n, v, err := Version([]byte("HTTP/1.1"))
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if n != 8 || v != (message.HTTPVersion{Major: 1, Minor: 1}) {
		t.Fatalf("Version = %d, %+v", n, v)
	}
}

func TestRequestLine(t *testing.T) {
	n, rl, err := RequestLine([]byte("GET /where?q=now HTTP/1.1\r\n"))
	if err != nil {
		t.Fatalf("RequestLine: %v", err)
	}
	want := message.RequestLine{Method: "GET", RequestTarget: "/where?q=now", Version: message.HTTPVersion{Major: 1, Minor: 1}}
	if rl != want {
		t.Fatalf("RequestLine = %+v, want %+v", rl, want)
	}
	if n != len("GET /where?q=now HTTP/1.1\r\n") {
		t.Fatalf("n = %d", n)
	}
}

func TestStatusLine(t *testing.T) {
	n, sl, err := StatusLine([]byte("HTTP/1.1 200 OK\r\n"))
	if err != nil {
		t.Fatalf("StatusLine: %v", err)
	}
	want := message.StatusLine{Version: message.HTTPVersion{Major: 1, Minor: 1}, Code: 200, Description: "OK"}
	if sl != want {
		t.Fatalf("StatusLine = %+v, want %+v", sl, want)
	}
	_ = n
}

func TestStartLineDiscriminates(t *testing.T) {
	_, sl, err := StartLine([]byte("GET /where?q=now HTTP/1.1\r\n"))
	if err != nil || !sl.IsRequest() {
		t.Fatalf("expected request start-line, err=%v sl=%+v", err, sl)
	}
	_, sl, err = StartLine([]byte("HTTP/1.1 200 OK\r\n"))
	if err != nil || sl.IsRequest() {
		t.Fatalf("expected status start-line, err=%v sl=%+v", err, sl)
	}
}

func TestHeaderFieldObsFoldCollapsesToSingleSpace(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Content-Type:plain/text\r\n", "plain/text"},
		{"Content-Type: plain/text\r\n", "plain/text"},
		{"Content-Type: plain/text \r\n", "plain/text"},
		{"Content-Type: plain/\r\n text \r\n", "plain/ text"},
	}
	for _, c := range cases {
		// The trailing CRLF is the byte after the field that tells
		// HeaderField no obs-fold continuation follows.
		_, h, err := HeaderField([]byte(c.in + "\r\n"))
		if err != nil {
			t.Fatalf("HeaderField(%q): %v", c.in, err)
		}
		if h.Name != "Content-Type" || h.Value != c.want {
			t.Fatalf("HeaderField(%q) = %+v, want value %q", c.in, h, c.want)
		}
	}
}

func TestHTTPMessageScenario1SimpleGET(t *testing.T) {
	input := "GET /where?q=now HTTP/1.1\r\nContent-Type:plain/text\r\n\r\n"
	n, sl, headers, err := MessageHead([]byte(input))
	if err != nil {
		t.Fatalf("MessageHead: %v", err)
	}
	if n != len(input) {
		t.Fatalf("consumed %d, want %d", n, len(input))
	}
	if !sl.IsRequest() || sl.Request.Method != "GET" || sl.Request.RequestTarget != "/where?q=now" {
		t.Fatalf("start-line = %+v", sl)
	}
	if v, ok := headers.Get("Content-Type"); !ok || v != "plain/text" {
		t.Fatalf("headers = %+v", headers)
	}
}

func TestChunkHeadScenario3(t *testing.T) {
	n, size, ext, err := ChunkHead([]byte("4;foo=bar\r\nWiki\r\n"))
	if err != nil {
		t.Fatalf("ChunkHead: %v", err)
	}
	if size != 4 {
		t.Fatalf("size = %d, want 4", size)
	}
	if len(ext) != 1 || ext[0].Name != "foo" || ext[0].Value == nil || *ext[0].Value != "bar" {
		t.Fatalf("ext = %+v", ext)
	}
	if n != len("4;foo=bar\r\n") {
		t.Fatalf("n = %d", n)
	}
}

func TestChunkExtVariants(t *testing.T) {
	cases := []struct {
		in   string
		want message.ChunkExtensions
	}{
		{";foo=bar", ext("foo", sp("bar"))},
		{";foo", ext("foo", nil)},
		{";foo=bar;baz", message.ChunkExtensions{{Name: "foo", Value: sp("bar")}, {Name: "baz"}}},
		{" ; foo = bar ; baz", message.ChunkExtensions{{Name: "foo", Value: sp("bar")}, {Name: "baz"}}},
		{"", message.ChunkExtensions(nil)},
	}
	for _, c := range cases {
		n, got, err := ChunkExt([]byte(c.in + "\r\n"))
		if err != nil {
			t.Fatalf("ChunkExt(%q): %v", c.in, err)
		}
		if len(got) != len(c.want) {
			t.Fatalf("ChunkExt(%q) = %+v, want %+v", c.in, got, c.want)
		}
		for i := range got {
			if got[i].Name != c.want[i].Name {
				t.Fatalf("ChunkExt(%q)[%d].Name = %q, want %q", c.in, i, got[i].Name, c.want[i].Name)
			}
		}
		if n != len(c.in) {
			t.Fatalf("ChunkExt(%q) consumed %d, want %d", c.in, n, len(c.in))
		}
	}
}

func sp(s string) *string { return &s }
func ext(name string, value *string) message.ChunkExtensions {
	return message.ChunkExtensions{{Name: name, Value: value}}
}

func TestQuotedStringUnescapes(t *testing.T) {
	n, v, err := QuotedString([]byte(`"This is a quoted string"`))
	if err != nil {
		t.Fatalf("QuotedString: %v", err)
	}
	if string(v) != "This is a quoted string" {
		t.Fatalf("value = %q", v)
	}
	_ = n

	_, v, err = QuotedString([]byte(`"This is a \"quoted\" string"`))
	if err != nil {
		t.Fatalf("QuotedString escaped: %v", err)
	}
	if string(v) != `This is a "quoted" string` {
		t.Fatalf("escaped value = %q", v)
	}
}

// TestRestartStability checks universal invariant 1: every proper prefix
// of a valid input yields ErrIncomplete, and parsing the full input from
// scratch succeeds with the expected value.
func TestRestartStability(t *testing.T) {
	full := "GET /where?q=now HTTP/1.1\r\nContent-Type:plain/text\r\n\r\n"
	for i := 0; i < len(full); i++ {
		prefix := full[:i]
		_, _, _, err := MessageHead([]byte(prefix))
		if err != ErrIncomplete {
			t.Fatalf("prefix %d (%q): err = %v, want ErrIncomplete", i, prefix, err)
		}
	}
	n, _, _, err := MessageHead([]byte(full))
	if err != nil || n != len(full) {
		t.Fatalf("full parse: n=%d err=%v", n, err)
	}
}

func TestFragmentedChunkHeadRestartStability(t *testing.T) {
	full := "4;foo=bar\r\n"
	for i := 0; i < len(full); i++ {
		_, _, _, err := ChunkHead([]byte(full[:i]))
		if err != ErrIncomplete {
			t.Fatalf("prefix %d: err = %v, want ErrIncomplete", i, err)
		}
	}
}
