package http

import (
	"bytes"
	"testing"
)

func TestUriParseAndRoundTrip(t *testing.T) {
	cases := []string{
		"http://authority/some/path?query=string#fragment",
		"some/path",
		"uuid:720f11db-1a29-4a68-a034-43f80b27659d",
	}
	for _, original := range cases {
		if got := ParseUri(original).String(); got != original {
			t.Fatalf("ParseUri(%q).String() = %q", original, got)
		}
	}

	u := ParseUri("http://authority/some/path?query=string#fragment")
	if u.Scheme == nil || *u.Scheme != "http" {
		t.Fatalf("scheme = %v", u.Scheme)
	}
	if u.Authority == nil || *u.Authority != "authority" {
		t.Fatalf("authority = %v", u.Authority)
	}
	if u.Path != "/some/path" {
		t.Fatalf("path = %q", u.Path)
	}
	if u.Query == nil || *u.Query != "query=string" {
		t.Fatalf("query = %v", u.Query)
	}
	if u.Fragment == nil || *u.Fragment != "fragment" {
		t.Fatalf("fragment = %v", u.Fragment)
	}
}

func TestRequestBuilderChain(t *testing.T) {
	req := Get("/some/path").Header("Content-Type", "text/plain")
	if req.Method != "GET" || req.Uri.Path != "/some/path" {
		t.Fatalf("req = %+v", req)
	}
	if req.GetHeader("Content-Type") != "text/plain" {
		t.Fatalf("headers = %+v", req.Headers)
	}
	req.RemoveHeader("Content-Type")
	if req.GetHeader("Content-Type") != "" {
		t.Fatalf("header not removed: %+v", req.Headers)
	}
}

func TestResponsePresetsSetReasonAndStatus(t *testing.T) {
	cases := []struct {
		resp       *Response
		wantCode   int
		wantReason string
	}{
		{Ok(), 200, "OK"},
		{BadRequest(), 400, "Bad Request"},
		{Unauthorized(), 401, "Unauthorized"},
		{NotFound(), 404, "Not Found"},
		{MethodNotAllowed(), 405, "Method Not Allowed"},
	}
	for _, c := range cases {
		if c.resp.StatusCode != c.wantCode || c.resp.Reason != c.wantReason {
			t.Fatalf("resp = %+v, want %d %q", c.resp, c.wantCode, c.wantReason)
		}
	}
}

func TestResponseMessageSetsBodyAndContentLength(t *testing.T) {
	resp := NotFound().Message("Path denotes a directory")
	if string(resp.Body) != "Path denotes a directory" {
		t.Fatalf("body = %q", resp.Body)
	}
	if resp.GetHeader("Content-Length") != "24" {
		t.Fatalf("content-length = %q", resp.GetHeader("Content-Length"))
	}
	if resp.GetHeader("Content-Type") != "text/plain" {
		t.Fatalf("content-type = %q", resp.GetHeader("Content-Type"))
	}
}

func TestMarshalUnmarshalRequestRoundTrip(t *testing.T) {
	req := Get("/where?q=now").Header("Content-Type", "plain/text")
	data, err := Marshal(req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := "GET /where?q=now HTTP/1.1\r\nContent-Type: plain/text\r\n\r\n"
	if string(data) != want {
		t.Fatalf("Marshal = %q, want %q", data, want)
	}

	var got Request
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Method != "GET" || got.Uri.Path != "/where" {
		t.Fatalf("got = %+v", got)
	}
	if got.GetHeader("Content-Type") != "plain/text" {
		t.Fatalf("headers = %+v", got.Headers)
	}
}

func TestMarshalUnmarshalResponseWithBody(t *testing.T) {
	resp := Ok().Header("Content-Type", "text/plain").WithBody([]byte("abc"))
	data, err := Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Response
	if err := Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.StatusCode != 200 || string(got.Body) != "abc" {
		t.Fatalf("got = %+v", got)
	}
}

func TestDecoderReadsSuccessiveMessages(t *testing.T) {
	stream := "GET /a HTTP/1.1\r\n\r\nGET /b HTTP/1.1\r\n\r\n"
	dec := NewDecoder(bytes.NewReader([]byte(stream)))

	first, err := dec.DecodeRequest()
	if err != nil || first.Uri.Path != "/a" {
		t.Fatalf("first = %+v, err = %v", first, err)
	}
	second, err := dec.DecodeRequest()
	if err != nil || second.Uri.Path != "/b" {
		t.Fatalf("second = %+v, err = %v", second, err)
	}
}

func TestValidateRejectsMalformedInput(t *testing.T) {
	if err := Validate("GET /where?q=now HTTP/1.1\r\nContent-Type:plain/text\r\n\r\n"); err != nil {
		t.Fatalf("Validate valid input: %v", err)
	}
	if err := Validate("not an http message"); err == nil {
		t.Fatal("expected error for malformed input")
	}
}
