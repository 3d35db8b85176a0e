package client

import (
	"bytes"
	"context"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shapestone/httpcodec/internal/message"
	"github.com/shapestone/httpcodec/internal/server"
)

func TestClientDoRoundTripsAgainstServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := server.HandlerFunc(func(req *server.Request) *server.Response {
		return &server.Response{
			Status: message.StatusLine{Version: message.HTTPVersion{Major: 1, Minor: 1}, Code: 200, Description: "OK"},
			Headers: message.Headers{
				{Name: "Content-Type", Value: "text/plain"},
				{Name: "Content-Length", Value: "2"},
			},
			Body: message.SliceBody([]byte("hi")),
		}
	})
	srv := server.New(ln, handler)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Serve(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	c := New()
	reqCtx, reqCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer reqCancel()

	status, headers, body, err := c.Do(reqCtx, ln.Addr().String(),
		message.RequestLine{Method: "GET", RequestTarget: "/", Version: message.HTTPVersion{Major: 1, Minor: 1}},
		nil, message.NoneBody())
	require.NoError(t, err)
	require.Equal(t, uint16(200), status.Code)
	v, ok := headers.Get("Content-Type")
	require.True(t, ok)
	require.Equal(t, "text/plain", v)
	require.Equal(t, message.BodySlice, body.Kind)
	require.Equal(t, "hi", string(body.Slice))
}

// TestClientDoReadsBodyReaderAfterHeadBuffering forces the response
// body through the BodyReader dispatch path (by using a read buffer
// much smaller than the body) to exercise the case where the body is
// still being read from the connection after Do has returned.
func TestClientDoReadsBodyReaderAfterHeadBuffering(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	want := strings.Repeat("payload-byte.", 40)
	handler := server.HandlerFunc(func(req *server.Request) *server.Response {
		return &server.Response{
			Status: message.StatusLine{Version: message.HTTPVersion{Major: 1, Minor: 1}, Code: 200, Description: "OK"},
			Headers: message.Headers{
				{Name: "Content-Type", Value: "text/plain"},
				{Name: "Content-Length", Value: strconv.Itoa(len(want))},
			},
			Body: message.ReaderBody(strings.NewReader(want)),
		}
	})
	srv := server.New(ln, handler)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Serve(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	c := &Client{bufCap: 128}
	reqCtx, reqCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer reqCancel()

	status, _, body, err := c.Do(reqCtx, ln.Addr().String(),
		message.RequestLine{Method: "GET", RequestTarget: "/", Version: message.HTTPVersion{Major: 1, Minor: 1}},
		nil, message.NoneBody())
	require.NoError(t, err)
	require.Equal(t, uint16(200), status.Code)
	require.Equal(t, message.BodyReader, body.Kind)

	var buf bytes.Buffer
	_, err = io.Copy(&buf, body.Reader)
	require.NoError(t, err)
	require.Equal(t, want, buf.String())
}
