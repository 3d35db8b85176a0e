// Package client is the minimal dial-side collaborator that sends a
// request built from internal/message types over a real socket and reads
// the response back through internal/framing.
package client

import (
	"context"
	"io"
	"net"

	"github.com/shapestone/httpcodec/internal/framing"
	"github.com/shapestone/httpcodec/internal/message"
)

// Client sends one request per connection and reads back one response,
// closing the connection afterward. It does not pool or reuse
// connections; that concern is out of scope for this collaborator.
type Client struct {
	dialer net.Dialer
	bufCap int
}

// New returns a Client with the framing engine's default buffer
// capacity.
func New() *Client {
	return &Client{bufCap: framing.DefaultBufferCapacity}
}

// Do dials addr, writes the request, and returns the parsed response.
// If the response body is a BodyReader, it streams directly off conn,
// so conn stays open until that body is fully read (or closed by the
// caller); for every other body kind conn is closed before Do returns.
func (c *Client) Do(ctx context.Context, addr string, start message.RequestLine, headers message.Headers, body message.MessageBody) (message.StatusLine, message.Headers, message.MessageBody, error) {
	conn, err := c.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return message.StatusLine{}, nil, message.MessageBody{}, err
	}
	closeConn := func() { conn.Close() }

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	if err := framing.WriteMessage(conn, message.StartLine{Request: &start}, headers, body); err != nil {
		closeConn()
		return message.StatusLine{}, nil, message.MessageBody{}, err
	}

	dec := framing.NewDecoder(conn, c.bufCap)
	head, respBody, err := dec.ReadMessage()
	if err != nil {
		closeConn()
		return message.StatusLine{}, nil, message.MessageBody{}, err
	}

	if respBody.Kind == message.BodyReader {
		respBody.Reader = &connClosingReader{r: respBody.Reader, conn: conn}
	} else {
		closeConn()
	}
	return *head.Start.Response, head.Headers, respBody, nil
}

// connClosingReader closes the underlying connection the first time a
// Read returns an error (EOF or otherwise), since the BodyReader it
// wraps is the last thing on that connection Do's caller will read.
type connClosingReader struct {
	r      io.Reader
	conn   net.Conn
	closed bool
}

func (c *connClosingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if err != nil {
		c.Close()
	}
	return n, err
}

// Close lets a caller release the connection early without reading the
// body to completion.
func (c *connClosingReader) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}
