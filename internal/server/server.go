package server

import (
	"context"
	"io"
	"net"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shapestone/httpcodec/internal/framing"
	"github.com/shapestone/httpcodec/internal/message"
)

// Server accepts connections and dispatches each successive message on
// a connection to a Handler, one goroutine per connection.
type Server struct {
	listener net.Listener
	handler  Handler
	bufCap   int
}

// New wraps an already-bound listener.
func New(listener net.Listener, handler Handler) *Server {
	return &Server{listener: listener, handler: handler, bufCap: framing.DefaultBufferCapacity}
}

// Listen binds host:port and returns a Server for it.
func Listen(host string, port int, handler Handler) (*Server, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, err
	}
	return New(ln, handler), nil
}

// Addr returns the server's bound address (useful when port 0 was
// requested and the kernel picked one).
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until ctx is canceled or Accept fails,
// running each connection's read-dispatch-write loop in its own
// goroutine supervised by an errgroup.
func (s *Server) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-ctx.Done()
		return s.listener.Close()
	})

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return err
			}
		}
		connID := uuid.New().String()
		g.Go(func() error {
			s.serveConn(conn, connID)
			return nil
		})
	}
}

func (s *Server) serveConn(conn net.Conn, connID string) {
	defer conn.Close()
	dec := framing.NewDecoder(conn, s.bufCap)

	for {
		head, body, err := dec.ReadMessage()
		if err != nil {
			return
		}

		req := &Request{Start: head.Start, Headers: head.Headers, Body: body}
		req.Headers = req.Headers.Replace("X-Connection-Id", connID)
		resp := s.handler.Handle(req)

		start := message.StartLine{Response: &resp.Status}
		if err := framing.WriteMessage(conn, start, resp.Headers, resp.Body); err != nil {
			closeReaderBody(resp.Body)
			return
		}
		closeReaderBody(resp.Body)
	}
}

func closeReaderBody(body message.MessageBody) {
	if body.Kind != message.BodyReader {
		return
	}
	if closer, ok := body.Reader.(io.Closer); ok {
		closer.Close()
	}
}
