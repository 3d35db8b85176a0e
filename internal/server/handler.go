// Package server is the listener/accept-loop collaborator: it drives
// internal/framing over accepted connections, dispatches each parsed
// message to a Handler, and writes back the Handler's Response. It also
// supplies the FileHandler and access-log decorator collaborators named
// alongside the core codec.
package server

import (
	"strconv"

	"github.com/shapestone/httpcodec/internal/message"
)

// Request is the message a Handler receives: the parsed start-line,
// headers, and dispatched body.
type Request struct {
	Start   message.StartLine
	Headers message.Headers
	Body    message.MessageBody
}

// Response is what a Handler returns: a status line, headers, and body
// to serialize back to the client.
type Response struct {
	Status  message.StatusLine
	Headers message.Headers
	Body    message.MessageBody
}

// Handler handles one request and produces one response. Implementations
// must not retain req or its Body past the call: the body's underlying
// bytes/reader are only valid until the connection loop drains and moves
// on to the next message.
type Handler interface {
	Handle(req *Request) *Response
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(req *Request) *Response

// Handle calls f(req).
func (f HandlerFunc) Handle(req *Request) *Response { return f(req) }

func statusLine(code uint16, reason string) message.StatusLine {
	return message.StatusLine{Version: message.HTTPVersion{Major: 1, Minor: 1}, Code: code, Description: reason}
}

func textResponse(code uint16, reason, text string) *Response {
	return &Response{
		Status: statusLine(code, reason),
		Headers: message.Headers{
			{Name: "Content-Type", Value: "text/plain"},
			{Name: "Content-Length", Value: strconv.Itoa(len(text))},
		},
		Body: message.SliceBody([]byte(text)),
	}
}
