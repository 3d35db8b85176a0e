package http

import "strconv"

// NewResponse builds a Response for the given status, auto-setting
// Content-Length to 0 (no body yet).
func NewResponse(code int, reason string) *Response {
	r := &Response{Version: "HTTP/1.1", StatusCode: code, Reason: reason}
	r.Headers.Set("Content-Length", "0")
	return r
}

// Ok builds a 200 OK response.
func Ok() *Response { return NewResponse(200, "OK") }

// BadRequest builds a 400 Bad Request response.
func BadRequest() *Response { return NewResponse(400, "Bad Request") }

// Unauthorized builds a 401 Unauthorized response.
func Unauthorized() *Response { return NewResponse(401, "Unauthorized") }

// NotFound builds a 404 Not Found response.
func NotFound() *Response { return NewResponse(404, "Not Found") }

// MethodNotAllowed builds a 405 Method Not Allowed response.
func MethodNotAllowed() *Response { return NewResponse(405, "Method Not Allowed") }

// Header sets name to value on the response and returns it for
// chaining.
func (r *Response) Header(name, value string) *Response {
	r.Headers.Set(name, value)
	return r
}

// GetHeader returns the first value for name, or "" if absent.
func (r *Response) GetHeader(name string) string {
	return r.Headers.Get(name)
}

// RemoveHeader drops every header matching name and returns the
// response for chaining.
func (r *Response) RemoveHeader(name string) *Response {
	r.Headers.Del(name)
	return r
}

// WithBody sets the response body and maintains Content-Length unless
// Transfer-Encoding is chunked.
func (r *Response) WithBody(body []byte) *Response {
	r.Body = body
	if !r.Headers.IsChunked() {
		r.Headers.Set("Content-Length", strconv.Itoa(len(body)))
	}
	return r
}

// Message sets reason, a text/plain Content-Type, and body to message,
// for quick error-page bodies.
func (r *Response) Message(text string) *Response {
	r.Reason = text
	r.Header("Content-Type", "text/plain")
	return r.WithBody([]byte(text))
}
