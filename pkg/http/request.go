package http

import "strconv"

// NewRequest builds a Request for method against url (parsed as a Uri),
// with no headers and no body.
func NewRequest(method, url string) *Request {
	return &Request{Method: method, Uri: ParseUri(url), Version: "HTTP/1.1"}
}

// Get builds a GET request.
func Get(url string) *Request { return NewRequest("GET", url) }

// Post builds a POST request.
func Post(url string) *Request { return NewRequest("POST", url) }

// Put builds a PUT request.
func Put(url string) *Request { return NewRequest("PUT", url) }

// Delete builds a DELETE request.
func Delete(url string) *Request { return NewRequest("DELETE", url) }

// Option builds an OPTION request. Singular to match the method token
// actually sent on the wire ("OPTION", not the registered "OPTIONS"
// method).
func Option(url string) *Request { return NewRequest("OPTION", url) }

// Header sets name to value on the request, replacing any prior value,
// and returns the request for chaining.
func (r *Request) Header(name, value string) *Request {
	r.Headers.Set(name, value)
	return r
}

// GetHeader returns the first value for name, or "" if absent.
func (r *Request) GetHeader(name string) string {
	return r.Headers.Get(name)
}

// RemoveHeader drops every header matching name and returns the request
// for chaining.
func (r *Request) RemoveHeader(name string) *Request {
	r.Headers.Del(name)
	return r
}

// WithBody sets the request body, auto-maintaining Content-Length
// unless Transfer-Encoding is chunked.
func (r *Request) WithBody(body []byte) *Request {
	r.Body = body
	if !r.Headers.IsChunked() {
		r.Headers.Set("Content-Length", strconv.Itoa(len(body)))
	}
	return r
}
