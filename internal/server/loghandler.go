package server

// AccessLogDecorator wraps a Handler and logs the request line then the
// response status line around each call. correlationID ties the line to
// one connection for log aggregation.
type AccessLogDecorator struct {
	inner  Handler
	logger *Logger
}

// NewAccessLogDecorator wraps inner, logging through logger.
func NewAccessLogDecorator(inner Handler, logger *Logger) *AccessLogDecorator {
	return &AccessLogDecorator{inner: inner, logger: logger}
}

// Handle implements Handler.
func (d *AccessLogDecorator) Handle(req *Request) *Response {
	correlationID, _ := req.Headers.Get("X-Connection-Id")
	line := req.Start.String()
	d.logger.Infof("request id=%s %s", correlationID, line)
	resp := d.inner.Handle(req)
	d.logger.Infof("response id=%s %s", correlationID, resp.Status.String())
	return resp
}
