package server

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shapestone/httpcodec/internal/message"
)

// FileHandler serves files rooted at base, mirroring the original
// implementation's FileHandler: GET only, path escapes rejected with
// 401, directories with 404, and a successful GET streamed back with a
// Reader-backed body (so serving a large file never requires buffering
// it whole).
type FileHandler struct {
	base string
}

// NewFileHandler returns a FileHandler rooted at base.
func NewFileHandler(base string) *FileHandler {
	return &FileHandler{base: base}
}

// Handle implements Handler.
func (f *FileHandler) Handle(req *Request) *Response {
	if req.Start.Request == nil || req.Start.Request.Method != "GET" {
		return textResponse(405, "Method Not Allowed", "Method Not Allowed")
	}
	return f.get(req.Start.Request.RequestTarget)
}

func (f *FileHandler) get(target string) *Response {
	path := target
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if !strings.HasPrefix(path, "/") {
		return textResponse(400, "Bad Request", "Bad Request")
	}

	joined := filepath.Join(f.base, path[1:])
	full, err := filepath.EvalSymlinks(joined)
	if err != nil {
		return textResponse(404, "Not Found", "Not Found")
	}
	base, err := filepath.EvalSymlinks(f.base)
	if err != nil {
		return textResponse(404, "Not Found", "Not Found")
	}
	if full != base && !strings.HasPrefix(full, base+string(os.PathSeparator)) {
		return textResponse(401, "Unauthorized", "Not allowed outside of base")
	}

	file, err := os.Open(full)
	if err != nil {
		return textResponse(404, "Not Found", "Not Found")
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return textResponse(404, "Not Found", "Not Found")
	}
	if info.IsDir() {
		file.Close()
		return textResponse(404, "Not Found", "Path denotes a directory")
	}

	return &Response{
		Status: statusLine(200, "OK"),
		Headers: message.Headers{
			{Name: "Content-Type", Value: "text/plain"},
			{Name: "Content-Length", Value: strconv.FormatInt(info.Size(), 10)},
		},
		Body: message.ReaderBody(file),
	}
}
