package http

import (
	"bytes"
	"io"

	"github.com/shapestone/httpcodec/internal/grammar"
)

// Validate checks that input is a syntactically valid HTTP/1.1 message
// head per RFC 9112: it parses the start line and all headers but does
// not evaluate body semantics.
func Validate(input string) error {
	_, _, _, err := grammar.MessageHead([]byte(input))
	if err == grammar.ErrIncomplete {
		return &ParseError{Message: "message head is incomplete"}
	}
	if err != nil {
		return &ParseError{Message: err.Error()}
	}
	return nil
}

// ValidateReader reads all of r and validates it as an HTTP/1.1 message
// head. See Validate for the validation semantics.
func ValidateReader(r io.Reader) error {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return err
	}
	return Validate(buf.String())
}
