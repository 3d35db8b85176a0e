package message

import (
	"fmt"
	"strings"
)

// ParseTransferEncoding parses a single Transfer-Encoding header value,
// a comma-separated 1#transfer-coding list, into its coding sequence.
// transfer-coding = "chunked" / "compress" / "deflate" / "gzip" /
// transfer-extension, where transfer-extension is a token followed by
// zero or more ";" transfer-parameter segments.
func ParseTransferEncoding(value string) ([]TransferCoding, error) {
	parts := splitTransferCodingList(value)
	if len(parts) == 0 {
		return nil, fmt.Errorf("message: empty Transfer-Encoding value")
	}
	out := make([]TransferCoding, 0, len(parts))
	for _, part := range parts {
		coding, err := parseTransferCoding(part)
		if err != nil {
			return nil, err
		}
		out = append(out, coding)
	}
	return out, nil
}

// splitTransferCodingList splits on commas that are not inside a
// quoted-string transfer-parameter value.
func splitTransferCodingList(value string) []string {
	var parts []string
	start := 0
	inQuotes := false
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				parts = append(parts, strings.TrimSpace(value[start:i]))
				start = i + 1
			}
		}
	}
	tail := strings.TrimSpace(value[start:])
	if tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

func parseTransferCoding(part string) (TransferCoding, error) {
	segments := splitParameterSegments(part)
	if len(segments) == 0 {
		return TransferCoding{}, fmt.Errorf("message: malformed transfer-coding %q", part)
	}
	name := strings.TrimSpace(segments[0])
	if !isToken(name) {
		return TransferCoding{}, fmt.Errorf("message: invalid transfer-coding name %q", name)
	}

	switch strings.ToLower(name) {
	case "chunked":
		return TransferCoding{Name: Chunked}, nil
	case "compress":
		return TransferCoding{Name: Compress}, nil
	case "deflate":
		return TransferCoding{Name: Deflate}, nil
	case "gzip":
		return TransferCoding{Name: Gzip}, nil
	}

	params := make([]TransferParameter, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		param, err := parseTransferParameter(seg)
		if err != nil {
			return TransferCoding{}, err
		}
		params = append(params, param)
	}
	return TransferCoding{Name: Extension, ExtensionName: name, Params: params}, nil
}

// splitParameterSegments splits "name ; k=v ; k2=v2" on unquoted ';'.
func splitParameterSegments(s string) []string {
	var segs []string
	start := 0
	inQuotes := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inQuotes = !inQuotes
		case ';':
			if !inQuotes {
				segs = append(segs, s[start:i])
				start = i + 1
			}
		}
	}
	segs = append(segs, s[start:])
	return segs
}

func parseTransferParameter(seg string) (TransferParameter, error) {
	eq := strings.IndexByte(seg, '=')
	if eq < 0 {
		name := strings.TrimSpace(seg)
		if !isToken(name) {
			return TransferParameter{}, fmt.Errorf("message: invalid transfer-parameter name %q", name)
		}
		return TransferParameter{Name: name}, nil
	}
	name := strings.TrimSpace(seg[:eq])
	if !isToken(name) {
		return TransferParameter{}, fmt.Errorf("message: invalid transfer-parameter name %q", name)
	}
	raw := strings.TrimSpace(seg[eq+1:])
	value, err := unquoteOrToken(raw)
	if err != nil {
		return TransferParameter{}, err
	}
	return TransferParameter{Name: name, Value: &value}, nil
}

func unquoteOrToken(raw string) (string, error) {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		var b strings.Builder
		inner := raw[1 : len(raw)-1]
		for i := 0; i < len(inner); i++ {
			if inner[i] == '\\' && i+1 < len(inner) {
				i++
				b.WriteByte(inner[i])
				continue
			}
			b.WriteByte(inner[i])
		}
		return b.String(), nil
	}
	if !isToken(raw) {
		return "", fmt.Errorf("message: invalid transfer-parameter value %q", raw)
	}
	return raw, nil
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTchar(s[i]) {
			return false
		}
	}
	return true
}

func isTchar(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case strings.IndexByte("!#$%&'*+-.^_`|~", c) >= 0:
		return true
	}
	return false
}
