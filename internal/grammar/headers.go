package grammar

import (
	"strings"

	"github.com/shapestone/httpcodec/internal/bytesutil"
	"github.com/shapestone/httpcodec/internal/message"
)

func isFieldByte(c byte) bool {
	return c == '\t' || c == ' ' || isVchar(c) || isObsText(c)
}

// lineUntilCRLF matches a run of field-vchar/SP/HTAB/obs-text bytes up to
// (but not including) the line terminator.
func lineUntilCRLF(data []byte) (int, []byte, error) {
	i := 0
	for i < len(data) && data[i] != '\r' && data[i] != '\n' {
		if !isFieldByte(data[i]) {
			return 0, nil, newProtocolError("invalid header field-value byte")
		}
		i++
	}
	if i == len(data) {
		return 0, nil, ErrIncomplete
	}
	return i, data[:i], nil
}

// HeaderField matches field-name ":" OWS field-value OWS, where
// field-value = *( field-content / obs-fold ) and obs-fold (CRLF 1*WS)
// collapses to a single SP in the resulting value. A value built only
// from a single line is converted straight from its input view; an
// obs-fold forces a concatenation first, via the canonical
// bytesutil.ToCow borrow-or-copy policy.
func HeaderField(data []byte) (int, message.Header, error) {
	pos := 0

	nn, name, err := Token(data[pos:])
	if err != nil {
		return 0, message.Header{}, err
	}
	pos += nn

	if pos >= len(data) {
		return 0, message.Header{}, ErrIncomplete
	}
	if data[pos] != ':' {
		return 0, message.Header{}, newProtocolError("expected ':' after header field-name")
	}
	pos++

	pos += OWS(data[pos:])

	var parts [][]byte
	for {
		ln, line, lerr := lineUntilCRLF(data[pos:])
		if lerr != nil {
			return 0, message.Header{}, lerr
		}
		pos += ln

		cn, cerr := CRLF(data[pos:])
		if cerr != nil {
			return 0, message.Header{}, cerr
		}
		pos += cn

		parts = append(parts, line)

		if pos >= len(data) {
			return 0, message.Header{}, ErrIncomplete
		}
		if data[pos] != ' ' && data[pos] != '\t' {
			break
		}
		// obs-fold: CRLF 1*(SP/HTAB). The fold collapses to a single SP;
		// since that SP has no backing-array adjacency to either
		// surrounding line, bytesutil.ToCow's reduction falls back to an
		// owned copy for the whole value, as required.
		pos += OWS(data[pos:])
		if pos >= len(data) {
			return 0, message.Header{}, ErrIncomplete
		}
		parts = append(parts, []byte(" "))
	}

	value := strings.TrimRight(bytesutil.ToCow(parts), " \t")
	return pos, message.Header{Name: string(name), Value: value}, nil
}

// Headers matches *( header-field CRLF ), terminated by the blank CRLF
// that ends the message head.
func Headers(data []byte) (int, message.Headers, error) {
	pos := 0
	var headers message.Headers
	for {
		if pos >= len(data) {
			return 0, nil, ErrIncomplete
		}
		if data[pos] == '\r' || data[pos] == '\n' {
			cn, err := CRLF(data[pos:])
			if err != nil {
				return 0, nil, err
			}
			pos += cn
			return pos, headers, nil
		}
		n, h, err := HeaderField(data[pos:])
		if err != nil {
			return 0, nil, err
		}
		pos += n
		headers = append(headers, h)
	}
}

// MessageHead matches start-line headers CRLF, the full head of an
// HTTP/1.1 message.
func MessageHead(data []byte) (int, message.StartLine, message.Headers, error) {
	n1, sl, err := StartLine(data)
	if err != nil {
		return 0, message.StartLine{}, nil, err
	}
	n2, headers, err := Headers(data[n1:])
	if err != nil {
		return 0, message.StartLine{}, nil, err
	}
	return n1 + n2, sl, headers, nil
}
