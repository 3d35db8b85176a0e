package grammar

import (
	"github.com/shapestone/httpcodec/internal/bytesutil"
	"github.com/shapestone/httpcodec/internal/message"
)

// Version matches HTTP-version = HTTP-name "/" DIGIT "." DIGIT.
func Version(data []byte) (int, message.HTTPVersion, error) {
	const prefix = "HTTP/"
	if len(data) < len(prefix) {
		if hasPrefixOf(data, prefix) {
			return 0, message.HTTPVersion{}, ErrIncomplete
		}
		return 0, message.HTTPVersion{}, newProtocolError("expected HTTP-version")
	}
	if string(data[:len(prefix)]) != prefix {
		return 0, message.HTTPVersion{}, newProtocolError("expected HTTP-version")
	}
	if len(data) < len(prefix)+3 {
		return 0, message.HTTPVersion{}, ErrIncomplete
	}
	major := data[len(prefix)]
	dot := data[len(prefix)+1]
	minor := data[len(prefix)+2]
	if !isDigit(major) {
		return 0, message.HTTPVersion{}, newProtocolError("invalid HTTP-version major digit")
	}
	if dot != '.' {
		return 0, message.HTTPVersion{}, newProtocolError("expected '.' in HTTP-version")
	}
	if !isDigit(minor) {
		return 0, message.HTTPVersion{}, newProtocolError("invalid HTTP-version minor digit")
	}
	return len(prefix) + 3, message.HTTPVersion{
		Major: bytesutil.AsciiDigit(major),
		Minor: bytesutil.AsciiDigit(minor),
	}, nil
}

func hasPrefixOf(data []byte, prefix string) bool {
	if len(data) > len(prefix) {
		return false
	}
	return string(prefix[:len(data)]) == string(data)
}

// requestTarget matches any non-space byte run.
func requestTarget(data []byte) (int, []byte, error) {
	i := 0
	for i < len(data) && data[i] != ' ' {
		i++
	}
	if i == len(data) {
		return 0, nil, ErrIncomplete
	}
	if i == 0 {
		return 0, nil, newProtocolError("empty request-target")
	}
	return i, data[:i], nil
}

// RequestLine matches method SP request-target SP HTTP-version CRLF.
func RequestLine(data []byte) (int, message.RequestLine, error) {
	pos := 0

	mn, method, err := Token(data[pos:])
	if err != nil {
		return 0, message.RequestLine{}, err
	}
	pos += mn

	sn1, err := SP(data[pos:])
	if err != nil {
		return 0, message.RequestLine{}, err
	}
	pos += sn1

	tn, target, err := requestTarget(data[pos:])
	if err != nil {
		return 0, message.RequestLine{}, err
	}
	pos += tn

	sn2, err := SP(data[pos:])
	if err != nil {
		return 0, message.RequestLine{}, err
	}
	pos += sn2

	vn, version, err := Version(data[pos:])
	if err != nil {
		return 0, message.RequestLine{}, err
	}
	pos += vn

	cn, err := CRLF(data[pos:])
	if err != nil {
		return 0, message.RequestLine{}, err
	}
	pos += cn

	return pos, message.RequestLine{
		Method:        string(method),
		RequestTarget: string(target),
		Version:       version,
	}, nil
}

// statusCode matches 3DIGIT, parsed as an unsigned 16-bit integer.
func statusCode(data []byte) (int, uint16, error) {
	if len(data) < 3 {
		if allDigits(data) {
			return 0, 0, ErrIncomplete
		}
		return 0, 0, newProtocolError("expected 3DIGIT status-code")
	}
	for i := 0; i < 3; i++ {
		if !isDigit(data[i]) {
			return 0, 0, newProtocolError("expected 3DIGIT status-code")
		}
	}
	code, ok := bytesutil.ParseU16(data[:3])
	if !ok {
		return 0, 0, newProtocolError("status-code out of range")
	}
	return 3, code, nil
}

func allDigits(data []byte) bool {
	for _, c := range data {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

func isReasonByte(c byte) bool {
	return c == '\t' || c == ' ' || isVchar(c) || isObsText(c)
}

// reasonPhrase matches *( HTAB / SP / VCHAR / obs-text ), ending at CRLF.
func reasonPhrase(data []byte) (int, []byte, error) {
	i := 0
	for i < len(data) {
		c := data[i]
		if c == '\r' || c == '\n' {
			return i, data[:i], nil
		}
		if !isReasonByte(c) {
			return 0, nil, newProtocolError("invalid reason-phrase byte")
		}
		i++
	}
	return 0, nil, ErrIncomplete
}

// StatusLine matches HTTP-version SP status-code SP reason-phrase CRLF.
func StatusLine(data []byte) (int, message.StatusLine, error) {
	pos := 0

	vn, version, err := Version(data[pos:])
	if err != nil {
		return 0, message.StatusLine{}, err
	}
	pos += vn

	sn1, err := SP(data[pos:])
	if err != nil {
		return 0, message.StatusLine{}, err
	}
	pos += sn1

	scn, code, err := statusCode(data[pos:])
	if err != nil {
		return 0, message.StatusLine{}, err
	}
	pos += scn

	sn2, err := SP(data[pos:])
	if err != nil {
		return 0, message.StatusLine{}, err
	}
	pos += sn2

	rn, reason, err := reasonPhrase(data[pos:])
	if err != nil {
		return 0, message.StatusLine{}, err
	}
	pos += rn

	cn, err := CRLF(data[pos:])
	if err != nil {
		return 0, message.StatusLine{}, err
	}
	pos += cn

	return pos, message.StatusLine{
		Version:     version,
		Code:        code,
		Description: string(reason),
	}, nil
}

// StartLine matches request-line / status-line (ordered alternatives).
// Request-lines and status-lines are distinguished by the fixed "HTTP/"
// prefix that only a status-line's version token can open with.
func StartLine(data []byte) (int, message.StartLine, error) {
	if looksLikeStatusLine(data) {
		n, sl, err := StatusLine(data)
		if err != nil {
			return 0, message.StartLine{}, err
		}
		return n, message.StartLine{Response: &sl}, nil
	}
	n, rl, err := RequestLine(data)
	if err != nil {
		return 0, message.StartLine{}, err
	}
	return n, message.StartLine{Request: &rl}, nil
}

func looksLikeStatusLine(data []byte) bool {
	const prefix = "HTTP/"
	limit := len(prefix)
	if limit > len(data) {
		limit = len(data)
	}
	return string(data[:limit]) == prefix[:limit]
}
