package grammar

import (
	"github.com/shapestone/httpcodec/internal/bytesutil"
	"github.com/shapestone/httpcodec/internal/message"
)

// ChunkExt matches *( BWS ";" BWS chunk-ext-name [ BWS "=" BWS
// chunk-ext-val ] ), where chunk-ext-val is token or quoted-string.
func ChunkExt(data []byte) (int, message.ChunkExtensions, error) {
	pos := 0
	var exts message.ChunkExtensions
	for {
		save := pos
		pos += OWS(data[pos:])
		if pos >= len(data) {
			return 0, nil, ErrIncomplete
		}
		if data[pos] != ';' {
			pos = save
			break
		}
		pos++
		pos += OWS(data[pos:])

		nn, name, err := Token(data[pos:])
		if err != nil {
			return 0, nil, err
		}
		pos += nn

		lookPos := pos + OWS(data[pos:])
		if lookPos >= len(data) {
			return 0, nil, ErrIncomplete
		}

		var value *string
		if data[lookPos] == '=' {
			pos = lookPos + 1
			pos += OWS(data[pos:])
			if pos >= len(data) {
				return 0, nil, ErrIncomplete
			}
			if data[pos] == '"' {
				qn, qval, err := QuotedString(data[pos:])
				if err != nil {
					return 0, nil, err
				}
				pos += qn
				s := string(qval)
				value = &s
			} else {
				tn, tval, err := Token(data[pos:])
				if err != nil {
					return 0, nil, err
				}
				pos += tn
				s := string(tval)
				value = &s
			}
		} else {
			pos = lookPos
		}

		exts = append(exts, message.ChunkExtension{Name: string(name), Value: value})
	}
	return pos, exts, nil
}

// ChunkHead matches chunk-size [ chunk-ext ] CRLF and returns the parsed
// size along with any extensions. A size of zero signals the last-chunk
// (the grammar accepts any run of "0" digits as the canonical
// terminator, not just a single "0").
func ChunkHead(data []byte) (int, uint64, message.ChunkExtensions, error) {
	pos := 0

	sn, sizeDigits, err := hexDigits(data[pos:])
	if err != nil {
		return 0, 0, nil, err
	}
	pos += sn

	size, ok := bytesutil.ParseHexU64(sizeDigits)
	if !ok {
		return 0, 0, nil, newProtocolError("chunk-size out of range")
	}

	en, exts, err := ChunkExt(data[pos:])
	if err != nil {
		return 0, 0, nil, err
	}
	pos += en

	cn, err := CRLF(data[pos:])
	if err != nil {
		return 0, 0, nil, err
	}
	pos += cn

	return pos, size, exts, nil
}
