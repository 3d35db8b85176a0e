// Package bytesutil provides the low-level slice and numeric helpers the
// grammar and framing layers build on: adjacency-preserving joins for
// rebuilding a single borrowed view across combinator branches, and the
// ASCII numeric decoding used for status codes and chunk sizes.
package bytesutil

import (
	"errors"
	"unicode/utf8"
)

// ErrNotAdjacent is returned by Join when the two slices do not describe
// contiguous regions of the same backing array.
var ErrNotAdjacent = errors.New("bytesutil: slices are not adjacent")

// Join returns a single slice spanning a and b when b begins exactly where
// a ends within the same backing array. This lets a restartable parser
// rebuild one borrowed view out of adjacent sub-matches (e.g. field-content
// either side of a run of interior whitespace) without copying.
func Join(a, b []byte) ([]byte, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}
	// cap(a) bounds the backing array visible from a; the start of b must
	// land exactly at a's end for the two to be a contiguous view.
	full := a[:len(a):cap(a)]
	joined := full[:cap(full)]
	if len(joined) < len(a)+len(b) {
		return nil, ErrNotAdjacent
	}
	candidate := joined[:len(a)+len(b)]
	if &candidate[len(a)] != &b[0] {
		return nil, ErrNotAdjacent
	}
	return candidate, nil
}

// Reduce folds a sequence of slices into one borrowed view when every
// consecutive pair is adjacent. On the first non-adjacent pair it returns
// the accumulated prefix, the residual (unreduced) tail, and false, so a
// caller can fall back to an owned copy of the residual.
func Reduce(parts [][]byte) (joined []byte, residual [][]byte, ok bool) {
	if len(parts) == 0 {
		return nil, nil, true
	}
	acc := parts[0]
	for i := 1; i < len(parts); i++ {
		next, err := Join(acc, parts[i])
		if err != nil {
			return acc, parts[i:], false
		}
		acc = next
	}
	return acc, nil, true
}

// ToCow implements the canonical borrow-or-copy policy for field-value
// decoding: when the parts reduce to one adjacent, valid-UTF-8 view it is
// converted to a string directly, with no intermediate concatenation
// buffer (the string conversion itself still copies the bytes once);
// otherwise the parts are first concatenated into a new buffer.
func ToCow(parts [][]byte) string {
	joined, residual, ok := Reduce(parts)
	if ok && utf8.Valid(joined) {
		return string(joined)
	}
	total := len(joined)
	for _, r := range residual {
		total += len(r)
	}
	out := make([]byte, 0, total)
	out = append(out, joined...)
	for _, r := range residual {
		out = append(out, r...)
	}
	return string(out)
}

// AsciiDigit converts a single ASCII digit byte to its numeric value.
// The caller must have already validated that b is '0'..'9'.
func AsciiDigit(b byte) uint8 {
	return b - '0'
}

// ParseU8 parses a run of ASCII decimal digits into a uint8.
func ParseU8(digits []byte) (uint8, bool) {
	v, ok := parseUint(digits, 10, 8)
	return uint8(v), ok
}

// ParseU16 parses a run of ASCII decimal digits into a uint16 (used for
// the 3DIGIT status-code production, amongst others).
func ParseU16(digits []byte) (uint16, bool) {
	v, ok := parseUint(digits, 10, 16)
	return uint16(v), ok
}

// ParseHexU64 parses a run of ASCII hex digits into a uint64 (chunk sizes).
func ParseHexU64(digits []byte) (uint64, bool) {
	return parseUint(digits, 16, 64)
}

func parseUint(digits []byte, base int, bits int) (uint64, bool) {
	if len(digits) == 0 {
		return 0, false
	}
	var max uint64 = 1<<uint(bits) - 1
	var v uint64
	for _, c := range digits {
		var d uint64
		switch {
		case c >= '0' && c <= '9':
			d = uint64(c - '0')
		case base == 16 && c >= 'a' && c <= 'f':
			d = uint64(c-'a') + 10
		case base == 16 && c >= 'A' && c <= 'F':
			d = uint64(c-'A') + 10
		default:
			return 0, false
		}
		if d >= uint64(base) {
			return 0, false
		}
		v = v*uint64(base) + d
		if v > max {
			return 0, false
		}
	}
	return v, true
}
