package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// New creates a tokenizer for HTTP format. HTTP is line-oriented, so the
// tokenizer uses matchers that work at the line level:
//  1. CRLF (line endings)
//  2. SP (space separator)
//  3. Colon (header separator)
//  4. Semicolon/Equals/Quote (chunk-extension separators)
//  5. HTTP version string
//  6. Generic text (method, path, header names/values, chunk sizes, etc.)
//
// Unlike JSON, HTTP doesn't use the default whitespace skipper because
// spaces and line endings are semantically significant.
func New() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		CRLFMatcher(),
		SPMatcher(),
		tokenizer.StringMatcherFunc(TokenHeaderColon, ":"),
		tokenizer.StringMatcherFunc(TokenSemicolon, ";"),
		tokenizer.StringMatcherFunc(TokenEquals, "="),
		tokenizer.StringMatcherFunc(TokenQuote, "\""),
		VersionMatcher(),
		TextMatcher(),
	)
}

// NewWithStream creates a tokenizer for HTTP format using a pre-configured
// stream.
func NewWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := New()
	tok.InitializeFromStream(stream)
	return tok
}

// CRLFMatcher matches \r\n or bare \n; a lone \r is also emitted as a
// CRLF token.
func CRLFMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		if r == '\r' {
			value := []rune{'\r'}
			stream.NextChar()
			if r2, ok := stream.PeekChar(); ok && r2 == '\n' {
				stream.NextChar()
				value = append(value, '\n')
			}
			return tokenizer.NewToken(TokenCRLF, value)
		}
		if r == '\n' {
			stream.NextChar()
			return tokenizer.NewToken(TokenCRLF, []rune{'\n'})
		}
		return nil
	}
}

// SPMatcher matches a single space character.
func SPMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok {
			return nil
		}
		if r == ' ' {
			stream.NextChar()
			return tokenizer.NewToken(TokenSP, []rune{' '})
		}
		return nil
	}
}

// VersionMatcher matches "HTTP/" followed by digits and a dot.
func VersionMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		prefix := []rune("HTTP/")
		var value []rune

		for _, expected := range prefix {
			r, ok := stream.PeekChar()
			if !ok || r != expected {
				return nil
			}
			stream.NextChar()
			value = append(value, r)
		}

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if (r >= '0' && r <= '9') || r == '.' {
				stream.NextChar()
				value = append(value, r)
			} else {
				break
			}
		}

		return tokenizer.NewToken(TokenVersion, value)
	}
}

// TextMatcher matches any run of characters until SP, CRLF, colon,
// semicolon, equals, quote, or end of stream. Used for methods, paths,
// header names/values, chunk sizes, and extension names/values.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == ' ' || r == '\r' || r == '\n' || r == ':' || r == ';' || r == '=' || r == '"' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken("Text", value)
	}
}

// HeaderValueMatcher matches everything after the colon until CRLF,
// including interior spaces and colons.
func HeaderValueMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == '\r' || r == '\n' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenHeaderValue, value)
	}
}

// QuotedStringMatcher matches a quoted-string body (the text between the
// opening and closing DQUOTE, honoring backslash quoted-pairs) used for
// chunk-ext-val and transfer-parameter values.
func QuotedStringMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune
		for {
			r, ok := stream.PeekChar()
			if !ok || r == '"' {
				break
			}
			if r == '\\' {
				stream.NextChar()
				r2, ok2 := stream.PeekChar()
				if !ok2 {
					break
				}
				stream.NextChar()
				value = append(value, r2)
				continue
			}
			stream.NextChar()
			value = append(value, r)
		}
		return tokenizer.NewToken(TokenExtValue, value)
	}
}
