// Package tokenizer provides HTTP tokenization using shape-core's
// tokenizer framework. internal/astview does not use it: it builds its
// AST nodes from internal/grammar's parse results.
package tokenizer

// Token type constants for HTTP format. HTTP is line-oriented, so tokens
// represent logical elements of HTTP messages and chunked-body framing.
const (
	// Start-line tokens
	TokenMethod     = "Method"
	TokenPath       = "Path"
	TokenVersion    = "Version"
	TokenStatusCode = "StatusCode"
	TokenReason     = "Reason"

	// Header tokens
	TokenHeaderName  = "HeaderName"
	TokenHeaderColon = "HeaderColon"
	TokenHeaderValue = "HeaderValue"

	// Structural tokens
	TokenSP   = "SP"
	TokenCRLF = "CRLF"

	// Chunk framing tokens
	TokenChunkSize  = "ChunkSize"
	TokenSemicolon  = "Semicolon"
	TokenEquals     = "Equals"
	TokenQuote      = "Quote"
	TokenExtName    = "ExtName"
	TokenExtValue   = "ExtValue"

	// Body tokens
	TokenBody = "Body"

	// Special
	TokenEOF = "EOF"
)
