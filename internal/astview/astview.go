// Package astview produces shape-core AST nodes from parsed HTTP
// messages, built on internal/grammar's typed message model instead of
// a standalone byte scanner, and extended with chunked-body and trailer
// representation.
//
// The HTTP message is mapped to an ObjectNode with the following shape:
//
//	Request:  {"type":"request","method":"GET","path":"/api",
//	           "version":"HTTP/1.1","headers":[{"key":...,"value":...}],
//	           "body":"...","chunked":false}
//	Response: {"type":"response","version":"HTTP/1.1","statusCode":200,
//	           "reason":"OK","headers":[...],"body":"...","chunked":false}
package astview

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/httpcodec/internal/grammar"
	"github.com/shapestone/httpcodec/internal/message"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from HTTP wire-format data. Unlike the
// streaming framing engine, it always fully materializes the body (a
// Content-Length or chunked body is read to completion) since the AST
// representation has no notion of a borrowed/streaming entity.
type Parser struct {
	data []byte
}

// New creates an AST parser for the given input.
func New(data []byte) *Parser {
	return &Parser{data: data}
}

// Parse parses the HTTP message head and materialized body, returning
// an AST ObjectNode.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	headLen, start, headers, err := grammar.MessageHead(p.data)
	if err != nil {
		return nil, err
	}
	rest := p.data[headLen:]

	chunked, _ := headers.TransferEncoding()
	isChunked := false
	for _, c := range chunked {
		if c.IsChunked() {
			isChunked = true
		}
	}

	var body []byte
	var chunkedBody *message.ChunkedBody
	switch {
	case isChunked:
		cb, consumed, err := materializeChunkedBody(rest)
		if err != nil {
			return nil, err
		}
		chunkedBody = cb
		_ = consumed
	default:
		if n, ok := headers.ContentLength(); ok && n > 0 {
			if uint64(len(rest)) < n {
				return nil, grammar.ErrIncomplete
			}
			body = rest[:n]
		}
	}

	if start.IsRequest() {
		return requestToNode(start.Request, headers, body, chunkedBody), nil
	}
	return responseToNode(start.Response, headers, body, chunkedBody), nil
}

func materializeChunkedBody(data []byte) (*message.ChunkedBody, int, error) {
	pos := 0
	var chunks []message.Chunk
	for {
		n, size, ext, err := grammar.ChunkHead(data[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += n
		if size == 0 {
			trailerLen, trailers, err := grammar.Headers(data[pos:])
			if err != nil {
				return nil, 0, err
			}
			pos += trailerLen
			return &message.ChunkedBody{Chunks: chunks, Last: ext, Trailers: trailers}, pos, nil
		}
		if uint64(len(data[pos:])) < size+2 {
			return nil, 0, grammar.ErrIncomplete
		}
		payload := data[pos : pos+int(size)]
		pos += int(size)
		cn, err := grammar.CRLF(data[pos:])
		if err != nil {
			return nil, 0, err
		}
		pos += cn
		chunks = append(chunks, message.Chunk{Kind: message.ChunkSlice, Extensions: ext, Payload: payload})
	}
}

func headersToNode(headers message.Headers) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(headers))
	for i, h := range headers {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(h.Name, zeroPos),
			"value": ast.NewLiteralNode(h.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

func requestToNode(rl *message.RequestLine, headers message.Headers, body []byte, chunked *message.ChunkedBody) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(rl.Method, zeroPos),
		"path":    ast.NewLiteralNode(rl.RequestTarget, zeroPos),
		"version": ast.NewLiteralNode(rl.Version.String(), zeroPos),
		"headers": headersToNode(headers),
		"chunked": ast.NewLiteralNode(chunked != nil, zeroPos),
	}
	if chunked != nil {
		props["body"] = ast.NewLiteralNode(string(chunked.Bytes()), zeroPos)
	} else if body != nil {
		props["body"] = ast.NewLiteralNode(string(body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func responseToNode(sl *message.StatusLine, headers message.Headers, body []byte, chunked *message.ChunkedBody) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(sl.Version.String(), zeroPos),
		"statusCode": ast.NewLiteralNode(int64(sl.Code), zeroPos),
		"reason":     ast.NewLiteralNode(sl.Description, zeroPos),
		"headers":    headersToNode(headers),
		"chunked":    ast.NewLiteralNode(chunked != nil, zeroPos),
	}
	if chunked != nil {
		props["body"] = ast.NewLiteralNode(string(chunked.Bytes()), zeroPos)
	} else if body != nil {
		props["body"] = ast.NewLiteralNode(string(body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToHeaders converts an AST ArrayDataNode of {key,value} objects back
// to message.Headers.
func NodeToHeaders(node ast.SchemaNode) (message.Headers, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("astview: expected ArrayDataNode for headers, got %T", node)
	}
	elements := arr.Elements()
	headers := make(message.Headers, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		var h message.Header
		if v, ok := props["key"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				h.Name, _ = lit.Value().(string)
			}
		}
		if v, ok := props["value"]; ok {
			if lit, ok := v.(*ast.LiteralNode); ok {
				h.Value, _ = lit.Value().(string)
			}
		}
		headers = append(headers, h)
	}
	return headers, nil
}
