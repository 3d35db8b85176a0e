package astview

import (
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestParseRequestProducesObjectNode(t *testing.T) {
	input := "GET /where?q=now HTTP/1.1\r\nContent-Type:plain/text\r\n\r\n"
	node, err := New([]byte(input)).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("expected ObjectNode, got %T", node)
	}
	props := obj.Properties()
	lit, ok := props["method"].(*ast.LiteralNode)
	if !ok || lit.Value() != "GET" {
		t.Fatalf("method = %+v", props["method"])
	}
	headers, err := NodeToHeaders(props["headers"])
	if err != nil {
		t.Fatalf("NodeToHeaders: %v", err)
	}
	if v, ok := headers.Get("Content-Type"); !ok || v != "plain/text" {
		t.Fatalf("headers = %+v", headers)
	}
}

func TestParseResponseWithBody(t *testing.T) {
	input := "HTTP/1.1 200 OK\r\nContent-Type:plain/text\r\nContent-Length:3\r\n\r\nabc"
	node, err := New([]byte(input)).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	obj := node.(*ast.ObjectNode)
	props := obj.Properties()
	if lit, ok := props["statusCode"].(*ast.LiteralNode); !ok || lit.Value() != int64(200) {
		t.Fatalf("statusCode = %+v", props["statusCode"])
	}
	if lit, ok := props["body"].(*ast.LiteralNode); !ok || lit.Value() != "abc" {
		t.Fatalf("body = %+v", props["body"])
	}
}
