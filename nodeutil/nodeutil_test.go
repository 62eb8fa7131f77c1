package nodeutil

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

func parseJava(t *testing.T, source string) *sitter.Node {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}
	return tree.RootNode()
}

func TestNamedAndUnnamedChildren(t *testing.T) {
	source := "class C { public static <T> void m() {} }"
	root := parseJava(t, source)

	class := FirstNamedChildOfType(root, "class_declaration")
	if class == nil {
		t.Fatalf("Expected a class_declaration in %s", root.String())
	}
	body := class.ChildByFieldName("body")
	method := FirstNamedChildOfType(body, "method_declaration")
	if method == nil {
		t.Fatalf("Expected a method_declaration in %s", body.String())
	}

	modifiers := method.NamedChild(0)
	AssertTypeIs(modifiers, "modifiers")

	var keywords []string
	for _, node := range UnnamedChildrenOf(modifiers) {
		keywords = append(keywords, node.Type())
	}
	if len(keywords) != 2 || keywords[0] != "public" || keywords[1] != "static" {
		t.Errorf("Expected [public static], got %v", keywords)
	}

	named := NamedChildrenOf(method.ChildByFieldName("type_parameters"))
	if len(named) != 1 || named[0].Type() != "type_parameter" {
		t.Errorf("Expected a single type_parameter, got %v", named)
	}
}

func TestNilNodes(t *testing.T) {
	if got := NamedChildrenOf(nil); got != nil {
		t.Errorf("Expected nil children for nil node, got %v", got)
	}
	if got := UnnamedChildrenOf(nil); got != nil {
		t.Errorf("Expected nil children for nil node, got %v", got)
	}
	if got := FirstNamedChildOfType(nil, "identifier"); got != nil {
		t.Errorf("Expected nil for nil node, got %v", got)
	}
}

func TestAssertTypeIsPanics(t *testing.T) {
	root := parseJava(t, "class C {}")
	defer func() {
		if recover() == nil {
			t.Error("Expected AssertTypeIs to panic on mismatched type")
		}
	}()
	AssertTypeIs(root, "class_declaration")
}
