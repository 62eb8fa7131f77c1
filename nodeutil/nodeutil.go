package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// NamedChildrenOf returns the named children of a node, in source order
func NamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// UnnamedChildrenOf returns the anonymous children of a node, such as keywords
// and punctuation (e.g. the `public` and `static` tokens inside of `modifiers`)
func UnnamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	var children []*sitter.Node
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if !child.IsNamed() {
			children = append(children, child)
		}
	}
	return children
}

// FirstNamedChildOfType returns the first named child with one of the given
// types, or nil if there is none
func FirstNamedChildOfType(node *sitter.Node, types ...string) *sitter.Node {
	for _, child := range NamedChildrenOf(node) {
		for _, t := range types {
			if child.Type() == t {
				return child
			}
		}
	}
	return nil
}

// AssertTypeIs panics if the node is not of the expected type. It guards tree
// shapes that the grammar guarantees
func AssertTypeIs(node *sitter.Node, expectedType string) {
	if node == nil {
		panic(fmt.Errorf("expected node of type %s, got nil", expectedType))
	}
	if node.Type() != expectedType {
		panic(fmt.Errorf("expected node of type %s, got %s", expectedType, node.Type()))
	}
}
