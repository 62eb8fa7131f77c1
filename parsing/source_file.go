package parsing

import (
	"context"
	"errors"
	"fmt"

	"github.com/NickyBoy89/javasrc/symbol"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// ErrNotParsed is returned when the symbols of a file are requested before
// its AST was built
var ErrNotParsed = errors.New("source file has not been parsed")

// SourceFile is a single unit of Java source, along with its parsed tree
type SourceFile struct {
	// Name is used only for diagnostics
	Name   string
	Source []byte
	// Ast is the root `program` node, populated by ParseAST
	Ast *sitter.Node
}

// ParseAST parses the file's source with the Java grammar
func (file *SourceFile) ParseAST() error {
	return file.ParseASTCtx(context.Background())
}

// ParseASTCtx parses the file's source with the Java grammar, stopping early if
// the context is cancelled
func (file *SourceFile) ParseASTCtx(ctx context.Context) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, file.Source)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", file.Name, err)
	}
	file.Ast = tree.RootNode()
	return nil
}

// HasErrors reports whether the parsed tree contains any syntax errors
func (file *SourceFile) HasErrors() bool {
	return file.Ast != nil && file.Ast.HasError()
}

// ParseSymbols builds the symbol table for the file. ParseAST must be called first
func (file *SourceFile) ParseSymbols() (*symbol.FileScope, error) {
	if file.Ast == nil {
		return nil, fmt.Errorf("%s: %w", file.Name, ErrNotParsed)
	}
	return symbol.ParseSymbols(file.Ast, file.Source), nil
}
