package symbol

import (
	"strings"

	"github.com/NickyBoy89/javasrc/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
)

func isJavaTypeNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case "integral_type", "floating_point_type", "void_type", "boolean_type",
		"generic_type", "array_type", "type_identifier", "scoped_type_identifier",
		"annotated_type":
		return true
	default:
		return false
	}
}

func extractTypeParameterBounds(param *sitter.Node, source []byte) []JavaType {
	if param == nil {
		return nil
	}

	var boundTypeNodes []*sitter.Node
	var collectFrom func(n *sitter.Node)
	collectFrom = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if isJavaTypeNode(n) {
			boundTypeNodes = append(boundTypeNodes, n)
			return
		}
		for _, child := range nodeutil.NamedChildrenOf(n) {
			// If the child is a type node at this level, keep it as a whole bound.
			if isJavaTypeNode(child) {
				boundTypeNodes = append(boundTypeNodes, child)
				continue
			}
			// Otherwise recurse; this covers containers like type_bound
			collectFrom(child)
		}
	}

	// The bounds live in a `type_bound` node after the parameter's name, which
	// the grammar does not expose as a field
	for _, child := range nodeutil.NamedChildrenOf(param) {
		if child.Type() == "type_bound" {
			collectFrom(child)
		}
	}

	if len(boundTypeNodes) == 0 {
		return nil
	}

	// De-duplicate by node range (same node can be reached via recursion).
	seen := make(map[[2]uint32]struct{}, len(boundTypeNodes))
	bounds := make([]JavaType, 0, len(boundTypeNodes))
	for _, n := range boundTypeNodes {
		key := [2]uint32{n.StartByte(), n.EndByte()}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		bounds = append(bounds, JavaType{Original: n.Content(source)})
	}
	return bounds
}

// ExtractTypeParameters reads every `type_parameter` of a `type_parameters`
// node, in declaration order
func ExtractTypeParameters(node *sitter.Node, source []byte) []TypeParam {
	if node == nil {
		return nil
	}

	var params []TypeParam
	for _, param := range nodeutil.NamedChildrenOf(node) {
		if param.Type() != "type_parameter" {
			continue
		}
		// Annotations may come before the name
		nameNode := nodeutil.FirstNamedChildOfType(param, "type_identifier", "identifier")
		if nameNode == nil {
			continue
		}
		if annotation := nodeutil.FirstNamedChildOfType(param, "marker_annotation", "annotation"); annotation != nil {
			log.WithFields(log.Fields{
				"typeParameter": nameNode.Content(source),
				"annotation":    annotation.Content(source),
			}).Debug("Dropping annotations of type parameter")
		}
		params = append(params, TypeParam{
			Name:   nameNode.Content(source),
			Bounds: extractTypeParameterBounds(param, source),
		})
	}
	return params
}

// ParseSymbols generates a symbol table for a single source file.
func ParseSymbols(root *sitter.Node, source []byte) *FileScope {
	scope := &FileScope{}

	for _, node := range nodeutil.NamedChildrenOf(root) {
		switch node.Type() {
		case "package_declaration":
			if name := nodeutil.FirstNamedChildOfType(node, "scoped_identifier", "identifier"); name != nil {
				scope.Package = name.Content(source)
			}
		case "import_declaration":
			if imported, ok := parseImport(node, source); ok {
				scope.Imports = append(scope.Imports, imported)
			}
		case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration":
			scope.TopLevelClasses = append(scope.TopLevelClasses, parseClassScope(node, source))
		}
	}

	return scope
}

// parseImport returns the imported name of a single-type or on-demand import.
// Static imports bring in members rather than types, so they are skipped
func parseImport(node *sitter.Node, source []byte) (string, bool) {
	for _, token := range nodeutil.UnnamedChildrenOf(node) {
		if token.Type() == "static" {
			return "", false
		}
	}

	name := nodeutil.FirstNamedChildOfType(node, "scoped_identifier", "identifier")
	if name == nil {
		log.WithField("import", node.Content(source)).Warn("Import without a name")
		return "", false
	}

	imported := name.Content(source)
	if nodeutil.FirstNamedChildOfType(node, "asterisk") != nil {
		imported += ".*"
	}
	return imported, true
}

func parseModifiers(node *sitter.Node) []string {
	modifiers := nodeutil.FirstNamedChildOfType(node, "modifiers")
	if modifiers == nil {
		return nil
	}
	var keywords []string
	// Annotations are the named children, keywords are anonymous
	for _, modifier := range nodeutil.UnnamedChildrenOf(modifiers) {
		keywords = append(keywords, modifier.Type())
	}
	return keywords
}

func parseClassScope(root *sitter.Node, source []byte) *ClassScope {
	nodeutil.AssertTypeIs(root.ChildByFieldName("name"), "identifier")

	scope := &ClassScope{
		Class: &Definition{
			Name:      root.ChildByFieldName("name").Content(source),
			Modifiers: parseModifiers(root),
		},
		Kind:           strings.TrimSuffix(strings.TrimSuffix(root.Type(), "_declaration"), "_type"),
		TypeParameters: ExtractTypeParameters(root.ChildByFieldName("type_parameters"), source),
	}
	scope.Class.TypeParameters = scope.TypeParameters

	for _, node := range nodeutil.NamedChildrenOf(root.ChildByFieldName("body")) {
		switch node.Type() {
		case "enum_body_declarations":
			// The methods and constructors inside of an enum
			for _, declNode := range nodeutil.NamedChildrenOf(node) {
				parseClassMember(scope, declNode, source)
			}
		default:
			parseClassMember(scope, node, source)
		}
	}

	return scope
}

// parseClassMember parses a single class member (method, constructor, or nested class)
func parseClassMember(scope *ClassScope, node *sitter.Node, source []byte) {
	switch node.Type() {
	case "method_declaration", "constructor_declaration":
		nodeutil.AssertTypeIs(node.ChildByFieldName("name"), "identifier")

		declaration := &Definition{
			Name:           node.ChildByFieldName("name").Content(source),
			Modifiers:      parseModifiers(node),
			TypeParameters: ExtractTypeParameters(node.ChildByFieldName("type_parameters"), source),
			Parameters:     []*Definition{},
			Constructor:    node.Type() == "constructor_declaration",
		}

		if !declaration.Constructor {
			declaration.Type = node.ChildByFieldName("type").Content(source)
		}

		for _, parameter := range nodeutil.NamedChildrenOf(node.ChildByFieldName("parameters")) {
			if param := parseParameter(parameter, source); param != nil {
				declaration.Parameters = append(declaration.Parameters, param)
			}
		}

		if body := node.ChildByFieldName("body"); body != nil {
			declaration.HasBody = true
			content := body.Content(source)
			content = strings.TrimSuffix(strings.TrimPrefix(content, "{"), "}")
			declaration.Body = strings.TrimSpace(content)
		}

		scope.Methods = append(scope.Methods, declaration)
	case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration":
		scope.Subclasses = append(scope.Subclasses, parseClassScope(node, source))
	}
}

func parseParameter(parameter *sitter.Node, source []byte) *Definition {
	switch parameter.Type() {
	case "formal_parameter":
		return &Definition{
			Name:      parameter.ChildByFieldName("name").Content(source),
			Type:      parameter.ChildByFieldName("type").Content(source),
			Modifiers: parseModifiers(parameter),
		}
	case "spread_parameter":
		// A spread parameter is in the format:
		// (modifiers)? (type) (variable_declarator name: (name))
		var typeNode, declarator *sitter.Node
		for _, child := range nodeutil.NamedChildrenOf(parameter) {
			switch {
			case typeNode == nil && isJavaTypeNode(child):
				typeNode = child
			case child.Type() == "variable_declarator":
				declarator = child
			}
		}
		if typeNode == nil || declarator == nil {
			log.WithField("parameter", parameter.Content(source)).Warn("Malformed spread parameter")
			return nil
		}
		return &Definition{
			Name:      declarator.ChildByFieldName("name").Content(source),
			Type:      typeNode.Content(source) + "...",
			Modifiers: parseModifiers(parameter),
		}
	}
	// Receiver parameters and comments are not declarations
	return nil
}
