package source

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/javasrc/typename"
)

// Visibility is the access modifier of a declaration
type Visibility int

const (
	PackagePrivate Visibility = iota
	Public
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	case Private:
		return "private"
	}
	return ""
}

// Parameter is a single formal parameter of a method
type Parameter struct {
	Type string
	Name string
}

func (p Parameter) String() string {
	return p.Type + " " + p.Name
}

// Method is a method declaration. Its generic clause is held by the embedded
// TypeParameters, and is written between the modifiers and the return type
type Method struct {
	TypeParameters

	origin      Named
	inInterface bool

	visibility Visibility
	static     bool
	abstract   bool
	final      bool
	returnType string
	name       string
	parameters []Parameter
	body       string
}

// NewMethod creates a standalone `void method()` without modifiers
func NewMethod() *Method {
	return &Method{
		returnType: "void",
		name:       "method",
	}
}

// Origin returns the type that declares the method, or nil for a standalone one
func (m *Method) Origin() Named {
	return m.origin
}

func (m *Method) Name() string {
	return m.name
}

// SetName renames the method. The previous name is kept if the new one is not
// a valid identifier
func (m *Method) SetName(name string) (*Method, error) {
	if !typename.IsValidIdentifier(name) {
		return m, &IdentifierError{Name: name}
	}
	m.name = name
	return m, nil
}

func (m *Method) ReturnType() string {
	return m.returnType
}

// SetReturnType sets the return type, written as given
func (m *Method) SetReturnType(returnType string) *Method {
	if returnType = strings.TrimSpace(returnType); returnType == "" {
		returnType = "void"
	}
	m.returnType = returnType
	return m
}

func (m *Method) Visibility() Visibility {
	return m.visibility
}

func (m *Method) SetVisibility(visibility Visibility) *Method {
	m.visibility = visibility
	return m
}

func (m *Method) SetPublic() *Method {
	return m.SetVisibility(Public)
}

func (m *Method) IsStatic() bool {
	return m.static
}

func (m *Method) SetStatic(static bool) *Method {
	m.static = static
	return m
}

func (m *Method) IsAbstract() bool {
	return m.abstract
}

// SetAbstract marks the method as abstract, which drops its body
func (m *Method) SetAbstract(abstract bool) *Method {
	m.abstract = abstract
	if abstract {
		m.body = ""
	}
	return m
}

func (m *Method) IsFinal() bool {
	return m.final
}

func (m *Method) SetFinal(final bool) *Method {
	m.final = final
	return m
}

// Parameters returns a copy of the method's parameters
func (m *Method) Parameters() []Parameter {
	return append([]Parameter(nil), m.parameters...)
}

// AddParameter appends a parameter of the given type
func (m *Method) AddParameter(paramType, name string) (*Method, error) {
	if !typename.IsValidIdentifier(name) {
		return m, &IdentifierError{Name: name}
	}
	m.parameters = append(m.parameters, Parameter{Type: strings.TrimSpace(paramType), Name: name})
	return m, nil
}

// SetParameters replaces every parameter from a source-style list, such as
// `String name, Map<K, V> values`. On failure the parameters are left unchanged
func (m *Method) SetParameters(list string) (*Method, error) {
	if strings.TrimSpace(list) == "" {
		m.parameters = nil
		return m, nil
	}

	declared := typename.SplitTopLevel(list)
	if declared == nil {
		return m, fmt.Errorf("%w: parameter list %q", ErrSyntax, list)
	}

	parameters := make([]Parameter, 0, len(declared))
	for _, decl := range declared {
		split := strings.LastIndexAny(decl, " \t\n")
		if split == -1 {
			return m, fmt.Errorf("%w: parameter %q has no type", ErrSyntax, decl)
		}
		name := decl[split+1:]
		if !typename.IsValidIdentifier(name) {
			return m, &IdentifierError{Name: name}
		}
		parameters = append(parameters, Parameter{Type: strings.TrimSpace(decl[:split]), Name: name})
	}

	m.parameters = parameters
	return m, nil
}

// Body returns the statements of the method, without the enclosing braces
func (m *Method) Body() string {
	return m.body
}

// SetBody sets the statements of the method. A body makes the method concrete
func (m *Method) SetBody(body string) *Method {
	m.body = strings.TrimSpace(body)
	if m.body != "" {
		m.abstract = false
	}
	return m
}

// hasBody reports whether the method is written with a block, as opposed to a
// bare `;`. Interface methods are implicitly abstract unless they are static
// or have a default body
func (m *Method) hasBody() bool {
	if m.abstract {
		return false
	}
	if m.inInterface {
		return m.static || m.body != ""
	}
	return true
}

func (m *Method) modifiers() []string {
	var modifiers []string
	if v := m.visibility.String(); v != "" {
		modifiers = append(modifiers, v)
	}
	if m.abstract {
		modifiers = append(modifiers, "abstract")
	}
	if m.inInterface && !m.static && !m.abstract && m.body != "" {
		modifiers = append(modifiers, "default")
	}
	if m.static {
		modifiers = append(modifiers, "static")
	}
	if m.final {
		modifiers = append(modifiers, "final")
	}
	return modifiers
}

// String renders the method declaration
// Ex: public <T extends CharSequence> void method() {}
func (m *Method) String() string {
	var out strings.Builder

	for _, modifier := range m.modifiers() {
		out.WriteString(modifier)
		out.WriteByte(' ')
	}

	if clause := m.Clause(); clause != "" {
		out.WriteString(clause)
		out.WriteByte(' ')
	}

	out.WriteString(m.returnType)
	out.WriteByte(' ')
	out.WriteString(m.name)
	out.WriteByte('(')
	for i, param := range m.parameters {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(param.String())
	}
	out.WriteByte(')')

	if !m.hasBody() {
		out.WriteByte(';')
		return out.String()
	}

	if m.body == "" {
		out.WriteString(" {}")
		return out.String()
	}

	out.WriteString(" {\n")
	out.WriteString(indent(m.body))
	out.WriteString("\n}")
	return out.String()
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = "    " + line
		}
	}
	return strings.Join(lines, "\n")
}
