package source

import (
	"strings"

	"github.com/NickyBoy89/javasrc/typename"
	"golang.org/x/exp/slices"
)

// javaType holds what classes and interfaces have in common: a compilation
// unit with imports, a generic clause and methods
type javaType struct {
	TypeParameters

	imports    Imports
	name       string
	visibility Visibility
	methods    []*Method
}

func newJavaType() javaType {
	return javaType{visibility: Public}
}

// attach points the type's own generic clause at its import list. It must run
// once the type has its final address
func (t *javaType) attach() {
	t.TypeParameters.resolver = &t.imports
}

// QualifiedName returns the name of the type prefixed by its package
func (t *javaType) QualifiedName() string {
	if t.imports.Package() == "" {
		return t.name
	}
	return t.imports.Package() + "." + t.name
}

// Package returns the package the type is declared in
func (t *javaType) Package() string {
	return t.imports.Package()
}

// Imports returns the unit's import list, which resolves the names of
// resolved bounds for the type and every one of its methods
func (t *javaType) Imports() *Imports {
	return &t.imports
}

func (t *javaType) Visibility() Visibility {
	return t.visibility
}

func (t *javaType) setName(name string) error {
	if !typename.IsValidIdentifier(name) {
		return &IdentifierError{Name: name}
	}
	t.name = name
	t.imports.setOwner(name)
	return nil
}

// Methods returns the type's methods in declaration order
func (t *javaType) Methods() []*Method {
	return slices.Clone(t.methods)
}

// Method returns the first method with the given name
func (t *javaType) Method(name string) (*Method, bool) {
	for _, m := range t.methods {
		if m.name == name {
			return m, true
		}
	}
	return nil, false
}

// RemoveMethod removes a method from the type, and reports whether it was
// declared there
func (t *javaType) RemoveMethod(m *Method) bool {
	index := slices.Index(t.methods, m)
	if index == -1 {
		return false
	}
	t.methods = slices.Delete(t.methods, index, index+1)
	m.origin = nil
	m.TypeParameters.resolver = nil
	return true
}

func (t *javaType) addMethod(origin Named, inInterface bool) *Method {
	m := NewMethod()
	m.origin = origin
	m.inInterface = inInterface
	if !inInterface {
		m.visibility = Public
	}
	m.TypeParameters.resolver = &t.imports
	t.methods = append(t.methods, m)
	return m
}

func (t *javaType) render(keyword string) string {
	var out strings.Builder

	if pkg := t.imports.Package(); pkg != "" {
		out.WriteString("package " + pkg + ";\n\n")
	}
	if imports := t.imports.String(); imports != "" {
		out.WriteString(imports)
		out.WriteByte('\n')
	}

	if v := t.visibility.String(); v != "" {
		out.WriteString(v + " ")
	}
	out.WriteString(keyword + " " + t.name + t.Clause() + " {\n")
	for _, m := range t.methods {
		out.WriteByte('\n')
		out.WriteString(indent(m.String()))
		out.WriteByte('\n')
	}
	out.WriteString("}\n")

	return out.String()
}

// JavaClass is a class declared in its own compilation unit
type JavaClass struct {
	javaType
}

var _ Named = &JavaClass{}

// Name returns the simple name of the class, or an empty string for a nil class
func (c *JavaClass) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// QualifiedName returns the name of the class prefixed by its package
func (c *JavaClass) QualifiedName() string {
	if c == nil {
		return ""
	}
	return c.javaType.QualifiedName()
}

// NewJavaClass creates an empty public class
func NewJavaClass() *JavaClass {
	c := &JavaClass{javaType: newJavaType()}
	c.attach()
	return c
}

// SetPackage moves the class to a package
func (c *JavaClass) SetPackage(pkg string) *JavaClass {
	c.imports.SetPackage(pkg)
	return c
}

// SetName renames the class. The previous name is kept if the new one is not
// a valid identifier
func (c *JavaClass) SetName(name string) (*JavaClass, error) {
	return c, c.setName(name)
}

func (c *JavaClass) SetVisibility(visibility Visibility) *JavaClass {
	c.visibility = visibility
	return c
}

// AddMethod declares a new public `void method() {}` on the class
func (c *JavaClass) AddMethod() *Method {
	return c.addMethod(c, false)
}

// String renders the whole compilation unit
func (c *JavaClass) String() string {
	return c.render("class")
}

// JavaInterface is an interface declared in its own compilation unit
type JavaInterface struct {
	javaType
}

var _ Named = &JavaInterface{}

// Name returns the simple name of the interface, or an empty string for a nil
// interface
func (i *JavaInterface) Name() string {
	if i == nil {
		return ""
	}
	return i.name
}

// QualifiedName returns the name of the interface prefixed by its package
func (i *JavaInterface) QualifiedName() string {
	if i == nil {
		return ""
	}
	return i.javaType.QualifiedName()
}

// NewJavaInterface creates an empty public interface
func NewJavaInterface() *JavaInterface {
	i := &JavaInterface{javaType: newJavaType()}
	i.attach()
	return i
}

// SetPackage moves the interface to a package
func (i *JavaInterface) SetPackage(pkg string) *JavaInterface {
	i.imports.SetPackage(pkg)
	return i
}

// SetName renames the interface. The previous name is kept if the new one is
// not a valid identifier
func (i *JavaInterface) SetName(name string) (*JavaInterface, error) {
	return i, i.setName(name)
}

func (i *JavaInterface) SetVisibility(visibility Visibility) *JavaInterface {
	i.visibility = visibility
	return i
}

// AddMethod declares a new abstract `void method();` on the interface
func (i *JavaInterface) AddMethod() *Method {
	return i.addMethod(i, true)
}

// String renders the whole compilation unit
func (i *JavaInterface) String() string {
	return i.render("interface")
}
