package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/NickyBoy89/javasrc/parsing"
	"github.com/NickyBoy89/javasrc/symbol"
	log "github.com/sirupsen/logrus"
)

// The class that a lone method is wrapped in, so that it forms a compilation unit
const methodHolder = "MethodHolder"

func parseUnit(ctx context.Context, name, text string) (*symbol.FileScope, error) {
	file := parsing.SourceFile{Name: name, Source: []byte(text)}
	if err := file.ParseASTCtx(ctx); err != nil {
		return nil, err
	}
	if file.HasErrors() {
		log.WithFields(log.Fields{
			"file": name,
			"tree": file.Ast.String(),
		}).Debug("Syntax error in declaration")
		return nil, fmt.Errorf("%w in %s", ErrSyntax, name)
	}
	return file.ParseSymbols()
}

// ParseMethod reads a single method declaration, such as
// `public <T extends Foo & Bar<T>> void method() {}`. Bounds are kept exactly
// as written
func ParseMethod(text string) (*Method, error) {
	return ParseMethodCtx(context.Background(), text)
}

// ParseMethodCtx is ParseMethod with a context that can cancel parsing
func ParseMethodCtx(ctx context.Context, text string) (*Method, error) {
	symbols, err := parseUnit(ctx, "method", "class "+methodHolder+" {\n"+text+"\n}")
	if err != nil {
		return nil, err
	}

	holder := symbols.FindClassScope(methodHolder)
	if holder == nil {
		return nil, fmt.Errorf("%w: method", ErrNoDeclaration)
	}
	methods := holder.FindMethod().By(func(d *symbol.Definition) bool {
		return !d.Constructor
	})
	if len(methods) != 1 {
		return nil, fmt.Errorf("%w: expected one method, found %d", ErrNoDeclaration, len(methods))
	}

	m := NewMethod()
	if err := fillMethod(m, methods[0]); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseJavaClass reads a compilation unit whose first type is a class
func ParseJavaClass(text string) (*JavaClass, error) {
	scope, symbols, err := parseType(text, "class")
	if err != nil {
		return nil, err
	}

	c := NewJavaClass().SetPackage(symbols.Package)
	if err := fillType(&c.javaType, c, scope, symbols, false); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseJavaInterface reads a compilation unit whose first type is an interface
func ParseJavaInterface(text string) (*JavaInterface, error) {
	scope, symbols, err := parseType(text, "interface")
	if err != nil {
		return nil, err
	}

	i := NewJavaInterface().SetPackage(symbols.Package)
	if err := fillType(&i.javaType, i, scope, symbols, true); err != nil {
		return nil, err
	}
	return i, nil
}

func parseType(text, kind string) (*symbol.ClassScope, *symbol.FileScope, error) {
	symbols, err := parseUnit(context.Background(), kind, text)
	if err != nil {
		return nil, nil, err
	}
	if len(symbols.TopLevelClasses) == 0 || symbols.TopLevelClasses[0].Kind != kind {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoDeclaration, kind)
	}
	return symbols.TopLevelClasses[0], symbols, nil
}

func fillType(t *javaType, origin Named, scope *symbol.ClassScope, symbols *symbol.FileScope, inInterface bool) error {
	t.imports.imports = append(t.imports.imports, symbols.Imports...)

	if err := t.setName(scope.Class.Name); err != nil {
		return err
	}
	t.visibility = visibilityOf(scope.Class.Modifiers)
	if err := fillTypeParameters(&t.TypeParameters, scope.TypeParameters); err != nil {
		return err
	}

	for _, def := range scope.Methods {
		if def.Constructor {
			log.WithFields(log.Fields{
				"type":        scope.Class.Name,
				"constructor": def.Name,
			}).Debug("Skipping constructor")
			continue
		}
		m := t.addMethod(origin, inInterface)
		if err := fillMethod(m, def); err != nil {
			return err
		}
	}
	return nil
}

func fillMethod(m *Method, def *symbol.Definition) error {
	if _, err := m.SetName(def.Name); err != nil {
		return err
	}
	m.SetReturnType(def.Type)
	m.visibility = visibilityOf(def.Modifiers)
	m.static = def.HasModifier("static")
	m.final = def.HasModifier("final")
	m.abstract = def.HasModifier("abstract") || (!m.inInterface && !def.HasBody)
	m.body = dedent(def.Body)

	m.parameters = nil
	for _, param := range def.Parameters {
		if _, err := m.AddParameter(param.Type, param.Name); err != nil {
			return err
		}
	}

	return fillTypeParameters(&m.TypeParameters, def.TypeParameters)
}

func fillTypeParameters(tp *TypeParameters, params []symbol.TypeParam) error {
	for _, param := range params {
		v := tp.AddTypeVariable()
		if _, err := v.SetName(param.Name); err != nil {
			return err
		}
		v.SetBoundNames(param.BoundNames()...)
	}
	return nil
}

func visibilityOf(modifiers []string) Visibility {
	for _, modifier := range modifiers {
		switch modifier {
		case "public":
			return Public
		case "protected":
			return Protected
		case "private":
			return Private
		}
	}
	return PackagePrivate
}

// dedent removes the indentation that the lines after the first share, since
// the first line of a parsed body has already been trimmed
func dedent(body string) string {
	lines := strings.Split(body, "\n")
	if len(lines) < 2 {
		return body
	}

	common := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		width := len(line) - len(strings.TrimLeft(line, " \t"))
		if common == -1 || width < common {
			common = width
		}
	}
	if common <= 0 {
		return body
	}

	for i := 1; i < len(lines); i++ {
		if len(lines[i]) >= common {
			lines[i] = lines[i][common:]
		} else {
			lines[i] = strings.TrimLeft(lines[i], " \t")
		}
	}
	return strings.Join(lines, "\n")
}
