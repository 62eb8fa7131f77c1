package symbol

import "golang.org/x/exp/slices"

// Definition represents the name and type of a single symbol
type Definition struct {
	Name string
	// Declared type of the symbol, or the return type of a method
	Type string
	// Modifier keywords, in source order (e.g. "public", "static")
	Modifiers []string
	// Type parameters declared on this definition (classes, methods, constructors)
	TypeParameters []TypeParam

	// If the definition is a constructor, it has no type
	Constructor bool
	// If the object is a function, it has parameters
	Parameters []*Definition
	// Whether a method has a block body, as opposed to ending in `;`
	HasBody bool
	// Source text between the braces of the body, trimmed
	Body string
}

// HasModifier reports whether the definition was declared with a modifier keyword
func (d *Definition) HasModifier(modifier string) bool {
	return slices.Contains(d.Modifiers, modifier)
}

// ParameterTypes returns a list of the types for all the parameters
func (d *Definition) ParameterTypes() []string {
	types := make([]string, len(d.Parameters))
	for ind, param := range d.Parameters {
		types[ind] = param.Type
	}
	return types
}

func (d *Definition) TypeParameterNames() []string {
	if d == nil {
		return nil
	}
	return TypeParamNames(d.TypeParameters)
}
