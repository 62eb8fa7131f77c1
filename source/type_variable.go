package source

import (
	"fmt"

	"github.com/NickyBoy89/javasrc/typename"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// TypeVariable is a single generic parameter of a method or type, along with
// its upper bounds. Variables are created with TypeParameters.AddTypeVariable
// and belong to exactly one list
type TypeVariable struct {
	name   string
	bounds []Bound
	// The list the variable belongs to, nil once it has been removed
	origin *TypeParameters
}

// Name returns the variable's identifier, or an empty string if it has not
// been named yet
func (v *TypeVariable) Name() string {
	return v.name
}

// SetName renames the variable. The name must be a valid Java identifier that
// no other variable of the same list uses. On failure the previous name is kept
func (v *TypeVariable) SetName(name string) (*TypeVariable, error) {
	if !typename.IsValidIdentifier(name) {
		return v, &IdentifierError{Name: name}
	}
	if v.origin != nil {
		if other, ok := v.origin.TypeVariable(name); ok && other != v {
			return v, fmt.Errorf("%w: %s", ErrDuplicateTypeVariable, name)
		}
	}
	v.name = name
	return v, nil
}

// MustSetName is like SetName, but panics if the name is rejected
func (v *TypeVariable) MustSetName(name string) *TypeVariable {
	if _, err := v.SetName(name); err != nil {
		panic(err)
	}
	return v
}

// Bounds returns a copy of the variable's bounds, in the order they were set
func (v *TypeVariable) Bounds() []Bound {
	return slices.Clone(v.bounds)
}

// SetBounds replaces every bound of the variable, keeping the argument order.
// Any mix of bound kinds is allowed; empty bounds are skipped, and passing no
// bounds is the same as calling RemoveBounds
func (v *TypeVariable) SetBounds(bounds ...Bound) *TypeVariable {
	kept := make([]Bound, 0, len(bounds))
	for _, b := range bounds {
		if b == nil || b.isEmpty() {
			log.WithField("typeVariable", v.name).Debug("Skipping empty bound")
			continue
		}
		kept = append(kept, b)
	}

	if len(kept) == 0 {
		return v.RemoveBounds()
	}

	v.bounds = kept
	v.registerImports()
	return v
}

// SetBoundTypes sets the bounds to fully qualified types
func (v *TypeVariable) SetBoundTypes(qualifiedNames ...string) *TypeVariable {
	bounds := make([]Bound, len(qualifiedNames))
	for i, name := range qualifiedNames {
		bounds[i] = ResolvedType{Name: name}
	}
	return v.SetBounds(bounds...)
}

// SetBoundRefs sets the bounds to other declarations of the model
func (v *TypeVariable) SetBoundRefs(types ...Named) *TypeVariable {
	bounds := make([]Bound, len(types))
	for i, t := range types {
		bounds[i] = DeclaredTypeRef{Type: t}
	}
	return v.SetBounds(bounds...)
}

// SetBoundNames sets the bounds to type names written out verbatim
func (v *TypeVariable) SetBoundNames(names ...string) *TypeVariable {
	bounds := make([]Bound, len(names))
	for i, name := range names {
		bounds[i] = RawName(name)
	}
	return v.SetBounds(bounds...)
}

// RemoveBounds clears every bound, so the variable renders as its bare name
func (v *TypeVariable) RemoveBounds() *TypeVariable {
	v.bounds = nil
	return v
}

// Origin returns the list that the variable belongs to, or nil if it was removed
func (v *TypeVariable) Origin() *TypeParameters {
	return v.origin
}

// String renders the variable as it appears inside of a generic clause
// Ex: T extends CharSequence & Serializable
func (v *TypeVariable) String() string {
	var resolver NameResolver
	if v.origin != nil {
		resolver = v.origin.resolver
	}
	return RenderTypeVariable(v, resolver)
}

// registerImports asks the compilation unit to import the types named by
// resolved bounds, so that they can be written by their simple names
func (v *TypeVariable) registerImports() {
	if v.origin == nil || v.origin.resolver == nil {
		return
	}
	for _, b := range v.bounds {
		resolved, ok := b.(ResolvedType)
		if !ok {
			continue
		}
		for _, name := range typename.QualifiedNames(resolved.Name) {
			v.origin.resolver.AddImport(name)
		}
	}
}
