package source

import (
	"strings"

	"github.com/NickyBoy89/javasrc/typename"
	log "github.com/sirupsen/logrus"
)

// Bound is a single upper bound of a type variable. It is one of
// ResolvedType, DeclaredTypeRef or RawName
type Bound interface {
	render(r NameResolver) string
	isEmpty() bool
}

// ResolvedType is a bound given as a fully qualified type, possibly
// parameterized (e.g. `java.lang.Comparable<java.lang.String>`). How it is
// written is decided by the resolver of the owning compilation unit
type ResolvedType struct {
	Name string
}

func (b ResolvedType) render(r NameResolver) string {
	if r == nil {
		return typename.ToSimpleName(b.Name)
	}
	return r.SimpleName(b.Name)
}

func (b ResolvedType) isEmpty() bool {
	return strings.TrimSpace(b.Name) == ""
}

func (b ResolvedType) String() string {
	return b.Name
}

// Named is any declaration that can be referred to by name
type Named interface {
	Name() string
	QualifiedName() string
}

// DeclaredTypeRef is a bound that refers to another declaration in the model.
// The referenced declaration is not owned; its current name is read every time
// the bound is rendered. A target that has no name yet counts as an empty bound.
// Targets implemented outside of this package must answer Name on a nil
// receiver themselves
type DeclaredTypeRef struct {
	Type Named
}

func (b DeclaredTypeRef) render(NameResolver) string {
	if b.Type == nil {
		log.Warn("Rendering a declared type bound without a target")
		return ""
	}
	return b.Type.Name()
}

func (b DeclaredTypeRef) isEmpty() bool {
	return b.Type == nil || b.Type.Name() == ""
}

func (b DeclaredTypeRef) String() string {
	if b.Type == nil {
		return ""
	}
	return b.Type.QualifiedName()
}

// RawName is a bound written out verbatim, such as `com.something.Bar<T>`
type RawName string

func (b RawName) render(NameResolver) string {
	return string(b)
}

func (b RawName) isEmpty() bool {
	return strings.TrimSpace(string(b)) == ""
}

func (b RawName) String() string {
	return string(b)
}
