package source

import (
	"strings"

	"github.com/NickyBoy89/javasrc/typename"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// NameResolver decides how fully qualified type names are written inside of a
// compilation unit
type NameResolver interface {
	// SimpleName returns the shortest unambiguous way to write a (possibly
	// parameterized) qualified type within the unit
	SimpleName(qualified string) string
	// AddImport imports a qualified type, returning whether a new import was
	// needed and possible
	AddImport(qualified string) bool
}

// Imports is the import list of a single compilation unit
type Imports struct {
	pkg     string
	imports []string
	// The simple name of the type declared by the unit, which no import may claim
	owner string
}

var _ NameResolver = &Imports{}

// SetPackage sets the package of the unit, whose types never need importing
func (i *Imports) SetPackage(pkg string) {
	i.pkg = pkg
}

// Package returns the package of the unit
func (i *Imports) Package() string {
	return i.pkg
}

// setOwner records the name of the type declared by the unit. Single-type
// imports that would clash with it are dropped
func (i *Imports) setOwner(name string) {
	i.owner = name
	kept := i.imports[:0]
	for _, imported := range i.imports {
		if !strings.HasSuffix(imported, ".*") && typename.Simple(imported) == name {
			log.WithFields(log.Fields{
				"import": imported,
				"type":   name,
			}).Debug("Dropping import that clashes with the declared type")
			continue
		}
		kept = append(kept, imported)
	}
	i.imports = kept
}

// Imports returns the imported names in the order they were added
func (i *Imports) Imports() []string {
	return slices.Clone(i.imports)
}

// HasImport reports whether a name was imported exactly as given
func (i *Imports) HasImport(qualified string) bool {
	return slices.Contains(i.imports, qualified)
}

// AddImport imports a single qualified type, or a whole package when the name
// ends in `.*`. Nothing is imported for types that are already visible, or
// when another import already claims the same simple name
func (i *Imports) AddImport(qualified string) bool {
	qualified = strings.TrimSpace(qualified)
	if !typename.IsQualified(qualified) || i.HasImport(qualified) {
		return false
	}

	if strings.HasSuffix(qualified, ".*") {
		i.imports = append(i.imports, qualified)
		return true
	}

	pkg, simple := typename.Package(qualified), typename.Simple(qualified)
	if pkg == i.pkg || typename.IsImplicit(pkg) || i.HasImport(pkg+".*") {
		return false
	}

	if i.owner != "" && simple == i.owner {
		log.WithFields(log.Fields{
			"import": qualified,
			"type":   i.owner,
		}).Debug("Simple name belongs to the declared type, keeping qualified name")
		return false
	}

	if conflict, ok := i.importedAs(simple); ok {
		log.WithFields(log.Fields{
			"import":   qualified,
			"conflict": conflict,
		}).Debug("Simple name already imported, keeping qualified name")
		return false
	}

	log.WithField("import", qualified).Debug("Adding import")
	i.imports = append(i.imports, qualified)
	return true
}

// RemoveImport removes an import, and reports whether it existed
func (i *Imports) RemoveImport(qualified string) bool {
	index := slices.Index(i.imports, qualified)
	if index == -1 {
		return false
	}
	i.imports = slices.Delete(i.imports, index, index+1)
	return true
}

// SimpleName writes every name of a type expression by its simple name where
// that is unambiguous within the unit, and fully qualified otherwise
// Ex: java.util.Map<java.lang.String, com.foo.Bar> -> Map<String, Bar>
func (i *Imports) SimpleName(qualified string) string {
	return typename.MapNames(qualified, i.simplify)
}

func (i *Imports) simplify(name string) string {
	if !typename.IsQualified(name) {
		return name
	}

	pkg, simple := typename.Package(name), typename.Simple(name)
	if i.owner != "" && simple == i.owner {
		if pkg == i.pkg {
			return simple
		}
		return name
	}

	if imported, ok := i.importedAs(simple); ok {
		if imported == name {
			return simple
		}
		// Another type owns the simple name in this unit
		return name
	}

	if pkg == i.pkg || typename.IsImplicit(pkg) || i.HasImport(pkg+".*") {
		return simple
	}
	return name
}

// importedAs returns the single-type import that provides a simple name
func (i *Imports) importedAs(simple string) (string, bool) {
	for _, imported := range i.imports {
		if !strings.HasSuffix(imported, ".*") && typename.Simple(imported) == simple {
			return imported, true
		}
	}
	return "", false
}

// String renders the import declarations, one per line
func (i *Imports) String() string {
	var out strings.Builder
	for _, imported := range i.imports {
		out.WriteString("import ")
		out.WriteString(imported)
		out.WriteString(";\n")
	}
	return out.String()
}
