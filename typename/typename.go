// Package typename contains helpers for working with Java type names as plain
// strings, e.g. `java.util.Map<java.lang.String, com.foo.Bar[]>`
package typename

import (
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// ImplicitPackages are the packages whose types are visible in every
// compilation unit without an import
var ImplicitPackages = []string{"java.lang"}

var keywords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	// Literals and the underscore are reserved as well
	"true": true, "false": true, "null": true, "_": true,
}

// IsKeyword reports whether the word is reserved in Java
func IsKeyword(word string) bool {
	return keywords[word]
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}

// IsValidIdentifier reports whether the name is a single, non-reserved Java
// identifier. Qualified names are not identifiers
func IsValidIdentifier(name string) bool {
	if name == "" || IsKeyword(name) {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentifierStart(r) {
			return false
		}
		if !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

// IsQualified reports whether a plain type name contains a package or
// enclosing type, such as `java.util.List`
func IsQualified(name string) bool {
	return strings.Contains(name, ".")
}

// Simple returns the last segment of a qualified name
// Ex: java.util.List -> List
func Simple(name string) string {
	return name[strings.LastIndex(name, ".")+1:]
}

// Package returns everything before the last segment of a qualified name, or
// an empty string for an unqualified one
// Ex: java.util.List -> java.util
func Package(name string) string {
	if index := strings.LastIndex(name, "."); index != -1 {
		return name[:index]
	}
	return ""
}

// IsImplicit reports whether a package is imported into every unit
func IsImplicit(pkg string) bool {
	return slices.Contains(ImplicitPackages, pkg)
}

// MapNames calls `f` on every (possibly qualified) name that appears in a type
// expression and substitutes the result, keeping all other text as-is. The
// `extends` and `super` keywords of wildcards are never passed to `f`
func MapNames(typeExpr string, f func(name string) string) string {
	var out strings.Builder
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		// Varargs (`Foo...`) leave trailing dots on the name
		name := strings.TrimRight(current.String(), ".")
		dots := current.String()[len(name):]
		if name == "extends" || name == "super" {
			out.WriteString(name)
		} else {
			out.WriteString(f(name))
		}
		out.WriteString(dots)
		current.Reset()
	}

	for _, ch := range typeExpr {
		if isIdentifierPart(ch) || (ch == '.' && current.Len() > 0) {
			current.WriteRune(ch)
			continue
		}
		flush()
		out.WriteRune(ch)
	}
	flush()

	return out.String()
}

// QualifiedNames returns every distinct qualified name in a type expression,
// in order of appearance
func QualifiedNames(typeExpr string) []string {
	var names []string
	MapNames(typeExpr, func(name string) string {
		if IsQualified(name) && !slices.Contains(names, name) {
			names = append(names, name)
		}
		return name
	})
	return names
}

// ToSimpleName strips the package from every name in a type expression
// Ex: java.util.Map<java.lang.String, com.foo.Bar> -> Map<String, Bar>
func ToSimpleName(typeExpr string) string {
	return MapNames(typeExpr, Simple)
}

// SplitTopLevel splits a list on commas that are not nested inside of angle
// brackets, trimming every element. For example, `String a, Map<K, V> b`
// splits into ["String a", "Map<K, V> b"]
//
// Returns nil if the input has unbalanced angle brackets
func SplitTopLevel(list string) []string {
	var result []string
	var current strings.Builder
	depth := 0

	for _, ch := range list {
		switch ch {
		case '<':
			depth++
			current.WriteRune(ch)
		case '>':
			depth--
			if depth < 0 {
				log.WithField("list", list).Warn("Unbalanced angle brackets in type list: too many '>'")
				return nil
			}
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				// Top-level comma - split here
				if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
					result = append(result, trimmed)
				}
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}

	if depth != 0 {
		log.WithField("list", list).Warn("Unbalanced angle brackets in type list: unclosed '<'")
		return nil
	}

	if trimmed := strings.TrimSpace(current.String()); trimmed != "" {
		result = append(result, trimmed)
	}

	return result
}
