package source

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIdentifier is returned when a name is empty, reserved, or
	// contains characters that are not allowed in a Java identifier
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrDuplicateTypeVariable is returned when a type variable is renamed to a
	// name that another variable in the same list already uses
	ErrDuplicateTypeVariable = errors.New("duplicate type variable")
	// ErrUnnamedTypeVariable is returned by Validate for a variable that was
	// added but never named
	ErrUnnamedTypeVariable = errors.New("unnamed type variable")
	// ErrSyntax is returned when declaration text fails to parse
	ErrSyntax = errors.New("syntax error")
	// ErrNoDeclaration is returned when parsed text does not contain the
	// requested kind of declaration
	ErrNoDeclaration = errors.New("no declaration found")
)

// IdentifierError records a name that was rejected
type IdentifierError struct {
	Name string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidIdentifier, e.Name)
}

func (e *IdentifierError) Unwrap() error {
	return ErrInvalidIdentifier
}
