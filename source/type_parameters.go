package source

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// TypeParameters is the ordered list of type variables declared by a method
// or type. Names are unique within a list.
//
// The zero value is an empty list that writes resolved bounds by their simple
// names
type TypeParameters struct {
	vars     []*TypeVariable
	resolver NameResolver
}

// AddTypeVariable appends a new, unnamed variable without bounds. It must be
// named with SetName before it appears in the rendered clause
func (tp *TypeParameters) AddTypeVariable() *TypeVariable {
	v := &TypeVariable{origin: tp}
	tp.vars = append(tp.vars, v)
	return v
}

// TypeVariable looks up a variable by name. Unnamed variables are never found
func (tp *TypeParameters) TypeVariable(name string) (*TypeVariable, bool) {
	if name == "" {
		return nil, false
	}
	index := tp.indexOf(name)
	if index == -1 {
		return nil, false
	}
	return tp.vars[index], true
}

// HasTypeVariable reports whether a variable with the given name exists
func (tp *TypeParameters) HasTypeVariable(name string) bool {
	_, ok := tp.TypeVariable(name)
	return ok
}

// TypeVariables returns the variables in declaration order
func (tp *TypeParameters) TypeVariables() []*TypeVariable {
	return slices.Clone(tp.vars)
}

// Len returns the number of declared variables, named or not
func (tp *TypeParameters) Len() int {
	return len(tp.vars)
}

// RemoveTypeVariable removes the variable with the given name, and reports
// whether there was one to remove
func (tp *TypeParameters) RemoveTypeVariable(name string) bool {
	if name == "" {
		return false
	}
	index := tp.indexOf(name)
	if index == -1 {
		return false
	}
	tp.vars[index].origin = nil
	tp.vars = slices.Delete(tp.vars, index, index+1)
	return true
}

// Validate checks that every declared variable has been named
func (tp *TypeParameters) Validate() error {
	for index, v := range tp.vars {
		if v.name == "" {
			log.WithField("index", index).Debug("Found unnamed type variable")
			return ErrUnnamedTypeVariable
		}
	}
	return nil
}

// Clause renders the list as a generic clause, such as `<K, V extends Number>`,
// or an empty string if there is nothing to declare
func (tp *TypeParameters) Clause() string {
	return RenderClause(tp.vars, tp.resolver)
}

func (tp *TypeParameters) indexOf(name string) int {
	return slices.IndexFunc(tp.vars, func(v *TypeVariable) bool {
		return v.name == name
	})
}
