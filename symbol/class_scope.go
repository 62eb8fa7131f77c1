package symbol

// Finder looks up definitions within a scope
type Finder interface {
	By(criteria func(d *Definition) bool) []*Definition
	ByName(name string) []*Definition
}

// ClassScope represents a single defined class or interface, and the
// declarations in it
type ClassScope struct {
	// The definition for the class itself
	Class *Definition
	// The declaration keyword: "class", "interface", "enum" or "annotation"
	Kind string
	// Every class that is nested within the base class
	Subclasses []*ClassScope
	// Methods and constructors, in source order
	Methods []*Definition
	// Type parameters of the class (e.g. `K, V extends Number` for class Foo<K, V extends Number>)
	TypeParameters []TypeParam
}

// IsTypeParameter checks if a given name is a type parameter of this class
func (cs *ClassScope) IsTypeParameter(name string) bool {
	for _, tp := range cs.TypeParameters {
		if tp.Name == name {
			return true
		}
	}
	return false
}

// FindMethod searches through the immediate class's methods find a specific method
func (cs *ClassScope) FindMethod() Finder {
	cm := classMethodFinder(*cs)
	return &cm
}

type classMethodFinder ClassScope

func (cm *classMethodFinder) By(criteria func(d *Definition) bool) []*Definition {
	results := []*Definition{}
	for _, method := range cm.Methods {
		if criteria(method) {
			results = append(results, method)
		}
	}
	return results
}

func (cm *classMethodFinder) ByName(name string) []*Definition {
	return cm.By(func(d *Definition) bool {
		return d.Name == name
	})
}

// FindClassScope searches this class and its subclasses for a class with the
// given name
func (cs *ClassScope) FindClassScope(name string) *ClassScope {
	if cs.Class.Name == name {
		return cs
	}
	for _, subclass := range cs.Subclasses {
		if scope := subclass.FindClassScope(name); scope != nil {
			return scope
		}
	}
	return nil
}

// FindClass searches through a class file and returns the definition for the
// found class, or nil if none was found
func (cs *ClassScope) FindClass(name string) *Definition {
	if scope := cs.FindClassScope(name); scope != nil {
		return scope.Class
	}
	return nil
}
