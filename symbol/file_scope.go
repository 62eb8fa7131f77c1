package symbol

// FileScope represents the scope in a single source file, that can contain one
// or more source classes
type FileScope struct {
	// The global package that the file is located in
	Package string
	// Every imported type or package, fully qualified and in source order.
	// On-demand imports keep their trailing `.*`
	Imports []string
	// Top-level classes/interfaces/enums declared in this file, in source order
	TopLevelClasses []*ClassScope
}

// FindClass searches through a file to find if a given class has been defined
// at its root class, or within any of the subclasses
func (fs *FileScope) FindClass(name string) *Definition {
	for _, top := range fs.TopLevelClasses {
		if def := top.FindClass(name); def != nil {
			return def
		}
	}
	return nil
}

// FindClassScope searches for the class scope (not just its definition) by name.
func (fs *FileScope) FindClassScope(name string) *ClassScope {
	for _, top := range fs.TopLevelClasses {
		if scope := top.FindClassScope(name); scope != nil {
			return scope
		}
	}
	return nil
}
