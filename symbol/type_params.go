package symbol

// JavaType is a lightweight representation of a Java type as it appears in
// source, kept exactly as written
type JavaType struct {
	Original string
}

// TypeParam represents a declared type parameter (class or method), including
// any upper bounds (e.g. `T extends Number & Comparable<T>`)
type TypeParam struct {
	Name   string
	Bounds []JavaType
}

// BoundNames returns the bounds of the parameter, in declaration order
func (tp TypeParam) BoundNames() []string {
	if len(tp.Bounds) == 0 {
		return nil
	}
	names := make([]string, len(tp.Bounds))
	for i, b := range tp.Bounds {
		names[i] = b.Original
	}
	return names
}

func TypeParamNames(params []TypeParam) []string {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, 0, len(params))
	for _, p := range params {
		names = append(names, p.Name)
	}
	return names
}
