package typename

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsValidIdentifier(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "single letter", input: "T", want: true},
		{name: "word", input: "Element", want: true},
		{name: "underscore and dollar", input: "_$value1", want: true},
		{name: "unicode letter", input: "Ärger", want: true},
		{name: "empty", input: "", want: false},
		{name: "leading digit", input: "1T", want: false},
		{name: "qualified", input: "java.lang.String", want: false},
		{name: "generic", input: "T<U>", want: false},
		{name: "whitespace", input: "T U", want: false},
		{name: "keyword", input: "class", want: false},
		{name: "literal", input: "null", want: false},
		{name: "lone underscore", input: "_", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidIdentifier(tt.input); got != tt.want {
				t.Errorf("IsValidIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSimpleAndPackage(t *testing.T) {
	if got := Simple("java.util.List"); got != "List" {
		t.Errorf("Expected List, got %s", got)
	}
	if got := Simple("List"); got != "List" {
		t.Errorf("Expected List, got %s", got)
	}
	if got := Package("java.util.Map.Entry"); got != "java.util.Map" {
		t.Errorf("Expected java.util.Map, got %s", got)
	}
	if got := Package("T"); got != "" {
		t.Errorf("Expected empty package, got %s", got)
	}
	if !IsImplicit("java.lang") || IsImplicit("java.util") {
		t.Error("Expected only java.lang to be implicit")
	}
}

func TestToSimpleName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "java.lang.CharSequence", want: "CharSequence"},
		{input: "T", want: "T"},
		{input: "java.util.Map<java.lang.String, com.foo.Bar[]>", want: "Map<String, Bar[]>"},
		{input: "java.util.List<? extends java.lang.Number>", want: "List<? extends Number>"},
		{input: "java.lang.Comparable<? super T>", want: "Comparable<? super T>"},
		{input: "java.lang.String...", want: "String..."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToSimpleName(tt.input); got != tt.want {
				t.Errorf("ToSimpleName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQualifiedNames(t *testing.T) {
	got := QualifiedNames("java.util.Map<java.lang.String, java.util.List<java.lang.String>>")
	want := []string{"java.util.Map", "java.lang.String", "java.util.List"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("QualifiedNames mismatch (-want +got):\n%s", diff)
	}

	if got := QualifiedNames("Comparable<T>"); len(got) != 0 {
		t.Errorf("Expected no qualified names, got %v", got)
	}
}

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple", input: "String a, int b", want: []string{"String a", "int b"}},
		{name: "no space", input: "I,O", want: []string{"I", "O"}},
		{name: "nested", input: "Map<String, List<Integer>> m, T t", want: []string{"Map<String, List<Integer>> m", "T t"}},
		{name: "empty", input: "  ", want: nil},
		{name: "too many closing", input: "List<T>> a", want: nil},
		{name: "unclosed", input: "List<T a", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitTopLevel(tt.input)); diff != "" {
				t.Errorf("SplitTopLevel(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}
