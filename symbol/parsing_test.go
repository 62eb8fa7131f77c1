package symbol_test

import (
	"testing"

	"github.com/NickyBoy89/javasrc/parsing"
	"github.com/NickyBoy89/javasrc/symbol"
	"github.com/google/go-cmp/cmp"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func parseSymbols(t *testing.T, src string) *symbol.FileScope {
	t.Helper()
	file := parsing.SourceFile{Name: "Test.java", Source: []byte(src)}
	if err := file.ParseAST(); err != nil {
		t.Fatalf("failed to parse AST: %v", err)
	}
	if file.HasErrors() {
		t.Fatalf("unexpected syntax errors: %s", file.Ast.String())
	}
	symbols, err := file.ParseSymbols()
	if err != nil {
		t.Fatalf("failed to parse symbols: %v", err)
	}
	return symbols
}

func TestParseSymbols_PackageAndImports(t *testing.T) {
	symbols := parseSymbols(t, `
package com.example.model;
import java.io.Serializable;
import java.util.*;
import static java.util.Collections.emptyList;
public class Holder {}
`)

	if symbols.Package != "com.example.model" {
		t.Errorf("expected package com.example.model, got %q", symbols.Package)
	}
	want := []string{"java.io.Serializable", "java.util.*"}
	if diff := cmp.Diff(want, symbols.Imports); diff != "" {
		t.Errorf("imports mismatch (-want +got):\n%s", diff)
	}
	if len(symbols.TopLevelClasses) != 1 || symbols.TopLevelClasses[0].Kind != "class" {
		t.Fatalf("expected a single top-level class, got %#v", symbols.TopLevelClasses)
	}
	if !symbols.TopLevelClasses[0].Class.HasModifier("public") {
		t.Errorf("expected class to be public")
	}
}

func TestParseSymbols_MethodTypeParametersAndBounds(t *testing.T) {
	symbols := parseSymbols(t, `
class Generic<K extends Comparable<K>, V> {
    public static <T extends com.something.Foo & com.something.Bar<T>, U> T pick(T first, java.util.List<U> rest, String... others) {
        return first;
    }
    <I,O> void map() {}
}
`)

	class := symbols.FindClassScope("Generic")
	if class == nil {
		t.Fatalf("expected class Generic to be found")
	}

	wantClassParams := []symbol.TypeParam{
		{Name: "K", Bounds: []symbol.JavaType{{Original: "Comparable<K>"}}},
		{Name: "V"},
	}
	if diff := cmp.Diff(wantClassParams, class.TypeParameters); diff != "" {
		t.Errorf("class type parameters mismatch (-want +got):\n%s", diff)
	}
	if !class.IsTypeParameter("K") || class.IsTypeParameter("T") {
		t.Errorf("expected only class-level parameters to be reported")
	}

	picks := class.FindMethod().ByName("pick")
	if len(picks) != 1 {
		t.Fatalf("expected a single pick method, got %d", len(picks))
	}
	pick := picks[0]

	wantMethodParams := []symbol.TypeParam{
		{Name: "T", Bounds: []symbol.JavaType{{Original: "com.something.Foo"}, {Original: "com.something.Bar<T>"}}},
		{Name: "U"},
	}
	if diff := cmp.Diff(wantMethodParams, pick.TypeParameters); diff != "" {
		t.Errorf("method type parameters mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"com.something.Foo", "com.something.Bar<T>"}, pick.TypeParameters[0].BoundNames()); diff != "" {
		t.Errorf("bound names mismatch (-want +got):\n%s", diff)
	}

	if pick.Type != "T" {
		t.Errorf("expected return type T, got %q", pick.Type)
	}
	if diff := cmp.Diff([]string{"public", "static"}, pick.Modifiers); diff != "" {
		t.Errorf("modifiers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"T", "java.util.List<U>", "String..."}, pick.ParameterTypes()); diff != "" {
		t.Errorf("parameter types mismatch (-want +got):\n%s", diff)
	}
	if !pick.HasBody || pick.Body != "return first;" {
		t.Errorf("expected body %q, got %q", "return first;", pick.Body)
	}

	maps := class.FindMethod().ByName("map")
	if len(maps) != 1 {
		t.Fatalf("expected a single map method, got %d", len(maps))
	}
	if diff := cmp.Diff([]string{"I", "O"}, maps[0].TypeParameterNames()); diff != "" {
		t.Errorf("type parameter names mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSymbols_InterfacesConstructorsAndNesting(t *testing.T) {
	symbols := parseSymbols(t, `
public interface Source<T> {
    <R extends T> R read();
    class Default {
        <X> Default(X seed) {}
    }
}
`)

	source := symbols.FindClassScope("Source")
	if source == nil || source.Kind != "interface" {
		t.Fatalf("expected interface Source, got %#v", source)
	}

	read := source.FindMethod().ByName("read")
	if len(read) != 1 {
		t.Fatalf("expected read to be registered")
	}
	if read[0].HasBody {
		t.Errorf("expected abstract interface method to have no body")
	}

	def := symbols.FindClassScope("Default")
	if def == nil {
		t.Fatalf("expected nested class Default to be found")
	}
	if symbols.FindClass("Default") != def.Class {
		t.Errorf("expected FindClass to return the nested class definition")
	}
	ctor := def.FindMethod().By(func(d *symbol.Definition) bool { return d.Constructor })
	if len(ctor) != 1 {
		t.Fatalf("expected a single constructor, got %d", len(ctor))
	}
	if diff := cmp.Diff([]string{"X"}, ctor[0].TypeParameterNames()); diff != "" {
		t.Errorf("constructor type parameters mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSymbols_AnnotatedTypeParameters(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()
	level := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(level)

	symbols := parseSymbols(t, `
class Annotated {
    <@Deprecated T extends Number, U> void m() {}
}
`)

	methods := symbols.TopLevelClasses[0].Methods
	if len(methods) != 1 {
		t.Fatalf("expected one method, got %d", len(methods))
	}
	want := []symbol.TypeParam{
		{Name: "T", Bounds: []symbol.JavaType{{Original: "Number"}}},
		{Name: "U"},
	}
	if diff := cmp.Diff(want, methods[0].TypeParameters); diff != "" {
		t.Errorf("type parameters mismatch (-want +got):\n%s", diff)
	}

	var dropped []string
	for _, entry := range hook.AllEntries() {
		if entry.Message == "Dropping annotations of type parameter" {
			dropped = append(dropped, entry.Data["typeParameter"].(string))
		}
	}
	if diff := cmp.Diff([]string{"T"}, dropped); diff != "" {
		t.Errorf("expected the dropped annotation to be logged (-want +got):\n%s", diff)
	}
}
