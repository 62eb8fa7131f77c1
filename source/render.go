package source

import (
	"strings"

	"github.com/NickyBoy89/javasrc/typename"
	log "github.com/sirupsen/logrus"
)

// RenderTypeVariable writes a single variable of a generic clause, either as
// its bare name or as `Name extends B1 & B2`
func RenderTypeVariable(v *TypeVariable, r NameResolver) string {
	if v.origin != nil {
		r = shadowedResolver{inner: r, variables: v.origin}
	}

	bounds := make([]string, 0, len(v.bounds))
	for index, b := range v.bounds {
		rendered := b.render(r)
		if strings.TrimSpace(rendered) == "" {
			log.WithFields(log.Fields{
				"typeVariable": v.name,
				"index":        index,
			}).Warn("Omitting bound that renders empty")
			continue
		}
		bounds = append(bounds, rendered)
	}

	if len(bounds) == 0 {
		return v.name
	}
	return v.name + " extends " + strings.Join(bounds, " & ")
}

// shadowedResolver keeps qualified any type whose simple name is also the name
// of a type variable of the clause, since inside the clause that simple name
// means the variable
type shadowedResolver struct {
	inner     NameResolver
	variables *TypeParameters
}

func (s shadowedResolver) SimpleName(qualified string) string {
	return typename.MapNames(qualified, func(name string) string {
		if typename.IsQualified(name) && s.variables.HasTypeVariable(typename.Simple(name)) {
			return name
		}
		if s.inner == nil {
			return typename.Simple(name)
		}
		return s.inner.SimpleName(name)
	})
}

func (s shadowedResolver) AddImport(qualified string) bool {
	if s.inner == nil {
		return false
	}
	return s.inner.AddImport(qualified)
}

// RenderClause writes the generic clause for a list of variables, e.g.
// `<I, O extends Serializable>`. An empty list has no clause, so it renders as
// an empty string. Variables that were never named are left out
func RenderClause(vars []*TypeVariable, r NameResolver) string {
	rendered := make([]string, 0, len(vars))
	for index, v := range vars {
		if v.name == "" {
			log.WithField("index", index).Warn("Omitting unnamed type variable from generic clause")
			continue
		}
		rendered = append(rendered, RenderTypeVariable(v, r))
	}

	if len(rendered) == 0 {
		return ""
	}
	return "<" + strings.Join(rendered, ", ") + ">"
}
