// Package alias derives the identifiers that name a union case's generated
// members.
package alias

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gounion/internal/model"
)

const (
	separator   = "And"
	ofInfix     = "Of"
	tupleSuffix = "Tuple"
	arraySuffix = "Array"
)

// Resolve returns the alias of a case type. A non-empty override is returned
// verbatim. Otherwise the alias is derived from the shape of t and depends on
// nothing else, so equal descriptions always resolve to equal aliases.
func Resolve(t *model.CaseType, override string) string {
	if override != "" {
		return override
	}
	return derive(t)
}

func derive(t *model.CaseType) string {
	switch t.Shape {
	case model.ShapeTuple:
		return joinAliases(t.Elems) + tupleSuffix

	case model.ShapeGeneric:
		// Type parameters of the union are not concrete at this position.
		// Leaving them out keeps Some[T] as "Some" instead of "SomeOfT".
		concrete := make([]*model.CaseType, 0, len(t.Elems))
		for _, arg := range t.Elems {
			if !arg.TypeParam {
				concrete = append(concrete, arg)
			}
		}
		base := exported(t.Name)
		if len(concrete) == 0 {
			return base
		}
		return base + ofInfix + joinAliases(concrete)

	case model.ShapeArray:
		if len(t.Elems) == 0 {
			return arraySuffix
		}
		return derive(t.Elems[0]) + arraySuffix

	default:
		return exported(t.Name)
	}
}

func joinAliases(types []*model.CaseType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = derive(t)
	}
	return strings.Join(parts, separator)
}

// exported upper-cases the first letter of name and leaves the rest as is.
// Casers keep state, so a new one is made per call.
func exported(name string) string {
	return cases.Title(language.Und, cases.NoLower).String(name)
}

// ResolveCases resolves every case of decl in declaration order. Overrides
// outside the case range are ignored here; the synthesizer reports them.
func ResolveCases(decl *model.Declaration) []model.ResolvedCase {
	overrides := make(map[int]string, len(decl.Overrides))
	for _, o := range decl.Overrides {
		overrides[o.Index] = o.Alias
	}

	resolved := make([]model.ResolvedCase, len(decl.Cases))
	for i, t := range decl.Cases {
		override := overrides[i]
		resolved[i] = model.ResolvedCase{
			Index:      i,
			Type:       t,
			Alias:      Resolve(t, override),
			Overridden: override != "",
		}
	}
	return resolved
}
