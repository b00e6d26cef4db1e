package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/ast/astutil"

	"gounion/internal/config"
	"gounion/internal/model"
)

// maxTupleSize is the largest tuple the runtime package has a carrier for.
const maxTupleSize = 8

// splitTerms splits a union body on top-level '|'.
func splitTerms(body string) ([]string, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	terms, err := splitTop(body, '|')
	if err != nil {
		return nil, err
	}
	for i, t := range terms {
		if t == "" {
			return nil, fmt.Errorf("case %d is empty", i)
		}
	}
	return terms, nil
}

// splitTop splits s on sep outside brackets, braces, parentheses and
// quoted strings. Parts are trimmed.
func splitTop(s string, sep byte) ([]string, error) {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '`':
			quote = c
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced %q in %q", c, s)
			}
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 || quote != 0 {
		return nil, fmt.Errorf("unbalanced brackets in %q", s)
	}
	return append(parts, strings.TrimSpace(s[start:])), nil
}

// closingParen returns the index of the parenthesis closing the one at
// s[0], or -1.
func closingParen(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// resolver classifies the case types of one declaration.
type resolver struct {
	cfg  *config.Config
	pk   *pkg
	decl *model.Declaration
}

// term classifies one case term: a parenthesised tuple or a Go type
// expression.
func (r *resolver) term(s string) (*model.CaseType, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && closingParen(s) == len(s)-1 {
		parts, err := splitTop(s[1:len(s)-1], ',')
		if err != nil {
			return nil, err
		}
		if len(parts) == 1 {
			return r.term(parts[0])
		}
		if len(parts) > maxTupleSize {
			return nil, fmt.Errorf("tuple %s has %d elements, at most %d are supported", s, len(parts), maxTupleSize)
		}
		return r.tuple(parts)
	}

	expr, err := parser.ParseExpr(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a type: %v", s, err)
	}
	return r.caseType(expr)
}

func (r *resolver) tuple(parts []string) (*model.CaseType, error) {
	t := &model.CaseType{Shape: model.ShapeTuple}
	displays := make([]string, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("tuple element %d is empty", i)
		}
		elem, err := r.term(part)
		if err != nil {
			return nil, err
		}
		t.Elems = append(t.Elems, elem)
		displays[i] = elem.Display
	}
	t.Display = fmt.Sprintf("%s[%s]", r.decl.Runtime.Ref(fmt.Sprintf("Tuple%d", len(parts))), strings.Join(displays, ", "))
	t.Qualifiers = mergeQualifiers(t.Elems...)
	return t, nil
}

// caseType converts a type expression into a case type description.
func (r *resolver) caseType(expr ast.Expr) (*model.CaseType, error) {
	switch e := expr.(type) {
	case *ast.ParenExpr:
		return r.caseType(e.X)

	case *ast.Ident:
		if r.decl.IsTypeParam(e.Name) {
			return &model.CaseType{Shape: model.ShapeSimple, Name: e.Name, Display: e.Name, TypeParam: true}, nil
		}
		t := &model.CaseType{
			Shape:     model.ShapeSimple,
			Name:      e.Name,
			Display:   e.Name,
			Reference: r.localReference(e.Name),
			Wrapper:   r.wrapper(e, nil),
		}
		if e.Name == "any" {
			t.Name = "Any"
		}
		return t, nil

	case *ast.SelectorExpr:
		qual, ok := e.X.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("unsupported type %s", types.ExprString(e))
		}
		return &model.CaseType{
			Shape:      model.ShapeSimple,
			Name:       e.Sel.Name,
			Display:    types.ExprString(e),
			Reference:  r.foreignReference(qual.Name, e.Sel.Name),
			Qualifiers: []string{qual.Name},
			Wrapper:    r.wrapper(e, nil),
		}, nil

	case *ast.IndexExpr:
		return r.generic(expr, e.X, []ast.Expr{e.Index})
	case *ast.IndexListExpr:
		return r.generic(expr, e.X, e.Indices)

	case *ast.StarExpr:
		return r.composite(expr, "Ptr", true, e.X)
	case *ast.MapType:
		return r.composite(expr, "Map", true, e.Key, e.Value)
	case *ast.ChanType:
		return r.composite(expr, "Chan", true, e.Value)

	case *ast.ArrayType:
		elem, err := r.caseType(e.Elt)
		if err != nil {
			return nil, err
		}
		return &model.CaseType{
			Shape:      model.ShapeArray,
			Display:    types.ExprString(e),
			Elems:      []*model.CaseType{elem},
			Reference:  e.Len == nil,
			Qualifiers: elem.Qualifiers,
		}, nil

	case *ast.FuncType:
		return r.opaque(expr, "Func", true), nil
	case *ast.InterfaceType:
		return r.opaque(expr, "Any", true), nil
	case *ast.StructType:
		return r.opaque(expr, "Struct", false), nil
	}
	return nil, fmt.Errorf("unsupported type %s", types.ExprString(expr))
}

// generic describes an instantiation such as Name[A] or pkg.Name[A, B].
func (r *resolver) generic(expr, base ast.Expr, args []ast.Expr) (*model.CaseType, error) {
	t := &model.CaseType{
		Shape:   model.ShapeGeneric,
		Display: types.ExprString(expr),
	}
	switch b := base.(type) {
	case *ast.Ident:
		t.Name = b.Name
		t.Reference = r.localReference(b.Name)
	case *ast.SelectorExpr:
		qual, ok := b.X.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("unsupported type %s", t.Display)
		}
		t.Name = b.Sel.Name
		t.Reference = r.foreignReference(qual.Name, b.Sel.Name)
		t.Qualifiers = []string{qual.Name}
	default:
		return nil, fmt.Errorf("unsupported type %s", t.Display)
	}

	for _, arg := range args {
		elem, err := r.caseType(arg)
		if err != nil {
			return nil, err
		}
		t.Elems = append(t.Elems, elem)
	}
	t.Qualifiers = mergeQualifiers(append([]*model.CaseType{{Qualifiers: t.Qualifiers}}, t.Elems...)...)
	t.Wrapper = r.wrapper(base, args)
	return t, nil
}

// composite describes built-in parameterised types as instantiations of a
// fixed base name.
func (r *resolver) composite(expr ast.Expr, name string, reference bool, args ...ast.Expr) (*model.CaseType, error) {
	t := &model.CaseType{
		Shape:     model.ShapeGeneric,
		Name:      name,
		Display:   types.ExprString(expr),
		Reference: reference,
	}
	for _, arg := range args {
		elem, err := r.caseType(arg)
		if err != nil {
			return nil, err
		}
		t.Elems = append(t.Elems, elem)
	}
	t.Qualifiers = mergeQualifiers(t.Elems...)
	return t, nil
}

func (r *resolver) opaque(expr ast.Expr, name string, reference bool) *model.CaseType {
	return &model.CaseType{
		Shape:      model.ShapeSimple,
		Name:       name,
		Display:    types.ExprString(expr),
		Reference:  reference,
		Qualifiers: qualifiers(expr),
	}
}

func (r *resolver) localReference(name string) bool {
	if t, ok := r.pk.types[name]; ok {
		return t.Reference || r.cfg.IsReference(name, r.pk.importPath+"."+name)
	}
	switch name {
	case "error", "any":
		return true
	}
	return r.cfg.IsReference(name)
}

func (r *resolver) foreignReference(qual, name string) bool {
	names := []string{qual + "." + name}
	if imp, ok := r.lookupImport(qual); ok {
		names = append(names, imp.Path+"."+name)
	}
	return r.cfg.IsReference(names...)
}

func (r *resolver) lookupImport(qual string) (model.Import, bool) {
	for _, imp := range r.decl.Imports {
		if imp.Name() == qual {
			return imp, true
		}
	}
	return model.Import{}, false
}

// wrapper detects the wrapper shape of a case whose base type is base,
// instantiated with args. Package-local structs are inspected directly;
// other types are looked up in the configured wrappers.
func (r *resolver) wrapper(base ast.Expr, args []ast.Expr) *model.Wrapper {
	var (
		w     config.Wrapper
		found bool
	)
	switch b := base.(type) {
	case *ast.Ident:
		if t, ok := r.pk.types[b.Name]; ok && t.Kind == model.KindStruct {
			if f, ok := r.pk.wrapperField(t); ok {
				w, found = config.Wrapper{TypeParams: t.TypeParams, Field: f.Name, Type: f.Type}, true
			}
		}
		if !found {
			w, found = r.cfg.LookupWrapper(b.Name, r.pk.importPath+"."+b.Name)
		}
	case *ast.SelectorExpr:
		qual, ok := b.X.(*ast.Ident)
		if !ok {
			return nil
		}
		names := []string{qual.Name + "." + b.Sel.Name}
		if imp, ok := r.lookupImport(qual.Name); ok {
			names = append(names, imp.Path+"."+b.Sel.Name)
		}
		w, found = r.cfg.LookupWrapper(names...)
	}
	if !found || (w.Field != "Value" && w.Field != "Values") || len(w.TypeParams) != len(args) {
		return nil
	}

	inner, err := substitute(w.Type, w.TypeParams, args)
	if err != nil {
		return nil
	}
	return &model.Wrapper{
		Field:      w.Field,
		Type:       types.ExprString(inner),
		Plural:     w.Field == "Values",
		Qualifiers: qualifiers(inner),
	}
}

// substitute parses typ and replaces the type parameters params with args.
func substitute(typ string, params []string, args []ast.Expr) (ast.Expr, error) {
	expr, err := parser.ParseExpr(typ)
	if err != nil {
		return nil, fmt.Errorf("wrapper type %q: %w", typ, err)
	}
	if len(params) == 0 {
		return expr, nil
	}

	subst := make(map[string]ast.Expr, len(params))
	for i, name := range params {
		subst[name] = args[i]
	}
	out := astutil.Apply(expr, func(c *astutil.Cursor) bool {
		id, ok := c.Node().(*ast.Ident)
		if !ok {
			return true
		}
		if sel, ok := c.Parent().(*ast.SelectorExpr); ok && sel.Sel == id {
			return true
		}
		if arg, ok := subst[id.Name]; ok {
			c.Replace(arg)
		}
		return true
	}, nil)
	return out.(ast.Expr), nil
}

// qualifiers returns the package names referenced by expr, sorted.
func qualifiers(expr ast.Expr) []string {
	seen := make(map[string]bool)
	ast.Inspect(expr, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				seen[id.Name] = true
			}
		}
		return true
	})
	return sortedKeys(seen)
}

func mergeQualifiers(cases ...*model.CaseType) []string {
	seen := make(map[string]bool)
	for _, t := range cases {
		for _, q := range t.Qualifiers {
			seen[q] = true
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]bool) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
