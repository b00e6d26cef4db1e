// Package synth builds the complete generated member set of a union
// declaration. It produces structured members only; turning them into source
// text is left to the generator.
package synth

import (
	"errors"
	"fmt"
	"go/token"
	"sort"
	"strconv"
	"strings"

	"gounion/internal/alias"
	"gounion/internal/diag"
	"gounion/internal/model"
)

const (
	receiverName = "u"
	outputParam  = "TOutput"
)

// Synthesize validates decl, resolves its aliases and builds every generated
// member in declaration order. The returned error is a [*diag.Diagnostic] or
// a join of several.
func Synthesize(decl *model.Declaration) (*model.GeneratedUnion, error) {
	if err := validate(decl); err != nil {
		return nil, err
	}

	resolved := alias.ResolveCases(decl)
	if err := checkCollisions(decl, resolved); err != nil {
		return nil, err
	}

	s := &synthesizer{
		decl:   decl,
		output: outputName(decl),
		out: &model.GeneratedUnion{
			Decl:  decl,
			Doc:   unionDoc(decl, resolved),
			Cases: resolved,
		},
	}

	for _, c := range resolved {
		s.out.Fields = append(s.out.Fields,
			model.Field{Name: c.FlagField(), Type: "bool"},
			model.Field{Name: c.ValueField(), Type: c.Type.Display},
		)
	}
	for _, c := range resolved {
		s.caseMembers(c)
	}
	s.valueAccessor()
	if decl.Record {
		s.equal()
	}
	s.match()
	s.matchContext()
	s.switchMembers()
	s.switchContext()

	if err := s.checkMemberNames(); err != nil {
		return nil, err
	}
	imports, err := s.imports()
	if err != nil {
		return nil, err
	}
	s.out.Imports = imports

	return s.out, nil
}

// validate checks what can be checked before aliases are resolved.
func validate(decl *model.Declaration) error {
	if len(decl.Cases) == 0 {
		return diag.New(diag.ErrEmptyCaseList, decl.Pos, decl.Name, "a union needs at least one case")
	}

	var errs []error
	given := make(map[int]string, len(decl.Overrides))
	for _, o := range decl.Overrides {
		if prev, ok := given[o.Index]; ok {
			errs = append(errs, diag.New(diag.ErrMalformedDeclaration, posOr(o.Pos, decl.Pos), decl.Name,
				"case %d has two aliases, %q and %q", o.Index, prev, o.Alias))
			continue
		}
		given[o.Index] = o.Alias
		if o.Index < 0 || o.Index >= len(decl.Cases) {
			errs = append(errs, diag.New(diag.ErrInvalidOverrideIndex, posOr(o.Pos, decl.Pos), decl.Name,
				"alias %q is given for case %d, but the union has %d cases", o.Alias, o.Index, len(decl.Cases)))
			continue
		}
		if !token.IsIdentifier(o.Alias) {
			errs = append(errs, diag.New(diag.ErrMalformedDeclaration, posOr(o.Pos, decl.Pos), decl.Name,
				"alias %q for case %d is not a Go identifier", o.Alias, o.Index))
		}
	}
	return errors.Join(errs...)
}

// checkCollisions reports every case whose alias was already taken by an
// earlier case.
func checkCollisions(decl *model.Declaration, resolved []model.ResolvedCase) error {
	seen := make(map[string]model.ResolvedCase, len(resolved))
	var errs []error
	for _, c := range resolved {
		prev, ok := seen[c.Alias]
		if !ok {
			seen[c.Alias] = c
			continue
		}
		errs = append(errs, diag.New(diag.ErrAliasCollision, decl.Pos, decl.Name,
			"cases %d (%s) and %d (%s) both resolve to %q",
			prev.Index, prev.Type.Display, c.Index, c.Type.Display, c.Alias))
	}
	return errors.Join(errs...)
}

func posOr(pos, fallback token.Position) token.Position {
	if pos.IsValid() {
		return pos
	}
	return fallback
}

// outputName picks the name of the type parameter used for match results,
// avoiding the union's own type parameters.
func outputName(decl *model.Declaration) string {
	name := outputParam
	for i := 1; decl.IsTypeParam(name); i++ {
		name = outputParam + strconv.Itoa(i)
	}
	return name
}

func unionDoc(decl *model.Declaration, cases []model.ResolvedCase) string {
	if decl.Doc != "" {
		return decl.Doc
	}
	names := make([]string, len(cases))
	for i, c := range cases {
		names[i] = c.Type.Display
	}
	return fmt.Sprintf("%s holds exactly one of %s.", decl.Name, strings.Join(names, ", "))
}

type synthesizer struct {
	decl   *model.Declaration
	output string
	out    *model.GeneratedUnion
}

func (s *synthesizer) add(m model.Member) {
	s.out.Members = append(s.out.Members, m)
}

func (s *synthesizer) receiver() string {
	return receiverName + " " + s.decl.TypeName()
}

func (s *synthesizer) invalidState() string {
	return fmt.Sprintf("%s(%q)", s.decl.Runtime.Ref("InvalidState"), s.decl.Name)
}

// field refers to a field of the receiver.
func field(name string) string {
	return receiverName + "." + name
}

// holds is the condition under which u holds case c. Nil-able cases also
// require a non-nil value, so a true result always comes with a usable value.
func holds(c model.ResolvedCase) string {
	cond := field(c.FlagField())
	if c.Type.Reference {
		cond += " && " + field(c.ValueField()) + " != nil"
	}
	return cond
}

func (s *synthesizer) caseMembers(c model.ResolvedCase) {
	typ := c.Type.Display
	union := s.decl.TypeName()

	s.add(model.Member{
		Kind:     model.MemberMethod,
		Name:     c.IsName(),
		Doc:      fmt.Sprintf("%s reports whether u holds a %s.", c.IsName(), typ),
		Receiver: s.receiver(),
		Results:  []string{"bool"},
		Body:     []string{"return " + field(c.FlagField())},
	})

	s.add(model.Member{
		Kind:     model.MemberMethod,
		Name:     c.AsName(),
		Doc:      fmt.Sprintf("%s returns the %s held by u, or the zero value if u holds another case.", c.AsName(), typ),
		Receiver: s.receiver(),
		Results:  []string{typ},
		Body:     []string{"return " + field(c.ValueField())},
	})

	doc := fmt.Sprintf("%s returns the %s held by u and true, or the zero value and false.", c.TryGetName(), typ)
	if c.Type.Reference {
		doc += " The value is never nil when the result is true."
	}
	s.add(model.Member{
		Kind:     model.MemberMethod,
		Name:     c.TryGetName(),
		Doc:      doc,
		Receiver: s.receiver(),
		Results:  []string{typ, "bool"},
		Body: []string{
			"if " + holds(c) + " {",
			"\treturn " + field(c.ValueField()) + ", true",
			"}",
			"var zero " + typ,
			"return zero, false",
		},
	})

	construct := []string{
		"return " + union + "{",
		"\t" + c.FlagField() + ": true,",
		"\t" + c.ValueField() + ": value,",
		"}",
	}
	ctor := "New" + s.decl.Name + "From" + c.Alias
	s.add(model.Member{
		Kind:       model.MemberFunc,
		Name:       ctor,
		Doc:        fmt.Sprintf("%s returns a %s holding value.", ctor, s.decl.Name),
		TypeParams: s.decl.TypeParamList(),
		Params:     []model.Param{{Name: "value", Type: typ}},
		Results:    []string{union},
		Body:       construct,
	})

	if s.decl.Extras.From {
		s.add(model.Member{
			Kind:     model.MemberMethod,
			Name:     c.FromName(),
			Doc:      fmt.Sprintf("%s returns a %s holding value. It is equivalent to %s.", c.FromName(), s.decl.Name, ctor),
			Receiver: union,
			Params:   []model.Param{{Name: "value", Type: typ}},
			Results:  []string{union},
			Body:     construct,
		})
	}

	if s.decl.Extras.AsValue && s.reachable(c.Type.Wrapper) {
		s.asValue(c)
	}
}

// reachable reports whether the generated file can refer to the wrapper's
// inner type.
func (s *synthesizer) reachable(w *model.Wrapper) bool {
	if w == nil {
		return false
	}
	for _, q := range w.Qualifiers {
		if _, ok := s.lookupImport(q); !ok {
			return false
		}
	}
	return true
}

func (s *synthesizer) asValue(c model.ResolvedCase) {
	w := c.Type.Wrapper
	name := c.TryGetName() + w.Field
	what := "value"
	if w.Plural {
		what = "values"
	}
	s.add(model.Member{
		Kind:     model.MemberMethod,
		Name:     name,
		Doc:      fmt.Sprintf("%s returns the %s wrapped by the %s held by u and true, or the zero value and false.", name, what, c.Type.Display),
		Receiver: s.receiver(),
		Results:  []string{w.Type, "bool"},
		Body: []string{
			"if " + holds(c) + " {",
			"\treturn " + field(c.ValueField()) + "." + w.Field + ", true",
			"}",
			"var zero " + w.Type,
			"return zero, false",
		},
	})
}

func (s *synthesizer) valueAccessor() {
	var body []string
	for _, c := range s.out.Cases {
		body = append(body,
			"if "+field(c.FlagField())+" {",
			"\treturn "+field(c.ValueField())+", nil",
			"}",
		)
	}
	body = append(body, "return nil, "+s.invalidState())

	s.add(model.Member{
		Kind:     model.MemberMethod,
		Name:     "Value",
		Doc:      "Value returns the value held by u. It fails with an invalid state error if u was not built by one of the generated constructors.",
		Receiver: s.receiver(),
		Results:  []string{"any", "error"},
		Body:     body,
	})
}

func (s *synthesizer) equal() {
	body := []string{"switch {"}
	var none []string
	for _, c := range s.out.Cases {
		body = append(body,
			"case "+field(c.FlagField())+":",
			"\treturn other."+c.FlagField()+" && reflect.DeepEqual("+field(c.ValueField())+", other."+c.ValueField()+")",
		)
		none = append(none, "!other."+c.FlagField())
	}
	body = append(body, "}", "return "+strings.Join(none, " && "))

	s.add(model.Member{
		Kind:     model.MemberMethod,
		Name:     "Equal",
		Doc:      "Equal reports whether u and other hold the same case with deeply equal values.",
		Receiver: s.receiver(),
		Params:   []model.Param{{Name: "other", Type: s.decl.TypeName()}},
		Results:  []string{"bool"},
		Body:     body,
	})
}

// dispatch builds a switch over the case flags. call returns the statements
// run for a case.
func (s *synthesizer) dispatch(call func(c model.ResolvedCase) []string) []string {
	body := []string{"switch {"}
	for _, c := range s.out.Cases {
		body = append(body, "case "+field(c.FlagField())+":")
		for _, line := range call(c) {
			body = append(body, "\t"+line)
		}
	}
	return append(body, "}")
}

func (s *synthesizer) handlers(signature func(typ string) string) []model.Param {
	params := make([]model.Param, len(s.out.Cases))
	for i, c := range s.out.Cases {
		params[i] = model.Param{Name: c.HandlerName(), Type: signature(c.Type.Display)}
	}
	return params
}

func (s *synthesizer) match() {
	name := "Match" + s.decl.Name
	params := append([]model.Param{{Name: receiverName, Type: s.decl.TypeName()}},
		s.handlers(func(typ string) string { return "func(" + typ + ") " + s.output })...)

	body := s.dispatch(func(c model.ResolvedCase) []string {
		return []string{"return " + c.HandlerName() + "(" + field(c.ValueField()) + "), nil"}
	})
	body = append(body,
		"var zero "+s.output,
		"return zero, "+s.invalidState(),
	)

	s.add(model.Member{
		Kind:       model.MemberFunc,
		Name:       name,
		Doc:        fmt.Sprintf("%s calls the handler of the case held by u and returns its result. Handlers are given in case order.", name),
		TypeParams: s.decl.TypeParamListWith(s.output + " any"),
		Params:     params,
		Results:    []string{s.output, "error"},
		Body:       body,
	})
}

func (s *synthesizer) matchContext() {
	name := "Match" + s.decl.Name + "Context"
	params := append([]model.Param{
		{Name: "ctx", Type: "context.Context"},
		{Name: receiverName, Type: s.decl.TypeName()},
	}, s.handlers(func(typ string) string {
		return "func(context.Context, " + typ + ") (" + s.output + ", error)"
	})...)

	body := s.dispatch(func(c model.ResolvedCase) []string {
		return []string{"return " + c.HandlerName() + "(ctx, " + field(c.ValueField()) + ")"}
	})
	body = append(body,
		"var zero "+s.output,
		"return zero, "+s.invalidState(),
	)

	s.add(model.Member{
		Kind:       model.MemberFunc,
		Name:       name,
		Doc:        fmt.Sprintf("%s is like Match%s for handlers that take a context and may fail. Only the selected handler runs.", name, s.decl.Name),
		TypeParams: s.decl.TypeParamListWith(s.output + " any"),
		Params:     params,
		Results:    []string{s.output, "error"},
		Body:       body,
	})
}

func (s *synthesizer) switchMembers() {
	body := s.dispatch(func(c model.ResolvedCase) []string {
		return []string{
			c.HandlerName() + "(" + field(c.ValueField()) + ")",
			"return nil",
		}
	})
	body = append(body, "return "+s.invalidState())

	s.add(model.Member{
		Kind:     model.MemberMethod,
		Name:     "Switch",
		Doc:      "Switch calls the handler of the case held by u. Handlers are given in case order.",
		Receiver: s.receiver(),
		Params:   s.handlers(func(typ string) string { return "func(" + typ + ")" }),
		Results:  []string{"error"},
		Body:     body,
	})
}

func (s *synthesizer) switchContext() {
	params := append([]model.Param{{Name: "ctx", Type: "context.Context"}},
		s.handlers(func(typ string) string { return "func(context.Context, " + typ + ") error" })...)

	body := s.dispatch(func(c model.ResolvedCase) []string {
		return []string{"return " + c.HandlerName() + "(ctx, " + field(c.ValueField()) + ")"}
	})
	body = append(body, "return "+s.invalidState())

	s.add(model.Member{
		Kind:     model.MemberMethod,
		Name:     "SwitchContext",
		Doc:      "SwitchContext is like Switch for handlers that take a context and may fail.",
		Receiver: s.receiver(),
		Params:   params,
		Results:  []string{"error"},
		Body:     body,
	})
}

// checkMemberNames catches aliases that differ but still produce the same
// member name, such as "Foo" with asvalue next to "FooValue".
func (s *synthesizer) checkMemberNames() error {
	methods := make(map[string]bool)
	funcs := make(map[string]bool)
	var errs []error
	for _, m := range s.out.Members {
		seen := methods
		if m.Kind == model.MemberFunc {
			seen = funcs
		}
		if seen[m.Name] {
			errs = append(errs, diag.New(diag.ErrAliasCollision, s.decl.Pos, s.decl.Name,
				"generated member %s is declared twice", m.Name))
		}
		seen[m.Name] = true
	}
	return errors.Join(errs...)
}

func (s *synthesizer) lookupImport(qualifier string) (model.Import, bool) {
	for _, imp := range s.decl.Imports {
		if imp.Name() == qualifier {
			return imp, true
		}
	}
	return model.Import{}, false
}

// imports lists the packages the generated file refers to.
func (s *synthesizer) imports() ([]model.Import, error) {
	byPath := map[string]model.Import{
		"context": {Path: "context"},
	}
	if s.decl.Record {
		byPath["reflect"] = model.Import{Path: "reflect"}
	}
	if rt := s.decl.Runtime; rt.Qualifier != "" {
		imp := model.Import{Path: rt.Path}
		if imp.Name() != rt.Qualifier {
			imp.Alias = rt.Qualifier
		}
		byPath[rt.Path] = imp
	}

	add := func(q string) error {
		if q == s.decl.Runtime.Qualifier {
			return nil
		}
		imp, ok := s.lookupImport(q)
		if !ok {
			return diag.New(diag.ErrMalformedDeclaration, s.decl.Pos, s.decl.Name,
				"package %s is used by a case but not imported by %s", q, s.decl.Pos.Filename)
		}
		byPath[imp.Path] = imp
		return nil
	}

	var errs []error
	for _, c := range s.out.Cases {
		qualifiers := c.Type.Qualifiers
		if s.decl.Extras.AsValue && s.reachable(c.Type.Wrapper) {
			qualifiers = append(append([]string(nil), qualifiers...), c.Type.Wrapper.Qualifiers...)
		}
		for _, q := range qualifiers {
			if err := add(q); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	imports := make([]model.Import, 0, len(byPath))
	for _, imp := range byPath {
		imports = append(imports, imp)
	}
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})
	return imports, nil
}
