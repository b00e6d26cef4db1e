package model

import (
	"fmt"
	"go/token"
	"sort"
	"strings"
)

// TypeParam is a type parameter of a generic union.
type TypeParam struct {
	Name       string
	Constraint string
}

// Override is an explicit alias for the case at Index.
type Override struct {
	Index int
	Alias string
	Pos   token.Position
}

// Runtime identifies the package generated code refers to for tuples and
// invalid state errors.
type Runtime struct {
	Path      string
	Qualifier string // Empty when the union is generated inside the runtime package
}

// Ref qualifies name with the runtime package when needed.
func (r Runtime) Ref(name string) string {
	if r.Qualifier == "" {
		return name
	}
	return r.Qualifier + "." + name
}

// Declaration represents one union to generate. It is built once by the
// parser and never modified afterwards.
type Declaration struct {
	Name       string
	Package    string // Package name of the declaring file
	ImportPath string // Import path of the declaring package, if known
	Dir        string // Directory of the declaring package
	Doc        string
	TypeParams []TypeParam
	Cases      []*CaseType
	Overrides  []Override
	Extras     Extras
	Record     bool
	Imports    []Import // Imports of the declaring file
	Runtime    Runtime
	Pos        token.Position
	Source     string // Declaration text as written, used for fingerprints
}

// TypeName returns the union type as used in signatures, e.g. "Result[T]".
func (d *Declaration) TypeName() string {
	return d.Name + d.TypeArgs()
}

// TypeArgs returns "[T, U]" for generic unions and "" otherwise.
func (d *Declaration) TypeArgs() string {
	if len(d.TypeParams) == 0 {
		return ""
	}
	names := make([]string, len(d.TypeParams))
	for i, tp := range d.TypeParams {
		names[i] = tp.Name
	}
	return "[" + strings.Join(names, ", ") + "]"
}

// TypeParamList returns "[T any, U comparable]" for generic unions and ""
// otherwise.
func (d *Declaration) TypeParamList() string {
	if len(d.TypeParams) == 0 {
		return ""
	}
	return "[" + d.typeParamDecls() + "]"
}

func (d *Declaration) typeParamDecls() string {
	parts := make([]string, len(d.TypeParams))
	for i, tp := range d.TypeParams {
		parts[i] = tp.Name + " " + tp.Constraint
	}
	return strings.Join(parts, ", ")
}

// TypeParamListWith is like TypeParamList with extra parameters appended.
func (d *Declaration) TypeParamListWith(extra ...string) string {
	parts := make([]string, 0, 2)
	if len(d.TypeParams) > 0 {
		parts = append(parts, d.typeParamDecls())
	}
	parts = append(parts, extra...)
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IsTypeParam reports whether name is a type parameter of the union.
func (d *Declaration) IsTypeParam(name string) bool {
	for _, tp := range d.TypeParams {
		if tp.Name == name {
			return true
		}
	}
	return false
}

// ResolvedCase pairs a case type with its final alias.
type ResolvedCase struct {
	Index      int
	Type       *CaseType
	Alias      string
	Overridden bool
}

func (c ResolvedCase) IsName() string      { return "Is" + c.Alias }
func (c ResolvedCase) AsName() string      { return "As" + c.Alias }
func (c ResolvedCase) TryGetName() string  { return "TryGetAs" + c.Alias }
func (c ResolvedCase) FromName() string    { return "From" + c.Alias }
func (c ResolvedCase) FlagField() string   { return "is" + c.Alias }
func (c ResolvedCase) ValueField() string  { return "as" + c.Alias }
func (c ResolvedCase) HandlerName() string { return "on" + c.Alias }

// MemberKind tells functions and methods apart.
type MemberKind int

const (
	MemberMethod MemberKind = iota
	MemberFunc
)

// Param is a named parameter of a generated member.
type Param struct {
	Name string
	Type string
}

// Member is a generated function or method. Body holds statements, one per
// line, with nested blocks indented by tabs.
type Member struct {
	Kind       MemberKind
	Name       string
	Doc        string
	Receiver   string // e.g. "u Result[T]"; empty for functions
	TypeParams string // e.g. "[T any, TOutput any]"
	Params     []Param
	Results    []string
	Body       []string
}

// GeneratedUnion is the complete member set of one union.
type GeneratedUnion struct {
	Decl    *Declaration
	Doc     string
	Cases   []ResolvedCase
	Imports []Import
	Fields  []Field
	Members []Member
}

// Member returns the member named name, or nil.
func (g *GeneratedUnion) Member(name string) *Member {
	for i := range g.Members {
		if g.Members[i].Name == name {
			return &g.Members[i]
		}
	}
	return nil
}

// MemberNames returns the names of all generated members in order.
func (g *GeneratedUnion) MemberNames() []string {
	names := make([]string, len(g.Members))
	for i, m := range g.Members {
		names[i] = m.Name
	}
	return names
}

// Extras is the set of optional generation features.
type Extras struct {
	From    bool // Named factory methods per case
	AsValue bool // Reach-through accessors for wrapper cases
}

var extraNames = map[string]func(*Extras){
	"from":    func(e *Extras) { e.From = true },
	"asvalue": func(e *Extras) { e.AsValue = true },
}

// ParseExtras parses option names such as "from" and "asvalue". Names are
// case-insensitive.
func ParseExtras(names []string) (Extras, error) {
	var e Extras
	for _, name := range names {
		set, ok := extraNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return Extras{}, fmt.Errorf("unknown extra %q (want one of %s)", name, strings.Join(ExtraNames(), ", "))
		}
		set(&e)
	}
	return e, nil
}

// ExtraNames returns the accepted option names, sorted.
func ExtraNames() []string {
	names := make([]string, 0, len(extraNames))
	for name := range extraNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Union returns the options set in either e or o.
func (e Extras) Union(o Extras) Extras {
	return Extras{
		From:    e.From || o.From,
		AsValue: e.AsValue || o.AsValue,
	}
}

func (e Extras) String() string {
	var names []string
	if e.AsValue {
		names = append(names, "asvalue")
	}
	if e.From {
		names = append(names, "from")
	}
	return strings.Join(names, ",")
}
