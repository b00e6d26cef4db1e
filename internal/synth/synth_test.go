package synth_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gounion/internal/diag"
	"gounion/internal/model"
	"gounion/internal/synth"
)

var runtime = model.Runtime{Path: "gounion/unions", Qualifier: "unions"}

func simple(name string) *model.CaseType {
	return &model.CaseType{Shape: model.ShapeSimple, Name: name, Display: name}
}

func generic(name, display string, args ...*model.CaseType) *model.CaseType {
	return &model.CaseType{Shape: model.ShapeGeneric, Name: name, Display: display, Elems: args}
}

func param(name string) *model.CaseType {
	t := simple(name)
	t.TypeParam = true
	return t
}

func trueOrFalse() *model.Declaration {
	return &model.Declaration{
		Name:    "TrueOrFalse",
		Package: "unions",
		Cases:   []*model.CaseType{simple("True"), simple("False")},
		Runtime: model.Runtime{Path: "gounion/unions"},
	}
}

func TestSynthesizeMemberOrder(t *testing.T) {
	u, err := synth.Synthesize(trueOrFalse())
	require.NoError(t, err)

	want := []string{
		"IsTrue", "AsTrue", "TryGetAsTrue", "NewTrueOrFalseFromTrue",
		"IsFalse", "AsFalse", "TryGetAsFalse", "NewTrueOrFalseFromFalse",
		"Value",
		"MatchTrueOrFalse", "MatchTrueOrFalseContext",
		"Switch", "SwitchContext",
	}
	if diff := cmp.Diff(want, u.MemberNames()); diff != "" {
		t.Errorf("member names mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []model.Field{
		{Name: "isTrue", Type: "bool"},
		{Name: "asTrue", Type: "True"},
		{Name: "isFalse", Type: "bool"},
		{Name: "asFalse", Type: "False"},
	}, u.Fields)
	assert.Equal(t, "TrueOrFalse holds exactly one of True, False.", u.Doc)
}

func TestSynthesizeScenarioA(t *testing.T) {
	u, err := synth.Synthesize(trueOrFalse())
	require.NoError(t, err)

	isTrue := u.Member("IsTrue")
	require.NotNil(t, isTrue)
	assert.Equal(t, "u TrueOrFalse", isTrue.Receiver)
	assert.Equal(t, []string{"return u.isTrue"}, isTrue.Body)

	tryTrue := u.Member("TryGetAsTrue")
	require.NotNil(t, tryTrue)
	assert.Equal(t, []string{"True", "bool"}, tryTrue.Results)
	assert.Equal(t, []string{
		"if u.isTrue {",
		"\treturn u.asTrue, true",
		"}",
		"var zero True",
		"return zero, false",
	}, tryTrue.Body)

	ctor := u.Member("NewTrueOrFalseFromFalse")
	require.NotNil(t, ctor)
	assert.Equal(t, model.MemberFunc, ctor.Kind)
	assert.Equal(t, []model.Param{{Name: "value", Type: "False"}}, ctor.Params)
	assert.Equal(t, []string{
		"return TrueOrFalse{",
		"\tisFalse: true,",
		"\tasFalse: value,",
		"}",
	}, ctor.Body)

	// Generated inside the runtime package: no qualifier.
	value := u.Member("Value")
	require.NotNil(t, value)
	assert.Equal(t, `return nil, InvalidState("TrueOrFalse")`, value.Body[len(value.Body)-1])
}

func TestSynthesizeScenarioB(t *testing.T) {
	tupleCase := &model.CaseType{
		Shape:   model.ShapeTuple,
		Display: "unions.Tuple2[Success[string], None]",
		Elems: []*model.CaseType{
			generic("Success", "Success[string]", simple("string")),
			simple("None"),
		},
	}
	decl := &model.Declaration{
		Name:    "Outcome",
		Cases:   []*model.CaseType{tupleCase, simple("False")},
		Runtime: runtime,
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)

	assert.Equal(t, "SuccessOfStringAndNoneTuple", u.Cases[0].Alias)
	assert.NotNil(t, u.Member("IsSuccessOfStringAndNoneTuple"))
	as := u.Member("AsSuccessOfStringAndNoneTuple")
	require.NotNil(t, as)
	assert.Equal(t, []string{"unions.Tuple2[Success[string], None]"}, as.Results)
	assert.NotNil(t, u.Member("IsFalse"))
}

func TestSynthesizeScenarioC(t *testing.T) {
	decl := &model.Declaration{
		Name:      "Shape",
		Cases:     []*model.CaseType{simple("Circle"), simple("Square"), simple("Triangle")},
		Overrides: []model.Override{{Index: 2, Alias: "Tri"}},
		Runtime:   runtime,
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)

	aliases := make([]string, len(u.Cases))
	for i, c := range u.Cases {
		aliases[i] = c.Alias
	}
	assert.Equal(t, []string{"Circle", "Square", "Tri"}, aliases)
	assert.True(t, u.Cases[2].Overridden)
	assert.NotNil(t, u.Member("TryGetAsTri"))
	assert.Nil(t, u.Member("TryGetAsTriangle"))
}

func TestSynthesizeExtras(t *testing.T) {
	success := generic("Success", "Success[string]", simple("string"))
	success.Wrapper = &model.Wrapper{Field: "Value", Type: "string"}
	many := generic("Many", "Many[int]", simple("int"))
	many.Wrapper = &model.Wrapper{Field: "Values", Type: "[]int", Plural: true}

	decl := &model.Declaration{
		Name:    "Result",
		Cases:   []*model.CaseType{success, many, simple("None")},
		Extras:  model.Extras{From: true, AsValue: true},
		Runtime: runtime,
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)

	want := []string{
		"IsSuccessOfString", "AsSuccessOfString", "TryGetAsSuccessOfString", "NewResultFromSuccessOfString", "FromSuccessOfString", "TryGetAsSuccessOfStringValue",
		"IsManyOfInt", "AsManyOfInt", "TryGetAsManyOfInt", "NewResultFromManyOfInt", "FromManyOfInt", "TryGetAsManyOfIntValues",
		"IsNone", "AsNone", "TryGetAsNone", "NewResultFromNone", "FromNone",
		"Value", "MatchResult", "MatchResultContext", "Switch", "SwitchContext",
	}
	if diff := cmp.Diff(want, u.MemberNames()); diff != "" {
		t.Errorf("member names mismatch (-want +got):\n%s", diff)
	}

	from := u.Member("FromNone")
	assert.Equal(t, "Result", from.Receiver)
	assert.Equal(t, model.MemberMethod, from.Kind)

	values := u.Member("TryGetAsManyOfIntValues")
	assert.Equal(t, []string{"[]int", "bool"}, values.Results)
	assert.Contains(t, values.Body, "\treturn u.asManyOfInt.Values, true")
}

func TestSynthesizeAsValueSkipsUnreachableWrapper(t *testing.T) {
	wrapped := simple("Box")
	wrapped.Wrapper = &model.Wrapper{Field: "Value", Type: "time.Time", Qualifiers: []string{"time"}}

	decl := &model.Declaration{
		Name:    "Boxed",
		Cases:   []*model.CaseType{wrapped},
		Extras:  model.Extras{AsValue: true},
		Runtime: runtime,
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)
	assert.Nil(t, u.Member("TryGetAsBoxValue"))

	decl.Imports = []model.Import{{Path: "time"}}
	u, err = synth.Synthesize(decl)
	require.NoError(t, err)
	assert.NotNil(t, u.Member("TryGetAsBoxValue"))
	assert.Contains(t, u.Imports, model.Import{Path: "time"})

	decl.Extras = model.Extras{}
	u, err = synth.Synthesize(decl)
	require.NoError(t, err)
	assert.NotContains(t, u.Imports, model.Import{Path: "time"})
}

func TestSynthesizeReferenceCase(t *testing.T) {
	errCase := simple("error")
	errCase.Reference = true

	decl := &model.Declaration{
		Name:    "ValueOrError",
		Cases:   []*model.CaseType{simple("int"), errCase},
		Runtime: runtime,
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)

	try := u.Member("TryGetAsError")
	require.NotNil(t, try)
	assert.Equal(t, "if u.isError && u.asError != nil {", try.Body[0])
	assert.Contains(t, try.Doc, "never nil")

	assert.Equal(t, "if u.isInt {", u.Member("TryGetAsInt").Body[0])
}

func TestSynthesizeValueOrder(t *testing.T) {
	decl := &model.Declaration{
		Name:    "Three",
		Cases:   []*model.CaseType{simple("A"), simple("B"), simple("C")},
		Runtime: runtime,
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"if u.isA {",
		"\treturn u.asA, nil",
		"}",
		"if u.isB {",
		"\treturn u.asB, nil",
		"}",
		"if u.isC {",
		"\treturn u.asC, nil",
		"}",
		`return nil, unions.InvalidState("Three")`,
	}, u.Member("Value").Body)
}

func TestSynthesizeMatch(t *testing.T) {
	decl := &model.Declaration{
		Name:    "Three",
		Cases:   []*model.CaseType{simple("A"), simple("B"), simple("C")},
		Runtime: runtime,
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)

	match := u.Member("MatchThree")
	require.NotNil(t, match)
	assert.Equal(t, "[TOutput any]", match.TypeParams)
	assert.Equal(t, []model.Param{
		{Name: "u", Type: "Three"},
		{Name: "onA", Type: "func(A) TOutput"},
		{Name: "onB", Type: "func(B) TOutput"},
		{Name: "onC", Type: "func(C) TOutput"},
	}, match.Params)
	assert.Equal(t, []string{"TOutput", "error"}, match.Results)
	assert.Equal(t, []string{
		"switch {",
		"case u.isA:",
		"\treturn onA(u.asA), nil",
		"case u.isB:",
		"\treturn onB(u.asB), nil",
		"case u.isC:",
		"\treturn onC(u.asC), nil",
		"}",
		"var zero TOutput",
		`return zero, unions.InvalidState("Three")`,
	}, match.Body)

	matchCtx := u.Member("MatchThreeContext")
	require.NotNil(t, matchCtx)
	assert.Equal(t, model.Param{Name: "ctx", Type: "context.Context"}, matchCtx.Params[0])
	assert.Equal(t, model.Param{Name: "onB", Type: "func(context.Context, B) (TOutput, error)"}, matchCtx.Params[3])

	sw := u.Member("Switch")
	require.NotNil(t, sw)
	assert.Len(t, sw.Params, 3)
	assert.Equal(t, []string{
		"switch {",
		"case u.isA:",
		"\tonA(u.asA)",
		"\treturn nil",
		"case u.isB:",
		"\tonB(u.asB)",
		"\treturn nil",
		"case u.isC:",
		"\tonC(u.asC)",
		"\treturn nil",
		"}",
		`return unions.InvalidState("Three")`,
	}, sw.Body)

	swCtx := u.Member("SwitchContext")
	require.NotNil(t, swCtx)
	assert.Equal(t, model.Param{Name: "onC", Type: "func(context.Context, C) error"}, swCtx.Params[3])

	assert.Equal(t, []model.Import{
		{Path: "context"},
		{Path: "gounion/unions"},
	}, u.Imports)
}

func TestSynthesizeGenericUnion(t *testing.T) {
	decl := &model.Declaration{
		Name:       "SomeOrNone",
		TypeParams: []model.TypeParam{{Name: "T", Constraint: "any"}, {Name: "TOutput", Constraint: "any"}},
		Cases: []*model.CaseType{
			generic("Some", "Some[T]", param("T")),
			simple("None"),
		},
		Runtime: runtime,
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)

	assert.Equal(t, "Some", u.Cases[0].Alias)
	assert.Equal(t, "u SomeOrNone[T, TOutput]", u.Member("IsSome").Receiver)
	assert.Equal(t, "[T any, TOutput any]", u.Member("NewSomeOrNoneFromSome").TypeParams)
	assert.Equal(t, []string{"SomeOrNone[T, TOutput]"}, u.Member("NewSomeOrNoneFromSome").Results)

	match := u.Member("MatchSomeOrNone")
	assert.Equal(t, "[T any, TOutput any, TOutput1 any]", match.TypeParams)
	assert.Equal(t, "func(Some[T]) TOutput1", match.Params[1].Type)
}

func TestSynthesizeRecord(t *testing.T) {
	decl := trueOrFalse()
	decl.Record = true

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)

	eq := u.Member("Equal")
	require.NotNil(t, eq)
	assert.Equal(t, []string{
		"switch {",
		"case u.isTrue:",
		"\treturn other.isTrue && reflect.DeepEqual(u.asTrue, other.asTrue)",
		"case u.isFalse:",
		"\treturn other.isFalse && reflect.DeepEqual(u.asFalse, other.asFalse)",
		"}",
		"return !other.isTrue && !other.isFalse",
	}, eq.Body)
	assert.Contains(t, u.Imports, model.Import{Path: "reflect"})
}

func TestSynthesizeImports(t *testing.T) {
	point := simple("Point")
	point.Display = "geo.Point"
	point.Qualifiers = []string{"geo"}

	decl := &model.Declaration{
		Name:    "Place",
		Cases:   []*model.CaseType{point, simple("string")},
		Imports: []model.Import{{Path: "example.com/maps/geo"}, {Path: "fmt"}},
		Runtime: model.Runtime{Path: "gounion/unions", Qualifier: "u2"},
	}

	u, err := synth.Synthesize(decl)
	require.NoError(t, err)
	assert.Equal(t, []model.Import{
		{Path: "context"},
		{Path: "example.com/maps/geo"},
		{Alias: "u2", Path: "gounion/unions"},
	}, u.Imports)

	decl.Imports = nil
	_, err = synth.Synthesize(decl)
	assert.ErrorIs(t, err, diag.ErrMalformedDeclaration)
}

func TestSynthesizeErrors(t *testing.T) {
	tests := []struct {
		name string
		decl *model.Declaration
		want error
		msg  string
	}{
		{
			name: "empty case list",
			decl: &model.Declaration{Name: "Empty"},
			want: diag.ErrEmptyCaseList,
		},
		{
			name: "override out of range",
			decl: &model.Declaration{
				Name:      "Pair",
				Cases:     []*model.CaseType{simple("A"), simple("B")},
				Overrides: []model.Override{{Index: 2, Alias: "C"}},
			},
			want: diag.ErrInvalidOverrideIndex,
			msg:  "case 2, but the union has 2 cases",
		},
		{
			name: "negative override",
			decl: &model.Declaration{
				Name:      "Pair",
				Cases:     []*model.CaseType{simple("A"), simple("B")},
				Overrides: []model.Override{{Index: -1, Alias: "C"}},
			},
			want: diag.ErrInvalidOverrideIndex,
		},
		{
			name: "override not an identifier",
			decl: &model.Declaration{
				Name:      "Pair",
				Cases:     []*model.CaseType{simple("A"), simple("B")},
				Overrides: []model.Override{{Index: 1, Alias: "not valid"}},
			},
			want: diag.ErrMalformedDeclaration,
		},
		{
			name: "two aliases for one case",
			decl: &model.Declaration{
				Name:  "Pair",
				Cases: []*model.CaseType{simple("A"), simple("B")},
				Overrides: []model.Override{
					{Index: 1, Alias: "First"},
					{Index: 1, Alias: "Second"},
				},
			},
			want: diag.ErrMalformedDeclaration,
			msg:  `case 1 has two aliases, "First" and "Second"`,
		},
		{
			name: "auto aliases collide",
			decl: &model.Declaration{
				Name:       "Wrapped",
				TypeParams: []model.TypeParam{{Name: "T", Constraint: "any"}, {Name: "U", Constraint: "any"}},
				Cases: []*model.CaseType{
					generic("Wrapper", "Wrapper[T]", param("T")),
					generic("Wrapper", "Wrapper[U]", param("U")),
				},
			},
			want: diag.ErrAliasCollision,
			msg:  `cases 0 (Wrapper[T]) and 1 (Wrapper[U]) both resolve to "Wrapper"`,
		},
		{
			name: "override collides",
			decl: &model.Declaration{
				Name:      "Pair",
				Cases:     []*model.CaseType{simple("A"), simple("B")},
				Overrides: []model.Override{{Index: 1, Alias: "A"}},
			},
			want: diag.ErrAliasCollision,
		},
		{
			name: "generated members collide",
			decl: &model.Declaration{
				Name: "Tricky",
				Cases: []*model.CaseType{
					{Shape: model.ShapeSimple, Name: "Box", Display: "Box", Wrapper: &model.Wrapper{Field: "Value", Type: "int"}},
					simple("BoxValue"),
				},
				Extras: model.Extras{AsValue: true},
			},
			want: diag.ErrAliasCollision,
			msg:  "TryGetAsBoxValue",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := synth.Synthesize(tt.decl)
			assert.Nil(t, u)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}
