package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gounion/internal/config"
	"gounion/internal/diag"
	"gounion/internal/model"
)

const shapesSource = `package shapes

import (
	"context"
	"time"

	rt "gounion/unions"
)

type Circle struct{ Radius float64 }
type Square struct{ Side float64 }
type Point struct{ X, Y int }

type Boxed[T any] struct {
	Value T
}

type base[T any] struct{ Values []T }

type Bag[T any] struct {
	base[T]
	Label string
}

type Handler func(context.Context) error
type Names []string
type Alias = Names

// Shape is any drawable shape.
//
//gounion:union Shape = Circle | Square | (Point, Point) | []Point
//gounion:alias 3 Polygon
//gounion:extra from asvalue
//gounion:record

//gounion:union Event[T any] = Boxed[T] | Boxed[time.Time] | Bag[int] | Handler | Alias | *Point | map[string]int | rt.Success[string] | error | T

var _ = rt.InvalidState
`

func writeModule(t *testing.T, module string, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module "+module+"\n\ngo 1.22\n"), 0o644))
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func newParser(cfg *config.Config) (*Parser, *logtest.Hook) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return New(cfg, log), hook
}

func parseUnions(t *testing.T, dir string) []*model.Declaration {
	t.Helper()
	p, _ := newParser(config.New())
	files, err := p.ParseDir(dir)
	require.NoError(t, err)
	var decls []*model.Declaration
	for _, f := range files {
		decls = append(decls, f.Unions...)
	}
	return decls
}

func TestParseDirDirectives(t *testing.T) {
	root := writeModule(t, "example.com/app", map[string]string{
		"shapes/shapes.go":      shapesSource,
		"shapes/shapes_test.go": "package shapes\n\n//gounion:union Ignored = int\n",
	})

	decls := parseUnions(t, filepath.Join(root, "shapes"))
	require.Len(t, decls, 2)

	shape := decls[0]
	assert.Equal(t, "Shape", shape.Name)
	assert.Equal(t, "shapes", shape.Package)
	assert.Equal(t, "example.com/app/shapes", shape.ImportPath)
	assert.Equal(t, "Shape is any drawable shape.", shape.Doc)
	assert.Equal(t, model.Runtime{Path: "gounion/unions", Qualifier: "rt"}, shape.Runtime)
	assert.Equal(t, model.Extras{From: true, AsValue: true}, shape.Extras)
	assert.True(t, shape.Record)
	assert.Empty(t, shape.TypeParams)
	require.Len(t, shape.Overrides, 1)
	assert.Equal(t, 3, shape.Overrides[0].Index)
	assert.Equal(t, "Polygon", shape.Overrides[0].Alias)
	assert.Equal(t, 32, shape.Overrides[0].Pos.Line)
	assert.Equal(t, 31, shape.Pos.Line)
	assert.Contains(t, shape.Source, "//gounion:union Shape = Circle")
	assert.Contains(t, shape.Source, "//gounion:record")

	require.Len(t, shape.Cases, 4)
	assert.Equal(t, model.ShapeSimple, shape.Cases[0].Shape)
	assert.Equal(t, "Circle", shape.Cases[0].Name)
	assert.False(t, shape.Cases[0].Reference)

	tuple := shape.Cases[2]
	assert.Equal(t, model.ShapeTuple, tuple.Shape)
	assert.Equal(t, "rt.Tuple2[Point, Point]", tuple.Display)
	assert.Len(t, tuple.Elems, 2)

	points := shape.Cases[3]
	assert.Equal(t, model.ShapeArray, points.Shape)
	assert.Equal(t, "[]Point", points.Display)
	assert.True(t, points.Reference)
}

func TestParseDirCaseTypes(t *testing.T) {
	root := writeModule(t, "example.com/app", map[string]string{"shapes/shapes.go": shapesSource})

	decls := parseUnions(t, filepath.Join(root, "shapes"))
	require.Len(t, decls, 2)
	event := decls[1]

	assert.Equal(t, "Event", event.Name)
	assert.Equal(t, "", event.Doc)
	assert.Equal(t, []model.TypeParam{{Name: "T", Constraint: "any"}}, event.TypeParams)
	require.Len(t, event.Cases, 10)

	boxed := event.Cases[0]
	assert.Equal(t, model.ShapeGeneric, boxed.Shape)
	assert.Equal(t, "Boxed", boxed.Name)
	assert.Equal(t, "Boxed[T]", boxed.Display)
	require.Len(t, boxed.Elems, 1)
	assert.True(t, boxed.Elems[0].TypeParam)
	assert.Equal(t, &model.Wrapper{Field: "Value", Type: "T"}, boxed.Wrapper)

	boxedTime := event.Cases[1]
	assert.Equal(t, []string{"time"}, boxedTime.Qualifiers)
	assert.Equal(t, &model.Wrapper{Field: "Value", Type: "time.Time", Qualifiers: []string{"time"}}, boxedTime.Wrapper)

	bag := event.Cases[2]
	assert.Equal(t, &model.Wrapper{Field: "Values", Type: "[]int", Plural: true}, bag.Wrapper)

	handler := event.Cases[3]
	assert.Equal(t, model.ShapeSimple, handler.Shape)
	assert.True(t, handler.Reference)
	assert.Nil(t, handler.Wrapper)

	assert.True(t, event.Cases[4].Reference, "alias of a slice type")

	ptr := event.Cases[5]
	assert.Equal(t, model.ShapeGeneric, ptr.Shape)
	assert.Equal(t, "Ptr", ptr.Name)
	assert.Equal(t, "*Point", ptr.Display)
	assert.True(t, ptr.Reference)

	m := event.Cases[6]
	assert.Equal(t, "Map", m.Name)
	assert.Len(t, m.Elems, 2)

	success := event.Cases[7]
	assert.Equal(t, "Success", success.Name)
	assert.Equal(t, "rt.Success[string]", success.Display)
	assert.Equal(t, []string{"rt"}, success.Qualifiers)
	assert.Equal(t, &model.Wrapper{Field: "Value", Type: "string"}, success.Wrapper)

	errCase := event.Cases[8]
	assert.True(t, errCase.Reference)

	param := event.Cases[9]
	assert.True(t, param.TypeParam)
	assert.False(t, param.Reference)
}

func TestParseDirPromotedWrapperFields(t *testing.T) {
	root := writeModule(t, "example.com/app", map[string]string{"wrap/wrap.go": `package wrap

type inner[U any] struct{ Value U }

type Box[T any] struct{ inner[T] }

type level[V any] struct{ inner[[]V] }

type Nested[K any] struct{ level[K] }

type pairs[A any, B comparable] struct{ Values map[B]A }

type Pair[K comparable, V any] struct {
	pairs[V, K]
}

//gounion:union Wrapped = Box[int] | Nested[string] | Pair[string, bool]
`})

	decls := parseUnions(t, filepath.Join(root, "wrap"))
	require.Len(t, decls, 1)
	require.Len(t, decls[0].Cases, 3)

	tests := []struct {
		display string
		field   string
		typ     string
	}{
		{"Box[int]", "Value", "int"},
		{"Nested[string]", "Value", "[]string"},
		{"Pair[string, bool]", "Values", "map[string]bool"},
	}
	for i, tt := range tests {
		c := decls[0].Cases[i]
		assert.Equal(t, tt.display, c.Display)
		require.NotNil(t, c.Wrapper, tt.display)
		assert.Equal(t, tt.field, c.Wrapper.Field, tt.display)
		assert.Equal(t, tt.typ, c.Wrapper.Type, tt.display)
	}
}

func TestParseDirLogsDeclarations(t *testing.T) {
	root := writeModule(t, "example.com/app", map[string]string{"shapes/shapes.go": shapesSource})

	p, hook := newParser(config.New())
	_, err := p.ParseDir(filepath.Join(root, "shapes"))
	require.NoError(t, err)

	var unions []any
	for _, e := range hook.AllEntries() {
		if e.Message == "found union" {
			unions = append(unions, e.Data["union"])
		}
	}
	assert.Equal(t, []any{"Shape", "Event"}, unions)
}

func TestParseDirMalformed(t *testing.T) {
	root := writeModule(t, "example.com/app", map[string]string{"bad/bad.go": `package bad

//gounion:alias 0 Orphan

//gounion:union Broken Circle | Square

//gounion:union Bad[T] = T

//gounion:union Unknown = int
//gounion:frobnicate

//gounion:union Big = (int, int, int, int, int, int, int, int, int)

//gounion:union BadExtra = int
//gounion:extra implicit

//gounion:union NotAType = 1 + 2

//gounion:union Empty =

//gounion:union Good = int | string
`})

	p, _ := newParser(config.New())
	files, err := p.ParseDir(filepath.Join(root, "bad"))
	require.Error(t, err)
	assert.ErrorIs(t, err, diag.ErrMalformedDeclaration)
	assert.Len(t, diag.Flatten(err), 7)
	assert.Contains(t, err.Error(), "without a preceding union directive")
	assert.Contains(t, err.Error(), "unknown directive //gounion:frobnicate")
	assert.Contains(t, err.Error(), "at most 8 are supported")

	require.Len(t, files, 1)
	var names []string
	for _, d := range files[0].Unions {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Empty", "Good"}, names)
	assert.Empty(t, files[0].Unions[0].Cases)
}

func TestParseDirRuntimeQualifier(t *testing.T) {
	root := writeModule(t, "gounion", map[string]string{
		"unions/unions.go": "package unions\n\ntype True struct{}\ntype False struct{}\n\n//gounion:union TrueOrFalse = True | False | (True, False)\n",
		"other/other.go":   "package other\n\n//gounion:union Flag = bool | (int, int)\n",
	})

	inside := parseUnions(t, filepath.Join(root, "unions"))
	require.Len(t, inside, 1)
	assert.Equal(t, model.Runtime{Path: "gounion/unions"}, inside[0].Runtime)
	assert.Equal(t, "Tuple2[True, False]", inside[0].Cases[2].Display)

	outside := parseUnions(t, filepath.Join(root, "other"))
	require.Len(t, outside, 1)
	assert.Equal(t, model.Runtime{Path: "gounion/unions", Qualifier: "unions"}, outside[0].Runtime)
	assert.Equal(t, "unions.Tuple2[int, int]", outside[0].Cases[1].Display)
}

func TestParseFile(t *testing.T) {
	root := writeModule(t, "example.com/app", map[string]string{
		"p/a.go": "package p\n\n//gounion:union A = int | string\n",
		"p/b.go": "package p\n\ntype Box struct{ Value int }\n\n//gounion:union B = Box | bool\n",
	})

	p, _ := newParser(config.New())
	f, err := p.ParseFile(filepath.Join(root, "p", "a.go"))
	require.NoError(t, err)
	require.Len(t, f.Unions, 1)
	assert.Equal(t, "A", f.Unions[0].Name)

	f, err = p.ParseFile(filepath.Join(root, "p", "b.go"))
	require.NoError(t, err)
	require.Len(t, f.Unions, 1)
	assert.Equal(t, &model.Wrapper{Field: "Value", Type: "int"}, f.Unions[0].Cases[0].Wrapper)
}

func TestParseConfig(t *testing.T) {
	root := writeModule(t, "example.com/app", map[string]string{
		"models/models.go": "package models\n\nimport \"time\"\n\ntype Stamp struct{ At time.Time }\n",
	})

	cfg := config.New()
	cfg.Options.Extra = []string{"from"}
	cfg.Unions = []config.Union{{
		Dir:     filepath.Join(root, "models"),
		Name:    "Moment[T any]",
		Cases:   []string{"Stamp", "time.Duration", "(T, string)"},
		Aliases: map[string]string{"1": "Span"},
		Extra:   []string{"asvalue"},
		Doc:     "Moment is a point or a span.",
	}}

	p, _ := newParser(cfg)
	decls, err := p.ParseConfig()
	require.NoError(t, err)
	require.Len(t, decls, 1)

	d := decls[0]
	assert.Equal(t, "Moment", d.Name)
	assert.Equal(t, "models", d.Package)
	assert.Equal(t, "Moment is a point or a span.", d.Doc)
	assert.Equal(t, []model.Override{{Index: 1, Alias: "Span"}}, d.Overrides)
	assert.Equal(t, model.Extras{From: true, AsValue: true}, d.Extras)
	assert.Equal(t, []model.Import{{Path: "time"}}, d.Imports)
	assert.Equal(t, "unions.Tuple2[T, string]", d.Cases[2].Display)
	assert.Equal(t, "// Moment is a point or a span.\n"+
		"//gounion:union Moment[T any] = Stamp | time.Duration | (T, string)\n"+
		"//gounion:alias 1 Span\n"+
		"//gounion:extra asvalue\n", d.Source)
}

func TestParseConfigMissingDir(t *testing.T) {
	cfg := config.New()
	cfg.Unions = []config.Union{{Dir: filepath.Join(t.TempDir(), "nope"), Name: "X", Cases: []string{"int"}}}

	p, _ := newParser(cfg)
	decls, err := p.ParseConfig()
	assert.Empty(t, decls)
	assert.ErrorContains(t, err, "union X: reading")
}

func TestSplitTop(t *testing.T) {
	tests := []struct {
		in   string
		sep  byte
		want []string
	}{
		{"A | B", '|', []string{"A", "B"}},
		{"Map[K, V] | (A, B) | interface{ ~int | ~string }", '|', []string{"Map[K, V]", "(A, B)", "interface{ ~int | ~string }"}},
		{"A, (B, C), func(int, int) error", ',', []string{"A", "(B, C)", "func(int, int) error"}},
		{"struct{ X int `json:\"a|b\"` } | int", '|', []string{"struct{ X int `json:\"a|b\"` }", "int"}},
	}
	for _, tt := range tests {
		got, err := splitTop(tt.in, tt.sep)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := splitTop("Map[K | V", '|')
	assert.Error(t, err)
	_, err = splitTerms("A | | B")
	assert.ErrorContains(t, err, "case 1 is empty")
}

func TestParseHeader(t *testing.T) {
	name, params, err := parseHeader("Result[TSuccess any, TFailure comparable]")
	require.NoError(t, err)
	assert.Equal(t, "Result", name)
	assert.Equal(t, []model.TypeParam{
		{Name: "TSuccess", Constraint: "any"},
		{Name: "TFailure", Constraint: "comparable"},
	}, params)

	name, params, err = parseHeader("Pair[K, V any]")
	require.NoError(t, err)
	assert.Equal(t, "Pair", name)
	assert.Equal(t, []model.TypeParam{{Name: "K", Constraint: "any"}, {Name: "V", Constraint: "any"}}, params)

	for _, bad := range []string{"", "Two Words", "List[T]", "9lives"} {
		_, _, err := parseHeader(bad)
		assert.Error(t, err, bad)
	}
}

func TestImportPath(t *testing.T) {
	root := writeModule(t, "example.com/app", map[string]string{"a/b/c.go": "package b\n"})
	assert.Equal(t, "example.com/app", importPath(root))
	assert.Equal(t, "example.com/app/a/b", importPath(filepath.Join(root, "a", "b")))
}
