package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gounion/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.Equal(t, "_union.go", c.Options.FileSuffix)
	assert.Equal(t, DefaultRuntimePackage, c.Options.RuntimePackage)
	assert.Equal(t, "unions", c.Options.RuntimeName)
	assert.Contains(t, c.Wrappers, "gounion/unions.Success")
	assert.Equal(t, Wrapper{TypeParams: []string{"T"}, Field: "Value", Type: "T"}, c.Wrappers["gounion/unions.One"])
	assert.True(t, c.IsReference("context.Context"))
	assert.False(t, c.IsReference("time.Time"))
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "gounion.yaml", `
options:
  fileSuffix: .gen.go
  jobs: 4
  extra: [from]
  excludeTypes: [Legacy]
wrappers:
  result.Ok:
    typeParams: [T]
    field: Value
    type: T
referenceTypes: [sql.Result]
unions:
  - dir: models
    name: Result[T any]
    cases: ["Success[T]", "(Failure[string], None)"]
    aliases:
      1: Failed
    extra: [asvalue]
`)

	c := New()
	require.NoError(t, c.LoadFile(path))

	assert.Equal(t, ".gen.go", c.Options.FileSuffix)
	assert.Equal(t, 4, c.Options.Jobs)
	assert.Equal(t, DefaultRuntimePackage, c.Options.RuntimePackage)
	assert.Equal(t, []string{"from"}, c.Options.Extra)
	assert.False(t, c.ShouldIncludeType("Legacy"))
	assert.True(t, c.ShouldIncludeType("Result"))

	w, ok := c.LookupWrapper("result.Ok")
	require.True(t, ok)
	assert.Equal(t, Wrapper{TypeParams: []string{"T"}, Field: "Value", Type: "T"}, w)
	_, ok = c.LookupWrapper("gounion/unions.Many")
	assert.True(t, ok, "defaults are kept")

	assert.True(t, c.IsReference("sql.Result"))
	assert.True(t, c.IsReference("context.Context"))

	require.Len(t, c.Unions, 1)
	u := c.Unions[0]
	assert.Equal(t, filepath.Join(filepath.Dir(path), "models"), u.Dir)
	assert.Equal(t, "Result[T any]", u.Name)
	assert.Equal(t, []string{"Success[T]", "(Failure[string], None)"}, u.Cases)

	overrides, err := u.Overrides()
	require.NoError(t, err)
	assert.Equal(t, []model.Override{{Index: 1, Alias: "Failed"}}, overrides)
}

func TestLoadFileJSON(t *testing.T) {
	path := writeFile(t, "gounion.json", `{
  "options": {"runtimePackage": "example.com/rt", "runtimeName": "rt", "incremental": true},
  "unions": [{"dir": "/abs/dir", "name": "Flag", "cases": ["On", "Off"], "record": true}]
}`)

	c := New()
	require.NoError(t, c.LoadFile(path))
	assert.Equal(t, "example.com/rt", c.Options.RuntimePackage)
	assert.Equal(t, "rt", c.Options.RuntimeName)
	assert.True(t, c.Options.Incremental)
	require.Len(t, c.Unions, 1)
	assert.Equal(t, "/abs/dir", c.Unions[0].Dir)
	assert.True(t, c.Unions[0].Record)
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "gounion.toml", `
referenceTypes = ["pgx.Rows"]

[options]
outputDir = "gen"
includeTypes = ["Shape"]

[[unions]]
dir = "."
name = "Shape"
cases = ["Circle", "Square"]

[unions.aliases]
"0" = "Round"
`)

	c := New()
	require.NoError(t, c.LoadFile(path))
	assert.Equal(t, "gen", c.Options.OutputDir)
	assert.True(t, c.ShouldIncludeType("Shape"))
	assert.False(t, c.ShouldIncludeType("Other"))
	assert.True(t, c.IsReference("pgx.Rows"))

	require.Len(t, c.Unions, 1)
	overrides, err := c.Unions[0].Overrides()
	require.NoError(t, err)
	assert.Equal(t, []model.Override{{Index: 0, Alias: "Round"}}, overrides)
}

func TestLoadFileErrors(t *testing.T) {
	c := New()
	err := c.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")

	path := writeFile(t, "broken.toml", "options = [")
	assert.ErrorContains(t, c.LoadFile(path), "parsing TOML config")
}

func TestOverridesOrderAndErrors(t *testing.T) {
	u := Union{Name: "Shape", Aliases: map[string]string{"2": "C", " 0 ": "A", "1": "B"}}
	overrides, err := u.Overrides()
	require.NoError(t, err)
	assert.Equal(t, []model.Override{
		{Index: 0, Alias: "A"},
		{Index: 1, Alias: "B"},
		{Index: 2, Alias: "C"},
	}, overrides)

	for _, key := range []string{"first", "010", "0x2", "+1", "1.0"} {
		u.Aliases = map[string]string{key: "A"}
		_, err = u.Overrides()
		assert.ErrorContains(t, err, fmt.Sprintf("alias key %q is not a case index", key), key)
	}
}

func TestExtras(t *testing.T) {
	c := New()
	c.Options.Extra = []string{"From", "asValue"}
	e, err := c.Extras()
	require.NoError(t, err)
	assert.Equal(t, model.Extras{From: true, AsValue: true}, e)

	c.Options.Extra = []string{"implicit"}
	_, err = c.Extras()
	assert.ErrorContains(t, err, `options.extra: unknown extra "implicit"`)
}
