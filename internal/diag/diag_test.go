package diag_test

import (
	"errors"
	"fmt"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gounion/internal/diag"
)

func TestDiagnosticError(t *testing.T) {
	pos := token.Position{Filename: "shapes.go", Line: 12, Column: 1}
	d := diag.New(diag.ErrAliasCollision, pos, "Shape", "cases 0 (%s) and 1 (%s) both resolve to %q", "a.Point", "b.Point", "Point")

	assert.Equal(t, `shapes.go:12:1: union Shape: alias collision: cases 0 (a.Point) and 1 (b.Point) both resolve to "Point"`, d.Error())
	assert.ErrorIs(t, d, diag.ErrAliasCollision)
	assert.NotErrorIs(t, d, diag.ErrEmptyCaseList)
}

func TestDiagnosticErrorWithoutPosition(t *testing.T) {
	d := diag.New(diag.ErrEmptyCaseList, token.Position{}, "", "")
	assert.Equal(t, "empty case list", d.Error())
}

func TestDiagnosticAs(t *testing.T) {
	var err error = fmt.Errorf("generating: %w", diag.New(diag.ErrInvalidOverrideIndex, token.Position{}, "U", "index 4"))

	var d *diag.Diagnostic
	require.True(t, errors.As(err, &d))
	assert.Equal(t, "U", d.Union)
}

func TestFlatten(t *testing.T) {
	a := errors.New("b second")
	b := errors.New("a first")
	c := errors.New("c third")

	list := diag.Flatten(errors.Join(a, errors.Join(b, c)))
	require.Len(t, list, 3)
	assert.Equal(t, []error{b, a, c}, list)

	assert.Nil(t, diag.Flatten(nil))
	assert.Equal(t, []error{a}, diag.Flatten(a))
}
