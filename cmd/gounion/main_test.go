package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"gounion": Main,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
	})
}

func TestParseCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"Shape", "Result"}, parseCommaSeparated(" Shape, ,Result ,"))
	assert.Empty(t, parseCommaSeparated(""))
}
