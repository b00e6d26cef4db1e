// Package config provides configuration handling for gounion.
package config

// DefaultRuntimePackage is the import path of the package generated code
// refers to for tuples and invalid state errors.
const DefaultRuntimePackage = "gounion/unions"

// DefaultWrappers returns the wrapper shapes of the runtime package's
// carrier types, keyed by import path and type name.
func DefaultWrappers() map[string]Wrapper {
	single := Wrapper{TypeParams: []string{"T"}, Field: "Value", Type: "T"}
	plural := Wrapper{TypeParams: []string{"T"}, Field: "Values", Type: "[]T"}
	return map[string]Wrapper{
		DefaultRuntimePackage + ".Success": single,
		DefaultRuntimePackage + ".Failure": single,
		DefaultRuntimePackage + ".Error":   single,
		DefaultRuntimePackage + ".One":     single,
		DefaultRuntimePackage + ".Some":    plural,
		DefaultRuntimePackage + ".Many":    plural,
	}
}

// DefaultReferenceTypes returns well-known named types from other packages
// whose values can be nil.
func DefaultReferenceTypes() []string {
	return []string{
		"context.Context",
		"fmt.Stringer",
		"io.Reader",
		"io.Writer",
		"io.Closer",
		"io.ReadCloser",
		"net.Conn",
		"reflect.Type",
	}
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		FileSuffix:     "_union.go",
		RuntimePackage: DefaultRuntimePackage,
		RuntimeName:    "unions",
	}
}
