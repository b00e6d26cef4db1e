// Package model defines the intermediate representation for union declarations
// and the members generated for them.
package model

import "strings"

// Shape is the structural category of a case type.
type Shape int

const (
	ShapeSimple Shape = iota
	ShapeTuple
	ShapeGeneric
	ShapeArray
)

func (s Shape) String() string {
	switch s {
	case ShapeTuple:
		return "tuple"
	case ShapeGeneric:
		return "generic"
	case ShapeArray:
		return "array"
	default:
		return "simple"
	}
}

// TypeKind represents the category of a type declared in a parsed package.
type TypeKind string

const (
	KindStruct    TypeKind = "struct"
	KindAlias     TypeKind = "alias"
	KindNamed     TypeKind = "named"
	KindInterface TypeKind = "interface"
)

// File represents a parsed Go source file.
type File struct {
	Package string         // Package name
	Path    string         // File path
	Imports []Import       // Import statements
	Unions  []*Declaration // Union declarations found in directives
}

// Import represents a Go import statement.
type Import struct {
	Alias string // Optional alias (empty if none)
	Path  string // Import path
}

// Name returns the identifier the import is referred to by in source code.
// Without an alias it is guessed from the last path element, dropping major
// version suffixes and the conventional "go-" prefix.
func (i Import) Name() string {
	if i.Alias != "" {
		return i.Alias
	}
	elems := strings.Split(i.Path, "/")
	name := elems[len(elems)-1]
	if isMajorVersion(name) && len(elems) > 1 {
		name = elems[len(elems)-2]
	}
	if dot := strings.Index(name, ".v"); dot > 0 && isMajorVersion(name[dot+1:]) {
		name = name[:dot]
	}
	name = strings.TrimPrefix(name, "go-")
	name = strings.TrimSuffix(name, "-go")
	return strings.ReplaceAll(name, "-", "")
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Type represents a type declared in a parsed package. Only what the
// generator needs is kept: its kind, type parameters and struct fields.
type Type struct {
	Name       string   // Type name (e.g., "Success")
	Kind       TypeKind // Type category
	TypeParams []string // Type parameter names in declaration order
	Fields     []Field  // Fields (for structs)
	Underlying string   // Underlying type expression (for named types and aliases)
	Reference  bool     // Whether values of the type can be nil
}

// Field represents a struct field, either parsed or generated.
type Field struct {
	Name       string // Field name (type name for embedded fields)
	Type       string // Go type expression
	IsEmbedded bool   // Whether this is an embedded field
}

// Wrapper describes a case type that holds a single inner value or an
// ordered collection of inner values in a conventional field.
type Wrapper struct {
	Field      string   // "Value" or "Values"
	Type       string   // Inner type with the case's type arguments substituted
	Plural     bool     // Whether the field holds an ordered collection
	Qualifiers []string // Package qualifiers referenced by Type
}

// CaseType describes the declared type of one union case.
type CaseType struct {
	Shape      Shape
	Name       string      // Short name (simple) or base name (generic)
	Display    string      // Go type expression used in generated code
	Elems      []*CaseType // Tuple elements, type arguments, or the array element
	Reference  bool        // Whether values can be nil
	TypeParam  bool        // Whether the type is a type parameter of the union
	Qualifiers []string    // Package qualifiers referenced anywhere in Display
	Wrapper    *Wrapper    // Non-nil when the type has the wrapper shape
}

func (t *CaseType) String() string {
	return t.Display
}
