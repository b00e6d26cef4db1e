// Package parser finds union declarations in Go packages and describes their
// case types.
package parser

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"gounion/internal/config"
	"gounion/internal/diag"
	"gounion/internal/model"
)

// Parser parses Go packages and extracts union declarations.
type Parser struct {
	fset *token.FileSet
	cfg  *config.Config
	log  logrus.FieldLogger
	pkgs map[string]*pkg
}

// New creates a new Parser.
func New(cfg *config.Config, log logrus.FieldLogger) *Parser {
	return &Parser{
		fset: token.NewFileSet(),
		cfg:  cfg,
		log:  log,
		pkgs: make(map[string]*pkg),
	}
}

// pkg is a parsed package directory.
type pkg struct {
	dir        string
	name       string
	importPath string
	files      []*model.File
	syntax     []*ast.File
	types      map[string]*model.Type
	underlying map[string]ast.Expr
}

// ParseDir parses the non-test Go files in dir and returns them with their
// union declarations. Declarations that fail to parse are reported in the
// returned error; the others are still returned.
func (p *Parser) ParseDir(dir string) ([]*model.File, error) {
	pk, err := p.load(dir)
	if err != nil {
		return nil, err
	}

	var errs []error
	for i, f := range pk.syntax {
		if err := p.scanFile(pk, pk.files[i], f); err != nil {
			errs = append(errs, err)
		}
	}
	return pk.files, errors.Join(errs...)
}

// ParseFile parses the package containing path and returns the union
// declarations of that file only.
func (p *Parser) ParseFile(path string) (*model.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	pk, err := p.load(filepath.Dir(abs))
	if err != nil {
		return nil, err
	}
	for i, f := range pk.files {
		if f.Path == abs {
			return f, p.scanFile(pk, f, pk.syntax[i])
		}
	}
	return nil, fmt.Errorf("%s is not part of package %s", path, pk.name)
}

// load parses every non-test Go file of dir once and indexes its types.
func (p *Parser) load(dir string) (*pkg, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if pk, ok := p.pkgs[abs]; ok {
		return pk, nil
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	pk := &pkg{
		dir:        abs,
		importPath: importPath(abs),
		types:      make(map[string]*model.Type),
		underlying: make(map[string]ast.Expr),
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		path := filepath.Join(abs, name)
		file, err := parser.ParseFile(p.fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if pk.name == "" {
			pk.name = file.Name.Name
		} else if pk.name != file.Name.Name {
			return nil, fmt.Errorf("found packages %s and %s in %s", pk.name, file.Name.Name, dir)
		}

		pk.syntax = append(pk.syntax, file)
		pk.files = append(pk.files, &model.File{
			Package: file.Name.Name,
			Path:    path,
			Imports: extractImports(file),
		})
		pk.index(file)
	}
	if len(pk.syntax) == 0 {
		return nil, fmt.Errorf("no Go files in %s", dir)
	}
	pk.resolveReferences()

	p.log.WithFields(logrus.Fields{
		"dir":        pk.dir,
		"package":    pk.name,
		"importPath": pk.importPath,
		"types":      len(pk.types),
	}).Debug("loaded package")

	p.pkgs[abs] = pk
	return pk, nil
}

// extractImports extracts import statements from a Go file.
func extractImports(file *ast.File) []model.Import {
	var imports []model.Import
	for _, imp := range file.Imports {
		i := model.Import{
			Path: strings.Trim(imp.Path.Value, `"`),
		}
		if imp.Name != nil {
			i.Alias = imp.Name.Name
		}
		imports = append(imports, i)
	}
	return imports
}

// imports returns the imports of every file in the package, one per path.
func (pk *pkg) imports() []model.Import {
	byPath := make(map[string]model.Import)
	for _, f := range pk.files {
		for _, imp := range f.Imports {
			if _, ok := byPath[imp.Path]; !ok {
				byPath[imp.Path] = imp
			}
		}
	}
	imports := make([]model.Import, 0, len(byPath))
	for _, imp := range byPath {
		imports = append(imports, imp)
	}
	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})
	return imports
}

// index records the top-level types declared in file.
func (pk *pkg) index(file *ast.File) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}
		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			t := extractType(typeSpec)
			pk.types[t.Name] = t
			pk.underlying[t.Name] = typeSpec.Type
		}
	}
}

// extractType extracts type information from an ast.TypeSpec.
func extractType(spec *ast.TypeSpec) *model.Type {
	t := &model.Type{
		Name: spec.Name.Name,
	}
	if spec.TypeParams != nil {
		for _, field := range spec.TypeParams.List {
			for _, name := range field.Names {
				t.TypeParams = append(t.TypeParams, name.Name)
			}
		}
	}

	switch typeExpr := spec.Type.(type) {
	case *ast.StructType:
		t.Kind = model.KindStruct
		t.Fields = extractFields(typeExpr.Fields)
	case *ast.InterfaceType:
		t.Kind = model.KindInterface
	default:
		if spec.Assign.IsValid() {
			t.Kind = model.KindAlias
		} else {
			t.Kind = model.KindNamed
		}
		t.Underlying = types.ExprString(typeExpr)
	}
	return t
}

// extractFields extracts fields from a struct.
func extractFields(fieldList *ast.FieldList) []model.Field {
	if fieldList == nil {
		return nil
	}

	var fields []model.Field
	for _, f := range fieldList.List {
		typ := types.ExprString(f.Type)
		if len(f.Names) == 0 {
			fields = append(fields, model.Field{
				Name:       baseName(f.Type),
				Type:       typ,
				IsEmbedded: true,
			})
			continue
		}
		for _, name := range f.Names {
			fields = append(fields, model.Field{
				Name: name.Name,
				Type: typ,
			})
		}
	}
	return fields
}

// baseName returns the type name of an embedded field expression.
func baseName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	case *ast.StarExpr:
		return baseName(e.X)
	case *ast.IndexExpr:
		return baseName(e.X)
	case *ast.IndexListExpr:
		return baseName(e.X)
	}
	return ""
}

// resolveReferences marks the types whose values can be nil.
func (pk *pkg) resolveReferences() {
	for name, t := range pk.types {
		t.Reference = pk.nilable(name, map[string]bool{})
	}
}

func (pk *pkg) nilable(name string, seen map[string]bool) bool {
	if seen[name] {
		return false
	}
	seen[name] = true
	expr, ok := pk.underlying[name]
	if !ok {
		return name == "error" || name == "any"
	}
	switch e := expr.(type) {
	case *ast.StarExpr, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType:
		return true
	case *ast.ArrayType:
		return e.Len == nil
	case *ast.Ident:
		return pk.nilable(e.Name, seen)
	case *ast.IndexExpr:
		if id, ok := e.X.(*ast.Ident); ok {
			return pk.nilable(id.Name, seen)
		}
	case *ast.IndexListExpr:
		if id, ok := e.X.(*ast.Ident); ok {
			return pk.nilable(id.Name, seen)
		}
	}
	return false
}

// flattenFields returns the fields of a struct type with the fields of
// embedded package-local structs promoted. Outer fields shadow promoted ones.
func (pk *pkg) flattenFields(t *model.Type, seen map[string]bool) []model.Field {
	if seen[t.Name] {
		return nil
	}
	seen[t.Name] = true

	var direct, promoted []model.Field
	for _, f := range t.Fields {
		if !f.IsEmbedded {
			direct = append(direct, f)
			continue
		}
		if inner, ok := pk.types[f.Name]; ok && inner.Kind == model.KindStruct && !strings.Contains(f.Type, ".") {
			promoted = append(promoted, instantiate(pk.flattenFields(inner, seen), inner.TypeParams, f.Type)...)
		}
	}

	names := make(map[string]bool, len(direct))
	for _, f := range direct {
		names[f.Name] = true
	}
	for _, f := range promoted {
		if !names[f.Name] {
			direct = append(direct, f)
			names[f.Name] = true
		}
	}
	return direct
}

// instantiate rewrites fields promoted from an embedded generic struct so
// that they refer to the type arguments given in embedded, e.g. inner[T],
// instead of the struct's own type parameters.
func instantiate(fields []model.Field, params []string, embedded string) []model.Field {
	if len(params) == 0 {
		return fields
	}
	expr, err := parser.ParseExpr(embedded)
	if err != nil {
		return nil
	}
	var args []ast.Expr
	switch e := expr.(type) {
	case *ast.IndexExpr:
		args = []ast.Expr{e.Index}
	case *ast.IndexListExpr:
		args = e.Indices
	}
	if len(args) != len(params) {
		return nil
	}

	out := make([]model.Field, 0, len(fields))
	for _, f := range fields {
		typ, err := substitute(f.Type, params, args)
		if err != nil {
			continue
		}
		f.Type = types.ExprString(typ)
		out = append(out, f)
	}
	return out
}

// wrapperField returns the Value or Values field of a struct type.
func (pk *pkg) wrapperField(t *model.Type) (model.Field, bool) {
	fields := pk.flattenFields(t, map[string]bool{})
	for _, want := range []string{"Value", "Values"} {
		for _, f := range fields {
			if f.Name == want {
				return f, true
			}
		}
	}
	return model.Field{}, false
}

// scanFile collects the union directives of one file.
func (p *Parser) scanFile(pk *pkg, mf *model.File, file *ast.File) error {
	mf.Unions = nil
	var errs []error
	for _, group := range file.Comments {
		for _, spec := range p.scanGroup(group) {
			if spec.err != nil {
				errs = append(errs, spec.err)
				continue
			}
			spec.imports = mf.Imports
			decl, err := p.declaration(pk, spec)
			if decl != nil {
				mf.Unions = append(mf.Unions, decl)
			}
			if err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// ParseConfig builds the declarations listed in the config file.
func (p *Parser) ParseConfig() ([]*model.Declaration, error) {
	var decls []*model.Declaration
	var errs []error
	for _, u := range p.cfg.Unions {
		pk, err := p.load(u.Dir)
		if err != nil {
			errs = append(errs, fmt.Errorf("union %s: %w", u.Name, err))
			continue
		}
		overrides, err := u.Overrides()
		if err != nil {
			errs = append(errs, diag.New(diag.ErrMalformedDeclaration, token.Position{}, u.Name, "%v", err))
			continue
		}

		spec := &declSpec{
			header:     u.Name,
			terms:      u.Cases,
			overrides:  overrides,
			extraNames: u.Extra,
			record:     u.Record,
			doc:        u.Doc,
			imports:    pk.imports(),
		}
		spec.source = spec.canonical()

		decl, err := p.declaration(pk, spec)
		if decl != nil {
			decls = append(decls, decl)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return decls, errors.Join(errs...)
}

// declaration turns a raw declaration into a model declaration with
// classified case types. A declaration is returned whenever its header
// parses, so the synthesizer can still report list-level problems.
func (p *Parser) declaration(pk *pkg, spec *declSpec) (*model.Declaration, error) {
	name, params, err := parseHeader(spec.header)
	if err != nil {
		return nil, diag.New(diag.ErrMalformedDeclaration, spec.pos, strings.TrimSpace(spec.header), "%v", err)
	}

	decl := &model.Declaration{
		Name:       name,
		Package:    pk.name,
		ImportPath: pk.importPath,
		Dir:        pk.dir,
		Doc:        spec.doc,
		TypeParams: params,
		Overrides:  spec.overrides,
		Record:     spec.record,
		Imports:    spec.imports,
		Pos:        spec.pos,
		Source:     spec.source,
	}
	decl.Runtime = p.runtime(pk, spec.imports)

	extras, err := model.ParseExtras(spec.extraNames)
	if err != nil {
		return nil, diag.New(diag.ErrMalformedDeclaration, spec.pos, name, "%v", err)
	}
	global, err := p.cfg.Extras()
	if err != nil {
		return nil, err
	}
	decl.Extras = extras.Union(global)

	r := &resolver{cfg: p.cfg, pk: pk, decl: decl}
	var errs []error
	for i, term := range spec.terms {
		t, err := r.term(term)
		if err != nil {
			errs = append(errs, diag.New(diag.ErrMalformedDeclaration, spec.pos, name, "case %d: %v", i, err))
			continue
		}
		decl.Cases = append(decl.Cases, t)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	p.log.WithFields(logrus.Fields{
		"union": decl.Name,
		"cases": len(decl.Cases),
		"pos":   decl.Pos.String(),
	}).Debug("found union")
	return decl, nil
}

// runtime decides how generated code refers to the runtime package: not at
// all inside the runtime package, by the file's own name for it when
// imported, and by the configured name otherwise.
func (p *Parser) runtime(pk *pkg, imports []model.Import) model.Runtime {
	path := p.cfg.Options.RuntimePackage
	if pk.importPath != "" && pk.importPath == path {
		return model.Runtime{Path: path}
	}
	for _, imp := range imports {
		if imp.Path == path && imp.Alias != "_" && imp.Alias != "." {
			return model.Runtime{Path: path, Qualifier: imp.Name()}
		}
	}
	return model.Runtime{Path: path, Qualifier: p.cfg.Options.RuntimeName}
}

// parseHeader parses "Name" or "Name[T any, U comparable]".
func parseHeader(header string) (string, []model.TypeParam, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", nil, fmt.Errorf("missing union name")
	}
	src := "package p\ntype " + header + " struct{}"
	file, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	if err != nil || len(file.Decls) != 1 {
		return "", nil, fmt.Errorf("invalid union header %q", header)
	}
	genDecl, ok := file.Decls[0].(*ast.GenDecl)
	if !ok || len(genDecl.Specs) != 1 {
		return "", nil, fmt.Errorf("invalid union header %q", header)
	}
	spec := genDecl.Specs[0].(*ast.TypeSpec)
	if _, ok := spec.Type.(*ast.StructType); !ok || spec.Assign.IsValid() {
		return "", nil, fmt.Errorf("invalid union header %q (type parameters need constraints)", header)
	}

	var params []model.TypeParam
	if spec.TypeParams != nil {
		for _, field := range spec.TypeParams.List {
			constraint := types.ExprString(field.Type)
			for _, name := range field.Names {
				params = append(params, model.TypeParam{Name: name.Name, Constraint: constraint})
			}
		}
	}
	return spec.Name.Name, params, nil
}
