// Package generator renders synthesized unions into Go source files.
package generator

import (
	"bufio"
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"

	"gounion/internal/config"
	"gounion/internal/model"
	"gounion/internal/synth"
)

// Version is the tool version recorded in output fingerprints.
var Version = "0.4.0"

const fingerprintPrefix = "gounion:fingerprint "

//go:embed templates/union.go.tmpl
var defaultTemplate string

// Generator executes the union template against synthesized unions.
type Generator struct {
	config   *config.Config
	template *template.Template
	source   string // template text, part of every fingerprint
	log      logrus.FieldLogger
}

// New creates a new Generator using the built-in template.
func New(cfg *config.Config, log logrus.FieldLogger) *Generator {
	g := &Generator{
		config: cfg,
		log:    log,
		source: defaultTemplate,
	}
	g.template = template.Must(template.New("union.go.tmpl").
		Funcs(templateFuncs()).
		Parse(defaultTemplate))
	return g
}

// LoadTemplate loads a template from file.
func (g *Generator) LoadTemplate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}
	tmpl, err := template.New(filepath.Base(path)).
		Funcs(templateFuncs()).
		Parse(string(data))
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}
	g.template = tmpl
	g.source = string(data)
	return nil
}

// TemplateData represents data passed to templates.
type TemplateData struct {
	Union           *model.GeneratedUnion // Members to render
	Package         string                // Package clause of the output file
	Fingerprint     string
	FingerprintLine string // Comment text recording the fingerprint
	Version         string
	Config          *config.Config
}

// Output is one generated file.
type Output struct {
	Key         string // File name, unique within its directory
	Path        string // Full path the file is written to
	Union       string
	Fingerprint string
	Source      []byte
}

// Generate synthesizes and renders decls in parallel. A declaration that
// fails contributes its diagnostics to the returned error without affecting
// the others; outputs are returned in declaration order.
func (g *Generator) Generate(ctx context.Context, decls []*model.Declaration) ([]*Output, error) {
	decls = g.filterTypes(decls)
	paths := g.assignPaths(decls)

	outputs := make([]*Output, len(decls))
	errs := make([]error, len(decls))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.jobs())
	for i, decl := range decls {
		i, decl := i, decl
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := g.Render(decl, filepath.Base(paths[i]))
			if err != nil {
				errs[i] = err
				return nil
			}
			out.Path = paths[i]
			outputs[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := make([]*Output, 0, len(outputs))
	for _, out := range outputs {
		if out != nil {
			result = append(result, out)
		}
	}
	return result, errors.Join(errs...)
}

func (g *Generator) jobs() int {
	if n := g.config.Options.Jobs; n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// filterTypes filters declarations based on configuration.
func (g *Generator) filterTypes(decls []*model.Declaration) []*model.Declaration {
	var result []*model.Declaration
	for _, d := range decls {
		if g.config.ShouldIncludeType(d.Name) {
			result = append(result, d)
		}
	}
	return result
}

// assignPaths gives every declaration its output path. A name seen again in
// the same directory gets a numeric suffix, in declaration order.
func (g *Generator) assignPaths(decls []*model.Declaration) []string {
	seen := make(map[string]int)
	paths := make([]string, len(decls))
	for i, d := range decls {
		dir := g.outputDir(d)
		id := dir + "\x00" + d.Name
		key := snakeCase(d.Name)
		if n := seen[id]; n > 0 {
			key += "_" + strconv.Itoa(n)
		}
		seen[id]++
		paths[i] = filepath.Join(dir, key+g.config.Options.FileSuffix)
	}
	return paths
}

func (g *Generator) outputDir(d *model.Declaration) string {
	if dir := g.config.Options.OutputDir; dir != "" {
		if abs, err := filepath.Abs(dir); err == nil {
			return abs
		}
		return dir
	}
	return d.Dir
}

// Render synthesizes decl and renders it as a formatted Go file named key.
func (g *Generator) Render(decl *model.Declaration, key string) (*Output, error) {
	u, err := synth.Synthesize(decl)
	if err != nil {
		return nil, err
	}

	fp := g.fingerprint(decl)
	data := &TemplateData{
		Union:           u,
		Package:         decl.Package,
		Fingerprint:     fp,
		FingerprintLine: fingerprintPrefix + fp,
		Version:         Version,
		Config:          g.config,
	}

	var buf bytes.Buffer
	if err := g.template.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template for %s: %w", decl.Name, err)
	}
	src, err := imports.Process(key, buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", key, err)
	}

	g.log.WithFields(logrus.Fields{
		"union": decl.Name,
		"key":   key,
		"cases": len(u.Cases),
	}).Debug("generated union")

	return &Output{
		Key:         key,
		Union:       decl.Name,
		Fingerprint: fp,
		Source:      src,
	}, nil
}

// fingerprint identifies everything the output of decl depends on: its
// declaration, what the parser learned about its case types, the template
// and the tool version.
func (g *Generator) fingerprint(decl *model.Declaration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\x00%s\x00%s\x00%s\x00", decl.Source, decl.Package, decl.Extras, decl.Runtime.Ref("_"))
	for _, c := range decl.Cases {
		fmt.Fprintf(&b, "%s|%t", c.Display, c.Reference)
		if c.Wrapper != nil {
			fmt.Fprintf(&b, "|%s.%s", c.Wrapper.Field, c.Wrapper.Type)
		}
		b.WriteByte('\x00')
	}
	b.WriteString(g.source)
	b.WriteByte('\x00')
	b.WriteString(Version)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(b.String())).String()
}

// UpToDate reports whether the file at out.Path already carries the
// fingerprint of out.
func UpToDate(out *Output) bool {
	f, err := os.Open(out.Path)
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 0; i < 5 && sc.Scan(); i++ {
		line := strings.TrimPrefix(sc.Text(), "// ")
		if strings.HasPrefix(line, fingerprintPrefix) {
			return strings.TrimPrefix(line, fingerprintPrefix) == out.Fingerprint
		}
	}
	return false
}

// Changed reports whether writing out would change the file on disk.
func Changed(out *Output) bool {
	existing, err := os.ReadFile(out.Path)
	if err != nil {
		return true
	}
	return !bytes.Equal(existing, out.Source)
}

// Write writes out to its path. In incremental mode a file whose
// fingerprint matches is left alone and false is returned.
func (g *Generator) Write(out *Output) (bool, error) {
	if g.config.Options.Incremental && UpToDate(out) {
		g.log.WithField("path", out.Path).Debug("up to date")
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(out.Path), 0o755); err != nil {
		return false, fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(out.Path, out.Source, 0o644); err != nil {
		return false, fmt.Errorf("writing output file: %w", err)
	}
	return true, nil
}
