package parser

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"

	"gounion/internal/diag"
	"gounion/internal/model"
)

const directivePrefix = "//gounion:"

// declSpec is a union declaration before its case types are classified.
type declSpec struct {
	header     string
	terms      []string
	overrides  []model.Override
	extraNames []string
	record     bool
	doc        string
	imports    []model.Import
	pos        token.Position
	source     string
	err        error
}

// canonical renders the declaration as directive text.
func (s *declSpec) canonical() string {
	var b strings.Builder
	for _, line := range strings.Split(s.doc, "\n") {
		if line != "" {
			b.WriteString("// " + line + "\n")
		}
	}
	fmt.Fprintf(&b, "%sunion %s = %s\n", directivePrefix, s.header, strings.Join(s.terms, " | "))
	for _, o := range s.overrides {
		fmt.Fprintf(&b, "%salias %d %s\n", directivePrefix, o.Index, o.Alias)
	}
	if len(s.extraNames) > 0 {
		fmt.Fprintf(&b, "%sextra %s\n", directivePrefix, strings.Join(s.extraNames, " "))
	}
	if s.record {
		b.WriteString(directivePrefix + "record\n")
	}
	return b.String()
}

// scanGroup extracts the declarations of one comment group. Plain comment
// lines become the doc of the next union directive; alias, extra and record
// directives apply to the last one.
func (p *Parser) scanGroup(group *ast.CommentGroup) []*declSpec {
	var (
		specs  []*declSpec
		cur    *declSpec
		doc    []string
		source []string
	)
	finish := func() {
		if cur != nil && cur.err == nil {
			cur.source = strings.Join(source, "\n")
		}
		source = nil
	}

	for _, c := range group.List {
		pos := p.fset.Position(c.Slash)
		if !strings.HasPrefix(c.Text, directivePrefix) {
			doc = append(doc, commentLine(c.Text))
			continue
		}

		kind, args, _ := strings.Cut(strings.TrimPrefix(c.Text, directivePrefix), " ")
		args = strings.TrimSpace(args)
		if kind == "union" {
			finish()
			cur = newSpec(args, pos)
			cur.doc = docText(doc)
			doc = nil
			specs = append(specs, cur)
			source = append(source, c.Text)
			if cur.doc != "" {
				source = append([]string{cur.doc}, source...)
			}
			continue
		}

		if cur == nil {
			specs = append(specs, &declSpec{err: diag.New(diag.ErrMalformedDeclaration, pos, "",
				"%s%s directive without a preceding union directive", directivePrefix, kind)})
			continue
		}
		source = append(source, c.Text)
		if cur.err != nil {
			continue
		}
		if err := cur.apply(kind, args, pos); err != nil {
			cur.err = err
		}
	}
	finish()
	return specs
}

func newSpec(args string, pos token.Position) *declSpec {
	s := &declSpec{pos: pos}
	header, body, ok := strings.Cut(args, "=")
	if !ok {
		s.err = diag.New(diag.ErrMalformedDeclaration, pos, strings.TrimSpace(args),
			"union directive needs the form Name = A | B")
		return s
	}
	s.header = strings.TrimSpace(header)
	terms, err := splitTerms(body)
	if err != nil {
		s.err = diag.New(diag.ErrMalformedDeclaration, pos, s.header, "%v", err)
		return s
	}
	s.terms = terms
	return s
}

func (s *declSpec) apply(kind, args string, pos token.Position) error {
	switch kind {
	case "alias":
		fields := strings.Fields(args)
		if len(fields) != 2 {
			return diag.New(diag.ErrMalformedDeclaration, pos, s.header, "alias directive needs a case index and an alias")
		}
		index, err := strconv.Atoi(fields[0])
		if err != nil {
			return diag.New(diag.ErrMalformedDeclaration, pos, s.header, "case index %q is not a number", fields[0])
		}
		s.overrides = append(s.overrides, model.Override{Index: index, Alias: fields[1], Pos: pos})
	case "extra":
		s.extraNames = append(s.extraNames, strings.FieldsFunc(args, func(r rune) bool {
			return r == ' ' || r == ','
		})...)
	case "record":
		s.record = true
	default:
		return diag.New(diag.ErrMalformedDeclaration, pos, s.header, "unknown directive %s%s", directivePrefix, kind)
	}
	return nil
}

// commentLine returns the text of a // or /* */ comment.
func commentLine(text string) string {
	if strings.HasPrefix(text, "//") {
		text = strings.TrimPrefix(text[2:], " ")
	} else {
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/"))
	}
	return strings.TrimRight(text, " \t")
}

// docText joins doc lines, dropping leading and trailing blank lines.
func docText(lines []string) string {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
