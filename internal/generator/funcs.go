package generator

import (
	"strings"
	"text/template"
	"unicode"

	"gounion/internal/model"
)

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		// Go syntax
		"signature": signature,
		"params":    params,
		"results":   results,
		"isMethod":  func(m model.Member) bool { return m.Kind == model.MemberMethod },

		// String manipulation
		"camelCase": camelCase,
		"snakeCase": snakeCase,
		"lower":     strings.ToLower,
		"upper":     strings.ToUpper,
		"trim":      strings.TrimSpace,
		"join":      strings.Join,
		"contains":  containsStr,

		// Conditional helpers
		"default": defaultValue,
		"ternary": ternary,

		// Comment formatting
		"comment": formatComment,

		// Misc
		"notLast": func(i, length int) bool { return i < length-1 },
	}
}

// signature renders everything between "func " and the body of m.
func signature(m model.Member) string {
	var b strings.Builder
	if m.Kind == model.MemberMethod {
		b.WriteString("(" + m.Receiver + ") ")
	}
	b.WriteString(m.Name)
	if m.Kind == model.MemberFunc {
		b.WriteString(m.TypeParams)
	}
	b.WriteString("(" + params(m.Params) + ")")
	if r := results(m.Results); r != "" {
		b.WriteString(" " + r)
	}
	return b.String()
}

// params renders a parameter list without parentheses.
func params(ps []model.Param) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Name + " " + p.Type
	}
	return strings.Join(parts, ", ")
}

// results renders a result list, parenthesised when there is more than one.
func results(rs []string) string {
	switch len(rs) {
	case 0:
		return ""
	case 1:
		return rs[0]
	}
	return "(" + strings.Join(rs, ", ") + ")"
}

// camelCase converts to camelCase.
func camelCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		if i > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, "")
}

// snakeCase converts to snake_case.
func snakeCase(s string) string {
	words := splitWords(s)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// splitWords splits a string into words (handles camelCase, PascalCase, snake_case, etc.).
func splitWords(s string) []string {
	var words []string
	var current []rune

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' {
			if len(current) > 0 {
				words = append(words, string(current))
				current = nil
			}
			continue
		}

		if unicode.IsUpper(r) && i > 0 {
			// Check if this is the start of a new word
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (i+1 < len(runes) && unicode.IsLower(runes[i+1])) {
				if len(current) > 0 {
					words = append(words, string(current))
					current = nil
				}
			}
		}

		current = append(current, r)
	}

	if len(current) > 0 {
		words = append(words, string(current))
	}

	return words
}

// formatComment formats a comment with a prefix. Blank lines keep the
// prefix without its trailing space.
func formatComment(comment, prefix string) string {
	if comment == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSpace(comment), "\n")
	result := make([]string, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			result[i] = strings.TrimRight(prefix, " ")
			continue
		}
		result[i] = prefix + line
	}
	return strings.Join(result, "\n")
}

// containsStr checks if a slice contains a string.
func containsStr(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}

// defaultValue returns the first non-empty value.
func defaultValue(val, def string) string {
	if val == "" {
		return def
	}
	return val
}

// ternary returns a if condition is true, else b.
func ternary(condition bool, a, b string) string {
	if condition {
		return a
	}
	return b
}
