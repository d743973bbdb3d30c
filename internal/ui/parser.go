package ui

import (
	"strings"

	"github.com/pkg/errors"
)

// ParseCSS parses a primitive CSS file: selectors .class, .class:hover or #id,
// optionally grouped with commas, and blocks of "key: value;". No combinators,
// no @rules. Later rules override earlier for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{Rules: nil}
	content = stripCSSComments(content)
	for {
		rules, rest, ok, err := parseOneBlock(content)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rules...)
		content = rest
	}
	return sheet, nil
}

func stripCSSComments(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			j := i + 2
			for j+1 < len(s) && !(s[j] == '*' && s[j+1] == '/') {
				j++
			}
			if j+1 < len(s) {
				j += 2
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseOneBlock finds the next "selectors { ... }" and returns one rule per
// selector plus the rest of the string. Blocks with no usable selector are skipped.
func parseOneBlock(s string) ([]Rule, string, bool, error) {
	for {
		open := strings.Index(s, "{")
		if open == -1 {
			if strings.TrimSpace(s) != "" {
				return nil, "", false, errors.Errorf("css: trailing text %q", strings.TrimSpace(s))
			}
			return nil, "", false, nil
		}
		close := findMatchingBrace(s, open)
		if close == -1 {
			return nil, "", false, errors.Errorf("css: unterminated block after %q", strings.TrimSpace(s[:open]))
		}
		props := parseDeclarations(strings.TrimSpace(s[open+1 : close]))
		rest := strings.TrimSpace(s[close+1:])

		var rules []Rule
		for _, sel := range strings.Split(s[:open], ",") {
			sel = strings.TrimSpace(sel)
			if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
				continue
			}
			rules = append(rules, Rule{Selector: sel, Props: props})
		}
		if len(rules) > 0 {
			return rules, rest, true, nil
		}
		s = rest
	}
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		colon := strings.Index(part, ":")
		if colon == -1 {
			continue
		}
		k := strings.TrimSpace(part[:colon])
		v := strings.TrimSpace(part[colon+1:])
		if k != "" {
			props[k] = v
		}
	}
	return props
}
