// Package template extracts placeholder tokens from command templates and
// renders templates against user-supplied values.
package template

import "regexp"

// tokenPattern matches a placeholder such as {target}. There is no nesting
// and no escaping; a brace that does not start a well-formed token is text.
var tokenPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Tokenize returns the distinct placeholder names in order of first
// appearance. A template without placeholders yields an empty, non-nil slice.
func Tokenize(tmpl string) []string {
	tokens := []string{}
	seen := make(map[string]bool)
	for _, m := range tokenPattern.FindAllStringSubmatch(tmpl, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		tokens = append(tokens, name)
	}
	return tokens
}
