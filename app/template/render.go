package template

import "strings"

// NoVariablesNotice is shown in place of input fields when a template has no
// placeholders.
const NoVariablesNotice = "No variables detected. Add {target} or other placeholders to template."

// Field is one input a template needs.
type Field struct {
	Name  string
	Label string
	Hint  string
}

// FieldsFor returns one Field per distinct placeholder, in template order.
// An empty result means the template has no variables.
func FieldsFor(tmpl string) []Field {
	tokens := Tokenize(tmpl)
	fields := make([]Field, len(tokens))
	for i, name := range tokens {
		label := Label(name)
		fields[i] = Field{Name: name, Label: label, Hint: "Enter " + label}
	}
	return fields
}

// Render substitutes every placeholder occurrence that has a non-blank value.
// Placeholders without a value stay in the output verbatim so an incomplete
// command is visibly incomplete. A non-blank extra string is appended after a
// single space and the result is trimmed.
func Render(tmpl string, values map[string]string, extra string) string {
	out := tokenPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[1 : len(match)-1]
		if v := strings.TrimSpace(values[name]); v != "" {
			return v
		}
		return match
	})
	if extra = strings.TrimSpace(extra); extra != "" {
		out = out + " " + extra
	}
	return strings.TrimSpace(out)
}
