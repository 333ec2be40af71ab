package template

import (
	"regexp"

	"github.com/go-mcfd/mcfd/internal/diagnostics"
	"github.com/go-mcfd/mcfd/internal/model"
)

// placeholderPattern is the closed placeholder grammar: a hyphen-delimited
// identifier, e.g. "-ns-" or "-orig/fn-" or "-call+fn-".
var placeholderPattern = regexp.MustCompile(`-[a-z0-9_+./]+-`)

// Instantiate performs the only legal template operation: simultaneous,
// non-recursive substitution of every placeholder present in tmpl from
// env. Every placeholder occurring in tmpl is looked up against the
// *original* template text, never against already-substituted output --
// so a replacement value that happens to contain something matching the
// placeholder grammar (e.g. verbatim user command text) is never rescanned
// and reaches the result untouched, satisfying the "placeholder closure"
// invariant.
//
// name identifies the template for error reporting (e.g. "set_breakpoint").
func Instantiate(name, tmpl string, env model.PlaceholderEnvironment) (string, error) {
	for _, ph := range uniquePlaceholders(tmpl) {
		if _, ok := env[ph]; !ok {
			return "", &diagnostics.UnboundPlaceholder{Template: name, Placeholder: ph}
		}
	}

	out := placeholderPattern.ReplaceAllStringFunc(tmpl, func(ph string) string {
		// Presence already verified above; this cannot miss.
		return env[ph]
	})
	return out, nil
}

func uniquePlaceholders(tmpl string) []string {
	matches := placeholderPattern.FindAllString(tmpl, -1)
	seen := make(map[string]bool, len(matches))
	var out []string
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}
