package parser

import "regexp"

// resourceNamePattern matches a Minecraft resource location: "ns:path".
var resourceNamePattern = regexp.MustCompile(`^[a-z0-9_.-]+:[a-z0-9_./-]+$`)

// isResourceName reports whether s is a syntactically valid "ns:path"
// resource location.
func isResourceName(s string) bool {
	return resourceNamePattern.MatchString(s)
}

// parseFunctionCall parses "function <ns>:<path>" (tokens already split,
// tokens[0] == "function"). Returns ok=false if the remainder isn't a bare
// resource name.
func parseFunctionCall(tokens []string) (callee string, ok bool) {
	if len(tokens) != 2 {
		return "", false
	}
	if !isResourceName(tokens[1]) {
		return "", false
	}
	return tokens[1], true
}
