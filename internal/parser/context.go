package parser

import "strings"

// needsContextRestore reports whether raw references @s, a relative
// coordinate (~ or ^), or a nearest-sort selector -- anything whose
// meaning depends on the executor identity or position the debugger's
// suspension machinery may have displaced. The default is conservative:
// when in doubt, true.
func needsContextRestore(raw string) bool {
	if strings.Contains(raw, "@s") {
		return true
	}
	if strings.Contains(raw, "~") || strings.Contains(raw, "^") {
		return true
	}
	if strings.Contains(raw, "sort=nearest") {
		return true
	}
	return false
}
