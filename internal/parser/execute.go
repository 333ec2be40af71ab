package parser

import (
	"strings"

	"github.com/go-mcfd/mcfd/internal/model"
)

// leadingKeywords are the sub-clause keywords the chain walker recognizes.
// Order of this set does not matter -- only the order clauses appear in
// the input line does, and that is preserved by construction (we walk
// tokens left to right).
var leadingKeywords = map[string]bool{
	"as": true, "at": true, "positioned": true, "rotated": true,
	"facing": true, "anchored": true, "in": true, "align": true,
	"if": true, "unless": true, "store": true,
}

// parseModifierChain walks tokens (which do not include the leading
// "execute") greedily until the "run" terminator, decomposing it into an
// ordered ModifierChain. It returns the index of "run" in tokens, or -1 if
// no "run" terminator was found (the chain never resolves to a command,
// e.g. a bare "execute if ... " conditional with no run clause -- such a
// line is not used for control flow and the caller should fall back to
// Opaque).
func parseModifierChain(tokens []string) (model.ModifierChain, int) {
	var chain model.ModifierChain
	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		if tok == "run" {
			return chain, i
		}
		if !leadingKeywords[tok] {
			// Unrecognized leading token where a clause keyword was
			// expected -- stop; caller treats this as "no run found".
			return chain, -1
		}

		kind, consumedKeywordWords := classifyKeyword(tokens, i)
		i += consumedKeywordWords

		// Accumulate argument tokens until the next recognized clause
		// keyword or "run".
		argStart := i
		for i < len(tokens) && tokens[i] != "run" && !leadingKeywords[tokens[i]] {
			i++
		}
		chain = append(chain, model.Modifier{
			Kind: kind,
			Arg:  strings.Join(tokens[argStart:i], " "),
		})
	}
	return chain, -1
}

// classifyKeyword resolves the ModifierKind starting at tokens[i], also
// returning how many leading keyword tokens it consumed (1, or 2 for the
// "positioned as" / "rotated as" / "facing entity" two-word forms).
func classifyKeyword(tokens []string, i int) (model.ModifierKind, int) {
	kw := tokens[i]
	next := ""
	if i+1 < len(tokens) {
		next = tokens[i+1]
	}

	switch kw {
	case "as":
		return model.ModAs, 1
	case "at":
		return model.ModAt, 1
	case "positioned":
		if next == "as" {
			return model.ModPositionedAs, 2
		}
		return model.ModPositioned, 1
	case "rotated":
		if next == "as" {
			return model.ModRotatedAs, 2
		}
		return model.ModRotated, 1
	case "facing":
		if next == "entity" {
			return model.ModFacingEntity, 2
		}
		return model.ModFacing, 1
	case "anchored":
		return model.ModAnchored, 1
	case "in":
		return model.ModIn, 1
	case "align":
		return model.ModAlign, 1
	case "if":
		return model.ModIf, 1
	case "unless":
		return model.ModUnless, 1
	case "store":
		return model.ModStore, 1
	}
	return model.ModAs, 1 // unreachable: caller only invokes for recognized keywords
}
